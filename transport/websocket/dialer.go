package websocket

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/aptpod/devmgmt-go/errors"
	"github.com/aptpod/devmgmt-go/internal/retry"
	"github.com/aptpod/devmgmt-go/log"
)

// DialConfigは、DialFuncへ渡す設定です。
type DialConfig struct {
	// URLは、接続先URLです。
	URL string
	// Tokenは、接続時に認証ヘッダーへ設定するトークンです。nilの場合があります。
	Token *Token
	// TLSConfigは、TLS設定です。
	TLSConfig *tls.Config
	// Proxyは、HTTPプロキシを設定します。
	//
	// http.Transport.Proxyを参照してください。
	Proxy func(*http.Request) (*url.URL, error)
}

// DialFuncは、WebSocketのコネクションを開く関数です。
//
// gorilla.Dial と nhooyr.Dial がこの型を満たします。
type DialFunc func(ctx context.Context, c DialConfig) (Conn, error)

var defaultDialerConfig = DialerConfig{
	DialTimeout: 10 * time.Second,
	Retry:       RetryConfig{MaxAttempt: 5},
}

// RetryConfigは、接続のリトライ設定です。
type RetryConfig struct {
	// 最大試行回数。0は成功するかコンテキストが終了するまで試行し続けます。
	// ただし、RetryConfig全体がゼロ値の場合はデフォルト設定を使用します。
	MaxAttempt int

	// 基準リトライ間隔。0の場合は100ミリ秒です。
	BaseInterval time.Duration

	// 最大基準リトライ間隔。0の場合は5秒です。
	MaxBaseInterval time.Duration
}

// DialerConfigはDialerの設定です。
type DialerConfig struct {
	// Addressは、接続先のホストとポートです（e.g. broker.example.com:443）。
	Address string

	// Pathはパスを指定します
	Path string

	// EnableTLSは TLSアクセスするかどうかを設定します。
	EnableTLS bool

	// TokenSourceは、接続時に認証ヘッダーへ設定するトークンを取得します。
	TokenSource TokenSource

	// TLSConfigは、TLS設定です。
	TLSConfig *tls.Config

	// Proxyは、HTTPプロキシを設定します。
	Proxy func(*http.Request) (*url.URL, error)

	// DialTimeoutは、一回の接続試行のタイムアウトです。
	// 0に設定された場合は、デフォルト値(10秒)が使用されます。
	DialTimeout time.Duration

	// DialFuncは、WebSocketのコネクションを開く関数です。
	// このフィールドを nil にすることはできません。
	DialFunc DialFunc

	// MessageTypeは、トランスポートが書き込むメッセージのタイプです。
	MessageType MessageType

	// Retryは、接続のリトライ設定です。
	// ゼロ値の場合は、最大5回試行します。
	Retry RetryConfig

	// Loggerは、ロガーです。
	Logger log.Logger
}

// Tokenはトークンを表します。
type Token struct {
	// Tokenはトークン文字列です。
	Token string

	// Headerはヘッダ名を指定します。デフォルトは `Authorization` です。
	Header string
}

// TokenSourceは、認証トークンの取得用インターフェースです。
//
// Dialerは接続を試行するたびにこのインターフェースを呼び出します。
type TokenSource interface {
	Token() (*Token, error)
}

// StaticTokenSourceは、静的に設定されたトークンを常に返却するTokenSource実装です。
type StaticTokenSource struct {
	StaticToken *Token
}

// TokenはTokenを返却します。
func (ts *StaticTokenSource) Token() (*Token, error) {
	return ts.StaticToken, nil
}

type oauth2TokenSource struct {
	ts oauth2.TokenSource
}

// NewOAuth2TokenSourceは、oauth2.TokenSourceから取得したアクセストークンを認証ヘッダーに設定するTokenSourceを返却します。
//
// clientcredentials.Config.TokenSource などと組み合わせて使用します。
func NewOAuth2TokenSource(ts oauth2.TokenSource) TokenSource {
	return &oauth2TokenSource{ts: oauth2.ReuseTokenSource(nil, ts)}
}

func (s *oauth2TokenSource) Token() (*Token, error) {
	tk, err := s.ts.Token()
	if err != nil {
		return nil, err
	}
	return &Token{
		Token:  tk.Type() + " " + tk.AccessToken,
		Header: "Authorization",
	}, nil
}

// Dialerは、ブローカーへのWebSocketトランスポートを開きます。
type Dialer struct {
	DialerConfig
}

// NewDialerは、Dialerを返却します。
func NewDialer(c DialerConfig) *Dialer {
	return &Dialer{DialerConfig: c}
}

// URLは、接続先のURLを返却します。
func (d *Dialer) URL() (*url.URL, error) {
	if d.Address == "" {
		return nil, errors.NewInvalidArgumentError("address", "must not be empty")
	}
	schema := "ws"
	if d.EnableTLS {
		schema = "wss"
	}
	path := strings.TrimSuffix(d.Path, "/")
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	u, err := url.Parse(fmt.Sprintf("%s://%s%s", schema, d.Address, path))
	if err != nil {
		return nil, errors.Errorf("invalid url: %v: %w", err, errors.ErrInvalidArgument)
	}
	return u, nil
}

// Dialは、トランスポート接続を開始します。
//
// 接続に失敗した場合は、Retryの設定に従ってリトライします。
func (d *Dialer) Dial(ctx context.Context) (*Transport, error) {
	if d.DialFunc == nil {
		return nil, errors.NewInvalidArgumentError("dialFunc", "must not be nil")
	}
	logger := d.Logger
	if logger == nil {
		logger = log.NewNop()
	}
	dialTimeout := d.DialTimeout
	if dialTimeout == 0 {
		dialTimeout = defaultDialerConfig.DialTimeout
	}
	u, err := d.URL()
	if err != nil {
		return nil, err
	}

	rc := d.Retry
	if rc == (RetryConfig{}) {
		rc = defaultDialerConfig.Retry
	}

	ctx = log.WithTrackTransportID(ctx)
	var wsconn Conn
	r := retry.Retry{
		MaxAttempt:      rc.MaxAttempt,
		BaseInterval:    rc.BaseInterval,
		MaxBaseInterval: rc.MaxBaseInterval,
	}
	err = r.Do(ctx, func(ctx context.Context) error {
		tk, err := d.token()
		if err != nil {
			return retry.Permanent(err)
		}
		dctx, cancel := context.WithTimeout(ctx, dialTimeout)
		defer cancel()
		logger.Infof(ctx, "dial %s", u)
		wsconn, err = d.DialFunc(dctx, DialConfig{
			URL:       u.String(),
			Token:     tk,
			TLSConfig: d.TLSConfig,
			Proxy:     d.Proxy,
		})
		if err != nil {
			logger.Warnf(ctx, "failed to dial %s: %v", u, err)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, errors.Errorf("dial %s: %w", u, err)
	}
	return New(Config{Conn: wsconn, MessageType: d.MessageType}), nil
}

func (d *Dialer) token() (*Token, error) {
	if d.TokenSource == nil {
		return nil, nil
	}
	tk, err := d.TokenSource.Token()
	if err != nil {
		return nil, errors.Errorf("failed retrieving token: %w", err)
	}
	if tk == nil {
		return nil, nil
	}
	res := *tk
	if res.Header == "" {
		res.Header = "Authorization"
	}
	return &res, nil
}

// Dialは、設定を指定してトランスポート接続を開始します。
func Dial(ctx context.Context, c DialerConfig) (*Transport, error) {
	return NewDialer(c).Dial(ctx)
}
