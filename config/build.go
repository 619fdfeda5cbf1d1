package config

import (
	"context"
	"io"
	stdlog "log"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"

	"github.com/aptpod/devmgmt-go/call"
	"github.com/aptpod/devmgmt-go/encoding"
	"github.com/aptpod/devmgmt-go/encoding/json"
	"github.com/aptpod/devmgmt-go/encoding/protobuf"
	"github.com/aptpod/devmgmt-go/errors"
	"github.com/aptpod/devmgmt-go/log"
	logruslog "github.com/aptpod/devmgmt-go/log/logrus"
	"github.com/aptpod/devmgmt-go/management"
	"github.com/aptpod/devmgmt-go/transport/websocket"
	"github.com/aptpod/devmgmt-go/transport/websocket/gorilla"
	"github.com/aptpod/devmgmt-go/transport/websocket/nhooyr"
)

// ExecutorOptionsは、コールエグゼキュータのオプションを返却します。
func (c *Config) ExecutorOptions(l log.Logger) []call.Option {
	opts := []call.Option{call.WithDefaultTimeout(c.Call.DefaultTimeout)}
	if l != nil {
		opts = append(opts, call.WithLogger(l))
	}
	if c.Call.PublishRate > 0 {
		opts = append(opts, call.WithPublishRateLimit(rate.Limit(c.Call.PublishRate), c.Call.PublishBurst))
	}
	return opts
}

// DecoderConfigは、レスポンスデコーダーの設定を返却します。
func (c *Config) DecoderConfig() management.DecoderConfig {
	return management.DecoderConfig{CharEncoding: c.Decoder.CharEncoding}
}

// Loggerは、設定に従ったロガーを返却します。
//
// stdとlogrusはwへ出力し、wがnilの場合は標準エラー出力へ出力します。
func (c *Config) Logger(w io.Writer) (log.Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	switch c.Log.Backend {
	case BackendNop:
		return log.NewNop(), nil
	case BackendStd:
		level, err := log.ParseLevel(c.Log.Level)
		if err != nil {
			return nil, errors.NewInvalidArgumentError("log.level", err.Error())
		}
		return log.NewStdWithLevel(stdlog.New(w, "", stdlog.LstdFlags), level), nil
	}
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, errors.NewInvalidArgumentError("log.level", err.Error())
	}
	l := logrus.New()
	l.SetLevel(level)
	l.SetOutput(w)
	if c.Log.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	}
	return logruslog.New(l), nil
}

// NewEncodingは、設定されたエンコーディングを返却します。
func (c *Config) NewEncoding() (encoding.Encoding, error) {
	switch encoding.Name(c.Encoding) {
	case encoding.NameProtobuf:
		return protobuf.NewEncoding(), nil
	case encoding.NameJSON:
		return json.NewEncoding(), nil
	}
	return nil, errors.NewInvalidArgumentError("encoding", "unknown encoding "+c.Encoding)
}

// WebSocketDialerは、ブローカーへのDialerを返却します。
//
// OAuth2が設定されている場合、トークンはctxを使用して取得します。
func (c *Config) WebSocketDialer(ctx context.Context, l log.Logger) (*websocket.Dialer, error) {
	ws := c.WebSocket
	dc := websocket.DialerConfig{
		Address:     ws.Address,
		Path:        ws.Path,
		EnableTLS:   ws.TLS,
		DialTimeout: ws.DialTimeout,
		Retry: websocket.RetryConfig{
			MaxAttempt:      ws.Retry.MaxAttempt,
			BaseInterval:    ws.Retry.BaseInterval,
			MaxBaseInterval: ws.Retry.MaxBaseInterval,
		},
		MessageType: websocket.MessageBinary,
		Logger:      l,
	}
	switch ws.Library {
	case LibraryGorilla:
		dc.DialFunc = gorilla.Dial
	case LibraryNhooyr:
		dc.DialFunc = nhooyr.Dial
	default:
		return nil, errors.NewInvalidArgumentError("websocket.library", "unknown library "+ws.Library)
	}
	if encoding.Name(c.Encoding) == encoding.NameJSON {
		dc.MessageType = websocket.MessageText
	}
	switch {
	case ws.OAuth2 != nil:
		cc := clientcredentials.Config{
			ClientID:     ws.OAuth2.ClientID,
			ClientSecret: ws.OAuth2.ClientSecret,
			TokenURL:     ws.OAuth2.TokenURL,
			Scopes:       ws.OAuth2.Scopes,
		}
		dc.TokenSource = websocket.NewOAuth2TokenSource(cc.TokenSource(ctx))
	case ws.Token != "":
		dc.TokenSource = &websocket.StaticTokenSource{StaticToken: &websocket.Token{
			Token:  ws.Token,
			Header: ws.TokenHeader,
		}}
	}
	return websocket.NewDialer(dc), nil
}
