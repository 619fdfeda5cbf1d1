package management

import (
	"context"
	"time"

	"github.com/aptpod/devmgmt-go/log"
	"github.com/aptpod/devmgmt-go/message"
)

// Senderは、リクエストを送信し対応するレスポンスを待ち受けます。
//
// call.Executor がこのインターフェースを満たします。
type Sender interface {
	Send(ctx context.Context, req *message.Request, timeout time.Duration) (*message.Response, error)
}

// ServiceConfigは、Serviceの設定です。
type ServiceConfig struct {
	// コールを送信するエグゼキュータ
	Sender Sender

	// 権限チェック
	//
	// nilの場合、すべてのコールを許可します。
	Authorizer Authorizer

	// イベントレコーダー
	//
	// nilの場合、ロガーへ出力します。
	Recorder EventRecorder

	// レスポンスデコーダー
	//
	// nilの場合、UTF-8のデコーダーを使用します。
	Decoder *Decoder

	// ロガー
	Logger log.Logger
}

// Serviceは、デバイス管理コールのパイプラインです。
//
// 各アプリケーションのサービスはServiceを共有します。
type Service struct {
	sender     Sender
	authorizer Authorizer
	recorder   EventRecorder
	decoder    *Decoder
	logger     log.Logger
	now        func() time.Time
}

// NewServiceは、Serviceを生成します。
func NewService(c *ServiceConfig) *Service {
	s := &Service{
		sender:     c.Sender,
		authorizer: c.Authorizer,
		recorder:   c.Recorder,
		decoder:    c.Decoder,
		logger:     c.Logger,
		now:        time.Now,
	}
	if s.logger == nil {
		s.logger = log.NewNop()
	}
	if s.authorizer == nil {
		s.authorizer = AllowAll()
	}
	if s.recorder == nil {
		s.recorder = NewLogRecorder(s.logger)
	}
	if s.decoder == nil {
		s.decoder = defaultDecoder
	}
	return s
}

// Decoderは、Serviceが使用するレスポンスデコーダーを返却します。
func (s *Service) Decoder() *Decoder {
	return s.decoder
}
