package websocket

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/aptpod/devmgmt-go/transport"
)

var _ transport.ReadWriter = (*Transport)(nil)

// Transportは、WebSocketトランスポートです。
//
// 一つのWebSocketメッセージが一つのデバイス管理メッセージに対応します。
type Transport struct {
	wsconn      Conn
	messageType MessageType

	writeMu sync.Mutex

	rxBytesCounter uint64
	txBytesCounter uint64

	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// Newは、WebSocketトランスポートを返却します。
func New(config Config) *Transport {
	ctx, cancel := context.WithCancel(context.Background())
	return &Transport{
		wsconn:      config.webSocketConnOrPanic(),
		messageType: config.messageTypeOrDefault(),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Readは、１メッセージ分のデータを読み込みます。
func (t *Transport) Read() ([]byte, error) {
	_, rd, err := t.wsconn.Reader(t.ctx)
	if err != nil {
		return nil, t.wrapError("get reader", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rd); err != nil {
		return nil, t.wrapError("read", err)
	}
	atomic.AddUint64(&t.rxBytesCounter, uint64(buf.Len()))
	return buf.Bytes(), nil
}

// Writeは、１メッセージ分のデータを書き込みます。
func (t *Transport) Write(bs []byte) error {
	t.writeMu.Lock()
	defer t.writeMu.Unlock()
	if t.ctx.Err() != nil {
		return transport.ErrAlreadyClosed
	}

	wr, err := t.wsconn.Writer(t.ctx, t.messageType)
	if err != nil {
		return t.wrapError("get writer", err)
	}
	n, err := wr.Write(bs)
	if err != nil {
		wr.Close()
		return t.wrapError("write", err)
	}
	if err := wr.Close(); err != nil {
		return t.wrapError("flush", err)
	}
	atomic.AddUint64(&t.txBytesCounter, uint64(n))
	return nil
}

// TxBytesCounterValueは、書き込んだ総バイト数を返却します。
func (t *Transport) TxBytesCounterValue() uint64 {
	return atomic.LoadUint64(&t.txBytesCounter)
}

// RxBytesCounterValueは、読み込んだ総バイト数を返却します。
func (t *Transport) RxBytesCounterValue() uint64 {
	return atomic.LoadUint64(&t.rxBytesCounter)
}

// Pingは、コネクションへPingを送信します。
func (t *Transport) Ping(ctx context.Context) error {
	if err := t.wsconn.Ping(ctx); err != nil {
		return t.wrapError("ping", err)
	}
	return nil
}

// Nameはトランスポート名を返却します。
func (t *Transport) Name() transport.Name {
	return Name
}

// Closeはトランスポートを閉じます。
//
// クローズハンドシェイクの失敗はエラーとしません。
func (t *Transport) Close() error {
	t.closeOnce.Do(func() {
		t.cancel()
		_ = t.wsconn.Close()
	})
	return nil
}

func (t *Transport) wrapError(op string, err error) error {
	if t.ctx.Err() != nil {
		return fmt.Errorf("%s: %v: %w", op, err, transport.ErrAlreadyClosed)
	}
	if isErrTransportClosed(err) {
		return fmt.Errorf("%s: %v: %w", op, err, transport.EOF)
	}
	return fmt.Errorf("%s: %w", op, err)
}
