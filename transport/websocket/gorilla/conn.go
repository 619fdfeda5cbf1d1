/*
Package gorilla は、 gorilla/websocket を使用した websocket.Conn の実装です。
*/
package gorilla

import (
	"context"
	"io"
	"time"

	gwebsocket "github.com/gorilla/websocket"

	"github.com/aptpod/devmgmt-go/transport/websocket"
)

const controlTimeout = time.Second

// Connは、 gorilla/websocketのConnのラッパーです。
type Conn struct {
	wsconn *gwebsocket.Conn
}

// Newは、Connを返却します。
func New(wsconn *gwebsocket.Conn) *Conn {
	return &Conn{
		wsconn: wsconn,
	}
}

// Pingは、WebSocketのPingを送信します。
func (c *Conn) Ping(ctx context.Context) error {
	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(controlTimeout)
	}
	return handlerError(c.wsconn.WriteControl(gwebsocket.PingMessage, []byte{}, deadline))
}

// Readerは、WebSocketのReaderを取得します。
//
// テキストとバイナリ以外のメッセージは受信しません。
func (c *Conn) Reader(ctx context.Context) (websocket.MessageType, io.Reader, error) {
	for {
		tp, rd, err := c.wsconn.NextReader()
		if err != nil {
			return 0, nil, handlerError(err)
		}
		switch tp {
		case gwebsocket.BinaryMessage:
			return websocket.MessageBinary, rd, nil
		case gwebsocket.TextMessage:
			return websocket.MessageText, rd, nil
		}
	}
}

// Writerは、WebSocketのWriterを取得します。
func (c *Conn) Writer(ctx context.Context, tp websocket.MessageType) (io.WriteCloser, error) {
	mt := gwebsocket.BinaryMessage
	if tp == websocket.MessageText {
		mt = gwebsocket.TextMessage
	}
	if deadline, ok := ctx.Deadline(); ok {
		if err := c.wsconn.SetWriteDeadline(deadline); err != nil {
			return nil, handlerError(err)
		}
	}
	res, err := c.wsconn.NextWriter(mt)
	if err != nil {
		return nil, handlerError(err)
	}
	return res, nil
}

// Closeは、クローズフレームを送信してWebSocketをクローズします。
func (c *Conn) Close() error {
	msg := gwebsocket.FormatCloseMessage(gwebsocket.CloseNormalClosure, "")
	// 相手がすでに切断している場合は送信できないため、エラーは無視する
	_ = c.wsconn.WriteControl(gwebsocket.CloseMessage, msg, time.Now().Add(controlTimeout))
	return handlerError(c.wsconn.Close())
}
