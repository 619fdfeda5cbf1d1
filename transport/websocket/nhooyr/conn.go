/*
Package nhooyr は、 nhooyr.io/websocket を使用した websocket.Conn の実装です。
*/
package nhooyr

import (
	"context"
	"io"

	nwebsocket "nhooyr.io/websocket"

	"github.com/aptpod/devmgmt-go/transport/websocket"
)

// Connは、 nhooyr.io/websocketのConnのラッパーです。
type Conn struct {
	wsconn *nwebsocket.Conn
}

// Newは、Connを返却します。
func New(wsconn *nwebsocket.Conn) *Conn {
	return &Conn{
		wsconn: wsconn,
	}
}

// Pingは、WebSocketのPingを送信します。
func (c *Conn) Ping(ctx context.Context) error {
	return c.wsconn.Ping(ctx)
}

// Readerは、WebSocketのReaderを取得します。
func (c *Conn) Reader(ctx context.Context) (websocket.MessageType, io.Reader, error) {
	tp, rd, err := c.wsconn.Reader(ctx)
	if err != nil {
		return 0, nil, err
	}
	if tp == nwebsocket.MessageText {
		return websocket.MessageText, rd, nil
	}
	return websocket.MessageBinary, rd, nil
}

// Writerは、WebSocketのWriterを取得します。
func (c *Conn) Writer(ctx context.Context, tp websocket.MessageType) (io.WriteCloser, error) {
	if tp == websocket.MessageText {
		return c.wsconn.Writer(ctx, nwebsocket.MessageText)
	}
	return c.wsconn.Writer(ctx, nwebsocket.MessageBinary)
}

// Closeは、WebSocketを正常終了のステータスでクローズします。
func (c *Conn) Close() error {
	return c.wsconn.Close(nwebsocket.StatusNormalClosure, "")
}
