package wire

import (
	"context"
	"net"
	"sync"

	"github.com/aptpod/devmgmt-go/errors"
	"github.com/aptpod/devmgmt-go/log"
	"github.com/aptpod/devmgmt-go/message"
	"github.com/aptpod/devmgmt-go/transport"
)

// Resolverは、受信したレスポンスを待機中のコールへ引き渡します。
//
// call.Executor がこのインターフェースを満たします。
type Resolver interface {
	Resolve(key message.CorrelationKey, resp *message.Response) bool
}

// ClientConnは、管理サーバー側のコネクションです。
type ClientConn struct {
	transport EncodingTransport

	ctx    context.Context
	cancel context.CancelFunc

	writeMu sync.Mutex
	logger  log.Logger
}

// ClientConnConfigは、クライアントコネクションの設定です。
type ClientConnConfig struct {
	// Transportはトランスポートです。
	Transport EncodingTransport

	// Loggerはロガーです。
	Logger log.Logger
}

// Connectは、トランスポートを使用するClientConnを返却します。
func Connect(c *ClientConnConfig) *ClientConn {
	if c.Logger == nil {
		c.Logger = log.NewNop()
	}
	ctx, cancel := context.WithCancel(log.WithTrackTransportID(context.Background()))
	return &ClientConn{
		transport: c.Transport,
		ctx:       ctx,
		cancel:    cancel,
		logger:    c.Logger,
	}
}

// Closedは、コネクションが閉じられた時にクローズされるチャンネルを返却します。
func (c *ClientConn) Closed() <-chan struct{} {
	return c.ctx.Done()
}

// Closeは、コネクションを閉じます。
func (c *ClientConn) Close() error {
	c.cancel()
	return c.transport.Close()
}

// UnderlyingTransportは、内部で使用しているトランスポートを返却します。
func (c *ClientConn) UnderlyingTransport() EncodingTransport {
	return c.transport
}

// Publishは、リクエストをトランスポートへ書き込みます。
//
// 配送の保証はトランスポートに依存します。
func (c *ClientConn) Publish(ctx context.Context, req *message.Request) error {
	select {
	case <-c.ctx.Done():
		return errors.ErrConnectionClosed
	default:
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.transport.Write(req); err != nil {
		return err
	}
	c.logger.Debugf(log.WithTrackCallID(c.ctx, req.CorrelationID()), "published %v", req)
	return nil
}

// Serveは、トランスポートからメッセージを読み込み、レスポンスをResolverへ引き渡します。
//
// トランスポートが閉じられた場合はnilを返却します。
// レスポンス以外のメッセージはログを出力して破棄します。
func (c *ClientConn) Serve(ctx context.Context, r Resolver) error {
	msgCh, readErr := c.readLoop(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c.ctx.Done():
			return nil
		case msg, ok := <-msgCh:
			if !ok {
				return readErr()
			}
			c.dispatch(r, msg)
		}
	}
}

func (c *ClientConn) dispatch(r Resolver, msg message.Message) {
	resp, ok := msg.(*message.Response)
	if !ok {
		c.logger.Warnf(c.ctx, "drop %T: %v", msg, ErrUnexpectedMessage)
		return
	}
	if !r.Resolve(resp.CorrelationKey(), resp) {
		c.logger.Debugf(log.WithTrackCallID(c.ctx, resp.CorrelationID()), "unresolved %v", resp)
	}
}

func (c *ClientConn) readLoop(ctx context.Context) (<-chan message.Message, func() error) {
	msgCh := make(chan message.Message)
	var err error
	go func() {
		defer close(msgCh)
		for {
			msg, rerr := c.transport.Read()
			if rerr != nil {
				if !isClosedError(rerr) {
					c.logger.Errorf(c.ctx, "occurred in transport.Read: %+v", rerr)
					err = rerr
				}
				return
			}
			select {
			case msgCh <- msg:
			case <-ctx.Done():
				return
			case <-c.ctx.Done():
				return
			}
		}
	}()
	return msgCh, func() error { return err }
}

func isClosedError(err error) bool {
	return errors.Is(err, transport.ErrAlreadyClosed) ||
		errors.Is(err, transport.EOF) ||
		errors.Is(err, net.ErrClosed)
}
