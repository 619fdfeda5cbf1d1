package wire

import (
	"context"
	"sync"

	"github.com/aptpod/devmgmt-go/errors"
	"github.com/aptpod/devmgmt-go/internal/ch"
	"github.com/aptpod/devmgmt-go/log"
	"github.com/aptpod/devmgmt-go/message"
)

// DeviceConnは、デバイス側のコネクションです。
//
// デバイスシミュレーターやテストで使用します。
type DeviceConn struct {
	transport EncodingTransport

	ctx    context.Context
	cancel context.CancelFunc

	msgRequestCh chan *message.Request

	writeMu sync.Mutex
	logger  log.Logger
}

// DeviceConnConfigは、デバイスコネクションの設定です。
type DeviceConnConfig struct {
	// Transportはトランスポートです。
	Transport EncodingTransport

	// Loggerはロガーです。
	Logger log.Logger
}

// Acceptは、トランスポートを使用するDeviceConnを返却し、受信を開始します。
func Accept(c *DeviceConnConfig) *DeviceConn {
	if c.Logger == nil {
		c.Logger = log.NewNop()
	}
	ctx, cancel := context.WithCancel(log.WithTrackTransportID(context.Background()))
	conn := &DeviceConn{
		transport:    c.Transport,
		ctx:          ctx,
		cancel:       cancel,
		msgRequestCh: make(chan *message.Request, 8),
		logger:       c.Logger,
	}
	go conn.readRequestLoop()
	return conn
}

func (c *DeviceConn) readRequestLoop() {
	defer close(c.msgRequestCh)
	for {
		msg, err := c.transport.Read()
		if err != nil {
			if !isClosedError(err) {
				c.logger.Errorf(c.ctx, "occurred in transport.Read: %+v", err)
			}
			return
		}
		req, ok := msg.(*message.Request)
		if !ok {
			c.logger.Warnf(c.ctx, "drop %T: %v", msg, ErrUnexpectedMessage)
			continue
		}
		if !ch.WriteOrDone(c.ctx, req, c.msgRequestCh) {
			return
		}
	}
}

// Closedは、コネクションが閉じられた時にクローズされるチャンネルを返却します。
func (c *DeviceConn) Closed() <-chan struct{} {
	return c.ctx.Done()
}

// Closeは、コネクションを閉じます。
func (c *DeviceConn) Close() error {
	c.cancel()
	return c.transport.Close()
}

// ReadRequestは、リクエストを待ち受けます。
func (c *DeviceConn) ReadRequest(ctx context.Context) (*message.Request, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-c.ctx.Done():
		return nil, errors.ErrConnectionClosed
	case msg, ok := <-c.msgRequestCh:
		if !ok {
			return nil, errors.ErrConnectionClosed
		}
		return msg, nil
	}
}

// WriteResponseは、レスポンスを返送します。
func (c *DeviceConn) WriteResponse(ctx context.Context, resp *message.Response) error {
	select {
	case <-c.ctx.Done():
		return errors.ErrConnectionClosed
	default:
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.transport.Write(resp)
}
