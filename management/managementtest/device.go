/*
Package managementtest は、デバイス管理コールのテストで使用するシミュレーターを提供するパッケージです。

Device は、インメモリのパイプで接続されたデバイスを起動し、実際のエンコーディング、
ワイヤ、コールエグゼキュータを経由してハンドラーを呼び出します。
*/
package managementtest

import (
	"context"
	"sync"
	"time"

	"github.com/aptpod/devmgmt-go/call"
	"github.com/aptpod/devmgmt-go/encoding"
	"github.com/aptpod/devmgmt-go/encoding/protobuf"
	"github.com/aptpod/devmgmt-go/log"
	"github.com/aptpod/devmgmt-go/management"
	"github.com/aptpod/devmgmt-go/message"
	"github.com/aptpod/devmgmt-go/transport"
	"github.com/aptpod/devmgmt-go/wire"
)

// Handlerは、デバイスが受信したリクエストに対するレスポンスを返却します。
//
// nilを返却した場合、デバイスはレスポンスを返しません。
type Handler func(req *message.Request) *message.Response

// Configは、Deviceの設定です。
type Config struct {
	// リクエストのハンドラー
	Handler Handler

	// 権限チェック
	Authorizer management.Authorizer

	// レスポンスデコーダー
	Decoder *management.Decoder

	// エンコーディング
	//
	// nilの場合、Protocol Buffersを使用します。
	Encoding encoding.Encoding

	// ロガー
	Logger log.Logger

	// エグゼキュータのオプション
	ExecutorOptions []call.Option
}

// Deviceは、シミュレートされたデバイスと、それに接続されたServiceです。
type Device struct {
	Service  *management.Service
	Executor *call.Executor
	Recorder *Recorder

	cliConn *wire.ClientConn
	devConn *wire.DeviceConn
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	mu       sync.Mutex
	requests []*message.Request
}

// NewDeviceは、ハンドラーを使用するDeviceを起動します。
func NewDevice(h Handler) *Device {
	return NewDeviceWithConfig(&Config{Handler: h})
}

// NewDeviceWithConfigは、設定を指定してDeviceを起動します。
//
// 使用後は必ずCloseを呼び出してください。
func NewDeviceWithConfig(c *Config) *Device {
	enc := c.Encoding
	if enc == nil {
		enc = protobuf.NewEncoding()
	}
	logger := c.Logger
	if logger == nil {
		logger = log.NewNop()
	}
	srvtr, clitr := transport.Pipe()
	cliConn := wire.Connect(&wire.ClientConnConfig{
		Transport: encoding.NewTransport(&encoding.TransportConfig{Transport: clitr, Encoding: enc}),
		Logger:    logger,
	})
	devConn := wire.Accept(&wire.DeviceConnConfig{
		Transport: encoding.NewTransport(&encoding.TransportConfig{Transport: srvtr, Encoding: enc}),
		Logger:    logger,
	})
	exec := call.NewExecutor(cliConn, append([]call.Option{call.WithLogger(logger)}, c.ExecutorOptions...)...)
	rec := &Recorder{}

	ctx, cancel := context.WithCancel(context.Background())
	d := &Device{
		Service: management.NewService(&management.ServiceConfig{
			Sender:     exec,
			Authorizer: c.Authorizer,
			Recorder:   rec,
			Decoder:    c.Decoder,
			Logger:     logger,
		}),
		Executor: exec,
		Recorder: rec,
		cliConn:  cliConn,
		devConn:  devConn,
		cancel:   cancel,
	}
	d.wg.Add(2)
	go func() {
		defer d.wg.Done()
		if err := cliConn.Serve(ctx, exec); err != nil && ctx.Err() == nil {
			logger.Errorf(ctx, "serve: %+v", err)
		}
	}()
	go func() {
		defer d.wg.Done()
		d.serve(ctx, c.Handler)
	}()
	return d
}

func (d *Device) serve(ctx context.Context, h Handler) {
	for {
		req, err := d.devConn.ReadRequest(ctx)
		if err != nil {
			return
		}
		d.mu.Lock()
		d.requests = append(d.requests, req)
		d.mu.Unlock()
		if h == nil {
			continue
		}
		resp := h(req)
		if resp == nil {
			continue
		}
		if err := d.devConn.WriteResponse(ctx, resp); err != nil {
			return
		}
	}
}

// Requestsは、デバイスが受信したリクエストを受信順に返却します。
func (d *Device) Requests() []*message.Request {
	d.mu.Lock()
	defer d.mu.Unlock()
	res := make([]*message.Request, len(d.requests))
	copy(res, d.requests)
	return res
}

// LastRequestは、デバイスが最後に受信したリクエストを返却します。
func (d *Device) LastRequest() *message.Request {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.requests) == 0 {
		return nil
	}
	return d.requests[len(d.requests)-1]
}

// Closeは、デバイスとServiceを停止し、すべてのゴルーチンの終了を待ちます。
func (d *Device) Close() {
	d.cancel()
	d.Executor.Close()
	d.cliConn.Close()
	d.devConn.Close()
	d.wg.Wait()
}

// Eventは、Recorderが記録した一回のコールです。
type Event struct {
	Request  *message.Request
	Response *message.Response
	At       time.Time
}

// Recorderは、記録したイベントをメモリに保持するEventRecorderです。
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Record(_ context.Context, req *message.Request, resp *message.Response) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Request: req, Response: resp, At: time.Now()})
	return nil
}

// Eventsは、記録したイベントを返却します。
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make([]Event, len(r.events))
	copy(res, r.events)
	return res
}

// Acceptは、ボディとメトリクスを指定してACCEPTEDのレスポンスを返却します。
func Accept(req *message.Request, body []byte, metrics map[string]string) *message.Response {
	return message.ReplyTo(req, message.ResponseCodeAccepted, message.ResponsePayload{
		Payload: message.NewPayload(body, metrics),
	})
}

// Rejectは、例外メッセージとスタックトレースを指定して失敗のレスポンスを返却します。
func Reject(req *message.Request, code message.ResponseCode, exceptionMessage, exceptionStack string) *message.Response {
	return message.ReplyTo(req, code, message.ResponsePayload{
		ExceptionMessage: exceptionMessage,
		ExceptionStack:   exceptionStack,
	})
}
