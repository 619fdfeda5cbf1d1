package call

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/aptpod/devmgmt-go/errors"
	"github.com/aptpod/devmgmt-go/log"
	"github.com/aptpod/devmgmt-go/message"
)

type result struct {
	resp *message.Response
	err  error
}

// pendingCallは、レスポンスを待機中のコールです。
//
// レジストリから取り除いた者だけがreplyへ書き込みます。
type pendingCall struct {
	req   *message.Request
	reply chan result
}

// Executorは、リクエストを送信し、対応するレスポンスかタイムアウトのどちらか一方を返却します。
//
// 複数のゴルーチンから同時に使用できます。
type Executor struct {
	pub     Publisher
	config  Config
	limiter *rate.Limiter

	mu      sync.Mutex
	pending map[message.CorrelationKey]*pendingCall
	closed  bool
}

// NewExecutorは、Executorを生成します。
func NewExecutor(pub Publisher, opts ...Option) *Executor {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(c)
	}
	if c.Logger == nil {
		c.Logger = log.NewNop()
	}
	if c.DefaultTimeout <= 0 {
		c.DefaultTimeout = DefaultTimeout
	}
	return &Executor{
		pub:     pub,
		config:  *c,
		limiter: c.newLimiter(),
		pending: make(map[message.CorrelationKey]*pendingCall),
	}
}

// Sendは、リクエストを送信し、対応するレスポンスを待ち受けます。
//
// timeoutが0以下の場合、デフォルトのタイムアウトを使用します。
// 期限はSendを呼び出した時点から計測し、延長しません。
//
// 以下のエラーを返却します。
//   - 送信に失敗した場合、*errors.TransportError
//   - 期限までにレスポンスを受信できなかった場合、*errors.TimeoutError
//   - ctxがキャンセルされた場合、*errors.CancelledError
//   - 同じコリレーションキーのコールが待機中の場合、errors.ErrDuplicateCall
//   - Executorがクローズされた場合、errors.ErrExecutorClosed
func (e *Executor) Send(ctx context.Context, req *message.Request, timeout time.Duration) (*message.Response, error) {
	if req == nil {
		return nil, errors.NewInvalidArgumentError("request", "must not be nil")
	}
	if timeout <= 0 {
		timeout = e.config.DefaultTimeout
	}
	parent := log.WithTrackCallID(ctx, req.CorrelationID())
	effective := effectiveTimeout(parent, timeout)
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	if e.limiter != nil {
		if err := e.limiter.Wait(ctx); err != nil {
			return nil, e.waitError(parent, req, effective, err)
		}
	}

	key := req.CorrelationKey()
	call := &pendingCall{req: req, reply: make(chan result, 1)}
	if err := e.register(key, call); err != nil {
		return nil, err
	}
	// 送信前に期限切れまたはキャンセルされたリクエストは送信しない
	if err := ctx.Err(); err != nil {
		if e.deregister(key, call) {
			return nil, e.waitError(parent, req, effective, err)
		}
		return e.wait(call)
	}

	if err := e.pub.Publish(ctx, req); err != nil {
		if e.deregister(key, call) {
			e.config.Logger.Errorf(parent, "failed to publish %v: %+v", req, err)
			return nil, &errors.TransportError{Request: req, Err: err}
		}
		// 送信エラーより先にレスポンスが届いた
		return e.wait(call)
	}

	select {
	case res := <-call.reply:
		return e.unwrap(req, res)
	case <-ctx.Done():
	}
	if !e.deregister(key, call) {
		// 期限と同時にレスポンスが届いた
		return e.wait(call)
	}
	if err := parent.Err(); errors.Is(err, context.Canceled) {
		e.config.Logger.Infof(parent, "cancelled %v", req)
		return nil, &errors.CancelledError{Request: req, Err: err}
	}
	e.config.Logger.Infof(parent, "timeout %v after %s", req, effective)
	return nil, &errors.TimeoutError{Request: req, Timeout: effective}
}

// effectiveTimeoutは、timeoutとctxの残り時間のうち短い方を返却します。
func effectiveTimeout(ctx context.Context, timeout time.Duration) time.Duration {
	dl, ok := ctx.Deadline()
	if !ok {
		return timeout
	}
	left := time.Until(dl)
	if left < 0 {
		left = 0
	}
	if left < timeout {
		return left
	}
	return timeout
}

func (e *Executor) wait(call *pendingCall) (*message.Response, error) {
	return e.unwrap(call.req, <-call.reply)
}

func (e *Executor) unwrap(req *message.Request, res result) (*message.Response, error) {
	if res.err != nil {
		return nil, errors.Errorf("%v: %w", req, res.err)
	}
	return res.resp, nil
}

func (e *Executor) waitError(parent context.Context, req *message.Request, timeout time.Duration, err error) error {
	if perr := parent.Err(); errors.Is(perr, context.Canceled) {
		return &errors.CancelledError{Request: req, Err: perr}
	}
	e.config.Logger.Infof(parent, "timeout %v before publish: %v", req, err)
	return &errors.TimeoutError{Request: req, Timeout: timeout}
}

// Resolveは、受信したレスポンスを待機中のコールへ引き渡します。
//
// 対応するコールが存在しない場合（既にレスポンスを受信済み、タイムアウト済み、または未知のキー）は、
// ログを出力してfalseを返却します。
func (e *Executor) Resolve(key message.CorrelationKey, resp *message.Response) bool {
	ctx := log.WithTrackCallID(context.Background(), key.CorrelationID)
	if resp == nil {
		e.config.Logger.Warnf(ctx, "discard nil response for %v", key)
		return false
	}
	e.mu.Lock()
	call, ok := e.pending[key]
	if ok {
		delete(e.pending, key)
	}
	e.mu.Unlock()
	if !ok {
		e.config.Logger.Warnf(ctx, "discard response %v: no pending call", resp)
		return false
	}
	call.reply <- result{resp: resp}
	return true
}

// Pendingは、レスポンスを待機中のコールの数を返却します。
func (e *Executor) Pending() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.pending)
}

// Closeは、Executorを閉じます。
//
// 待機中のコールはerrors.ErrExecutorClosedで失敗し、以降のSendも同じエラーを返却します。
func (e *Executor) Close() error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.closed = true
	calls := e.pending
	e.pending = make(map[message.CorrelationKey]*pendingCall)
	e.mu.Unlock()

	for _, call := range calls {
		call.reply <- result{err: errors.ErrExecutorClosed}
	}
	return nil
}

func (e *Executor) register(key message.CorrelationKey, call *pendingCall) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return errors.Errorf("%v: %w", call.req, errors.ErrExecutorClosed)
	}
	if _, ok := e.pending[key]; ok {
		return errors.Errorf("%v: %w", key, errors.ErrDuplicateCall)
	}
	e.pending[key] = call
	return nil
}

// deregisterは、コールがまだ登録されている場合に限りレジストリから取り除き、trueを返却します。
func (e *Executor) deregister(key message.CorrelationKey, call *pendingCall) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.pending[key] != call {
		return false
	}
	delete(e.pending, key)
	return true
}
