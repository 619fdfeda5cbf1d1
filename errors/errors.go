package errors

import (
	"errors"
	"fmt"
	"time"

	"github.com/aptpod/devmgmt-go/message"
)

var (
	// ErrDevMgmtはdevmgmtライブラリで定義されている基底エラーです。
	ErrDevMgmt = errors.New("devmgmt")
	// ErrConnectionClosedは、トランスポートが閉じられている状態でトランスポートへの読み書きをした場合のエラーです。
	ErrConnectionClosed = fmt.Errorf("closed connection: %w", ErrDevMgmt)
	// ErrMalformedMessageは、メッセージのエンコードやデコードに失敗した時のエラーです。
	ErrMalformedMessage = fmt.Errorf("malformed message: %w", ErrDevMgmt)
	// ErrMessageTooLargeは、メッセージが大きすぎる場合のエラーです。
	ErrMessageTooLarge = fmt.Errorf("message is too large: %w", ErrMalformedMessage)
	// ErrInvalidArgumentは、呼び出し元が指定した識別子が不足または空の場合のエラーです。ネットワークへは到達しません。
	ErrInvalidArgument = fmt.Errorf("invalid argument: %w", ErrDevMgmt)
	// ErrUnauthorizedは、権限チェックで拒否された場合のエラーです。ネットワークへは到達しません。
	ErrUnauthorized = fmt.Errorf("unauthorized: %w", ErrDevMgmt)
	// ErrTransportは、リクエストの送信に失敗した場合のエラーです。
	ErrTransport = fmt.Errorf("transport failure: %w", ErrDevMgmt)
	// ErrTimeoutは、期限までに対応するレスポンスを受信できなかった場合のエラーです。
	ErrTimeout = fmt.Errorf("timeout: %w", ErrDevMgmt)
	// ErrCancelledは、呼び出し元がコールをキャンセルした場合のエラーです。
	ErrCancelled = fmt.Errorf("cancelled: %w", ErrDevMgmt)
	// ErrExecutorClosedは、クローズ済みのエグゼキュータでコールした場合のエラーです。
	ErrExecutorClosed = fmt.Errorf("closed call executor: %w", ErrDevMgmt)
	// ErrDuplicateCallは、同じコリレーションキーのコールが既に待機中の場合のエラーです。
	ErrDuplicateCall = fmt.Errorf("already exist pending call: %w", ErrDevMgmt)
	// ErrManagementResponseは、デバイスが操作を拒否した、またはボディを解釈できなかった場合の基底エラーです。
	ErrManagementResponse = fmt.Errorf("management response: %w", ErrDevMgmt)
	// ErrOperationNotFoundは、デバイスがNOT_FOUNDを返却した場合にマッチします。
	ErrOperationNotFound = fmt.Errorf("operation not found: %w", ErrManagementResponse)
)

// InvalidArgumentErrorは、呼び出し元の引数が不正な場合のエラーです。
type InvalidArgumentError struct {
	Argument string // 引数名
	Reason   string // 理由
}

// NewInvalidArgumentErrorは、InvalidArgumentErrorを返却します。
func NewInvalidArgumentError(argument, reason string) *InvalidArgumentError {
	return &InvalidArgumentError{Argument: argument, Reason: reason}
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Argument, e.Reason)
}

func (e *InvalidArgumentError) Is(err error) bool {
	return err == ErrInvalidArgument || err == ErrDevMgmt
}

// AuthorizationErrorは、権限チェックで拒否された場合のエラーです。
type AuthorizationError struct {
	Domain  string // ドメイン
	Action  string // アクション
	ScopeID string // スコープID
	Err     error  // 権限チェックが返却したエラー
}

func (e *AuthorizationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("permission denied domain:%s action:%s scope:%s", e.Domain, e.Action, e.ScopeID)
	}
	return fmt.Sprintf("permission denied domain:%s action:%s scope:%s: %v", e.Domain, e.Action, e.ScopeID, e.Err)
}

func (e *AuthorizationError) Unwrap() error {
	return e.Err
}

func (e *AuthorizationError) Is(err error) bool {
	return err == ErrUnauthorized || err == ErrDevMgmt
}

// TransportErrorは、リクエストの送信に失敗した場合のエラーです。
type TransportError struct {
	Request *message.Request // 送信しようとしたリクエスト
	Err     error            // トランスポートが返却したエラー
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to publish %v: %v", e.Request, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(err error) bool {
	return err == ErrTransport || err == ErrDevMgmt
}

// TimeoutErrorは、期限までに対応するレスポンスを受信できなかった場合のエラーです。
type TimeoutError struct {
	Request *message.Request // 送信したリクエスト
	Timeout time.Duration    // タイムアウト
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("no response within %v for %v", e.Timeout, e.Request)
}

func (e *TimeoutError) Is(err error) bool {
	return err == ErrTimeout || err == ErrDevMgmt
}

// CancelledErrorは、呼び出し元がコールをキャンセルした場合のエラーです。
type CancelledError struct {
	Request *message.Request // 送信したリクエスト
	Err     error            // キャンセルの原因
}

func (e *CancelledError) Error() string {
	return fmt.Sprintf("call cancelled for %v: %v", e.Request, e.Err)
}

func (e *CancelledError) Unwrap() error {
	return e.Err
}

func (e *CancelledError) Is(err error) bool {
	return err == ErrCancelled || err == ErrDevMgmt
}

func New(text string) error {
	return errors.New(text)
}

func Errorf(format string, a ...any) error {
	return fmt.Errorf(format, a...)
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}
