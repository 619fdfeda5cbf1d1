package errors

import (
	"fmt"
	"strings"

	"github.com/aptpod/devmgmt-go/message"
)

/*
アプリケーションごとのエラーです。ManagementResponseErrorはアプリケーションに対応するエラーにマッチします。
*/
var (
	ErrConfigurationManagement = fmt.Errorf("configuration: %w", ErrManagementResponse)
	ErrSnapshotManagement      = fmt.Errorf("snapshot: %w", ErrManagementResponse)
	ErrCommandManagement       = fmt.Errorf("command: %w", ErrManagementResponse)
	ErrPackageManagement       = fmt.Errorf("packages: %w", ErrManagementResponse)
	ErrBundleManagement        = fmt.Errorf("bundles: %w", ErrManagementResponse)
)

var applicationErrors = map[string]error{
	"configuration": ErrConfigurationManagement,
	"snapshot":      ErrSnapshotManagement,
	"command":       ErrCommandManagement,
	"packages":      ErrPackageManagement,
	"bundles":       ErrBundleManagement,
}

// ManagementErrorKindは、失敗した操作の種類です。
//
// `{アプリケーション}.{操作}` という形式で表します（e.g. snapshot.rollback）。
type ManagementErrorKind string

// Applicationは、種類のアプリケーション部分を返却します。
func (k ManagementErrorKind) Application() string {
	app, _, _ := strings.Cut(string(k), ".")
	return app
}

// Operationは、種類の操作部分を返却します。
func (k ManagementErrorKind) Operation() string {
	_, op, _ := strings.Cut(string(k), ".")
	return op
}

// ManagementResponseErrorは、デバイスが操作を受理しなかった、または受理したレスポンスのボディを解釈できなかった場合のエラーです。
//
// デバイスが拒否した場合は、ExceptionMessageとExceptionStackにレスポンスの内容をそのまま保持します。
// ボディの解釈に失敗した場合は、Bodyに受信したボディを、Errに原因を保持します。
type ManagementResponseError struct {
	Kind             ManagementErrorKind  // 操作の種類
	ResponseCode     message.ResponseCode // レスポンスコード
	ExceptionMessage string               // デバイスの例外メッセージ
	ExceptionStack   string               // デバイスの例外スタックトレース
	Body             string               // 解釈できなかったボディ
	Err              error                // 解釈失敗の原因
}

func (e *ManagementResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: response_code: %v: failed to decode body: %v", e.Kind, e.ResponseCode, e.Err)
	}
	return fmt.Sprintf("%s: response_code: %v exception_message: %v", e.Kind, e.ResponseCode, e.ExceptionMessage)
}

func (e *ManagementResponseError) Unwrap() error {
	return e.Err
}

func (e *ManagementResponseError) Is(err error) bool {
	switch err {
	case ErrDevMgmt, ErrManagementResponse:
		return true
	case ErrOperationNotFound:
		return e.Err == nil && e.ResponseCode == message.ResponseCodeNotFound
	}
	appErr, ok := applicationErrors[e.Kind.Application()]
	return ok && err == appErr
}

// IsParseFailureは、ボディの解釈失敗によるエラーかどうかを返却します。
func (e *ManagementResponseError) IsParseFailure() bool {
	return e.Err != nil
}

// AsManagementResponseErrorは、errがManagementResponseErrorの場合に取り出します。
func AsManagementResponseError(err error) (*ManagementResponseError, bool) {
	var res *ManagementResponseError
	ok := As(err, &res)
	return res, ok
}

// AsTimeoutErrorは、errがTimeoutErrorの場合に取り出します。
func AsTimeoutError(err error) (*TimeoutError, bool) {
	var res *TimeoutError
	ok := As(err, &res)
	return res, ok
}

// AsInvalidArgumentErrorは、errがInvalidArgumentErrorの場合に取り出します。
func AsInvalidArgumentError(err error) (*InvalidArgumentError, bool) {
	var res *InvalidArgumentError
	ok := As(err, &res)
	return res, ok
}
