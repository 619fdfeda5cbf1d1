/*
Package wire は、デバイス管理メッセージのワイヤレベルの送受信を定義するパッケージです。

ClientConn は管理サーバー側のコネクションで、リクエストの送信と、受信したレスポンスの
Resolver への引き渡しを担います。DeviceConn はデバイス側のコネクションで、リクエストの
受信とレスポンスの返送を担います。リクエストとレスポンスの対応付けは行いません。
*/
package wire

import "github.com/aptpod/devmgmt-go/errors"

/*
ClientConn と DeviceConn は以下のエラーを返します。
*/
var (
	// ErrUnexpectedMessage は、コネクションの種別に対して想定外のメッセージを受信した場合に返されます。
	ErrUnexpectedMessage = errors.Errorf("unexpected message: %w", errors.ErrMalformedMessage)
)
