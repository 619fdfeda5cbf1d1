/*
Package transport は、デバイス管理メッセージを運ぶバイトレベルのトランスポートをまとめたパッケージです。

トランスポートはメッセージの配送のみを担い、リクエストとレスポンスの対応付けは行いません。
*/
package transport

import (
	"io"

	"github.com/aptpod/devmgmt-go/errors"
)

// Nameは、トランスポート名です。
type Name string

const (
	// WebSocketトランスポート
	NameWebSocket Name = "websocket"
	// インメモリのパイプ
	NamePipe Name = "pipe"
)

/*
ReadWriter は以下のエラーを返します。
*/
var (
	// ErrAlreadyClosed は、トランスポート層のコネクションが切れている場合に返されます。
	ErrAlreadyClosed = errors.ErrConnectionClosed

	// ErrInvalidMessage は、 メッセージが不正だった時に返されます。
	ErrInvalidMessage = errors.ErrMalformedMessage

	EOF = io.EOF
)
