/*
Package message は、デバイス管理コールで使用するメッセージモデルを定義するパッケージです。

すべてのアプリケーション（構成、スナップショット、コマンド、パッケージ、バンドル）は、
このパッケージの Request と Response を共通で使用します。アプリケーションごとの違いは
Channel（アプリケーション名、バージョン、メソッド、パラメータ）と Payload で表現します。
*/
package message

import "errors"

/*
Message は、デバイス管理コールで使用されるメッセージを表すインターフェースです。
*/
type Message interface {
	isMessage()

	// ScopeIDは、メッセージが属するスコープのIDを返却します。
	ScopeID() string

	// DeviceIDは、メッセージの宛先または送信元のデバイスIDを返却します。
	DeviceID() string

	// Channelは、メッセージのチャンネルを返却します。
	Channel() Channel

	// CorrelationKeyは、リクエストとレスポンスを対応付けるためのキーを返却します。
	CorrelationKey() CorrelationKey
}

// ErrInvalidMessageは、メッセージの必須項目が不足している場合のエラーです。
var ErrInvalidMessage = errors.New("invalid message")
