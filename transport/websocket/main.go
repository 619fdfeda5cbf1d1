/*
Package websocket は、ブローカーとの間でデバイス管理メッセージを運ぶ WebSocket トランスポートを提供するパッケージです。

WebSocketライブラリへの依存は Conn に閉じ込めています。gorilla/websocket を使用する場合は
gorilla パッケージ、nhooyr.io/websocket を使用する場合は nhooyr パッケージの Dial を
DialerConfig.DialFunc に指定します。
*/
package websocket

import "github.com/aptpod/devmgmt-go/transport"

/*
Name は、本トランスポートの名称です。
*/
const Name = transport.NameWebSocket
