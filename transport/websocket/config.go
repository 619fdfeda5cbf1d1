package websocket

/*
Config は、トランスポートに関する設定です。
*/
type Config struct {
	// Conn は、WebSocketのコネクションです。
	// このフィールドを nil にすることはできません。
	Conn Conn

	// MessageType は、書き込むメッセージのタイプです。
	// 0 に設定された場合は、 MessageBinary が使用されます。
	//
	// JSONエンコーディングを使用する場合は MessageText を指定できます。
	MessageType MessageType
}

func (c Config) webSocketConnOrPanic() Conn {
	if c.Conn == nil {
		panic("WebSocketConn should not be nil")
	}
	return c.Conn
}

func (c Config) messageTypeOrDefault() MessageType {
	if c.MessageType == 0 {
		return MessageBinary
	}
	return c.MessageType
}
