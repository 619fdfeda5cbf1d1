package nhooyr

import (
	"context"
	"net/http"

	nwebsocket "nhooyr.io/websocket"

	"github.com/aptpod/devmgmt-go/transport/websocket"
)

var _ websocket.DialFunc = Dial

// Dialは、WebSocketのコネクションを開きます。
//
// `c.Token` はWebSocket接続時の認証ヘッダーに使用します。
// `c.TLSConfig` がnilの場合は無視します。
func Dial(ctx context.Context, c websocket.DialConfig) (websocket.Conn, error) {
	var header http.Header
	if c.Token != nil {
		header = http.Header{}
		header.Add(c.Token.Header, c.Token.Token)
	}

	tr := http.DefaultTransport.(*http.Transport).Clone()
	if c.TLSConfig != nil {
		tr.TLSClientConfig = c.TLSConfig
	}
	if c.Proxy != nil {
		tr.Proxy = c.Proxy
	}

	//nolint
	wsconn, _, err := nwebsocket.Dial(ctx, c.URL, &nwebsocket.DialOptions{
		HTTPHeader: header,
		HTTPClient: &http.Client{Transport: tr},
	})
	if err != nil {
		return nil, err
	}
	return New(wsconn), nil
}
