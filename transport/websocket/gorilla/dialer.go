package gorilla

import (
	"context"
	"net/http"
	"net/http/httputil"

	gwebsocket "github.com/gorilla/websocket"

	"github.com/aptpod/devmgmt-go/errors"
	"github.com/aptpod/devmgmt-go/transport/websocket"
)

var _ websocket.DialFunc = Dial

// Dialは、WebSocketのコネクションを開きます。
//
// `c.Token` はWebSocket接続時の認証ヘッダーに使用します。
func Dial(ctx context.Context, c websocket.DialConfig) (websocket.Conn, error) {
	var header http.Header
	if c.Token != nil {
		header = http.Header{}
		header.Add(c.Token.Header, c.Token.Token)
	}
	d := gwebsocket.Dialer{
		Proxy:           http.ProxyFromEnvironment,
		TLSClientConfig: c.TLSConfig,
	}
	if c.Proxy != nil {
		d.Proxy = c.Proxy
	}
	wsconn, resp, err := d.DialContext(ctx, c.URL, header)
	if err != nil {
		if resp == nil {
			return nil, err
		}
		dump, _ := httputil.DumpResponse(resp, false)
		return nil, errors.Errorf("dial failed with error response[%s]: %w", dump, err)
	}
	return New(wsconn), nil
}
