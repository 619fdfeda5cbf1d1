package websocket

import (
	"io"
	"net"
	"syscall"

	gwebsocket "github.com/gorilla/websocket"
	"nhooyr.io/websocket"

	"github.com/aptpod/devmgmt-go/errors"
)

func isErrTransportClosed(err error) bool {
	if errors.Is(err, net.ErrClosed) || errors.Is(err, syscall.EPIPE) || errors.Is(err, syscall.ECONNRESET) {
		return true
	}

	switch websocket.CloseStatus(err) {
	case websocket.StatusNormalClosure, websocket.StatusGoingAway:
		return true
	}
	if gwebsocket.IsCloseError(
		err,
		gwebsocket.CloseNormalClosure,
		gwebsocket.CloseGoingAway,
		gwebsocket.CloseAbnormalClosure,
		gwebsocket.CloseNoStatusReceived,
	) {
		return true
	}

	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, gwebsocket.ErrCloseSent)
}
