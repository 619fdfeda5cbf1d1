package gorilla

import (
	"fmt"
	"io"
	"net"

	gwebsocket "github.com/gorilla/websocket"

	"github.com/aptpod/devmgmt-go/errors"
	"github.com/aptpod/devmgmt-go/transport"
)

func handlerError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, net.ErrClosed) || errors.Is(err, gwebsocket.ErrCloseSent) {
		return fmt.Errorf("%v: %w", err, transport.ErrAlreadyClosed)
	}
	var closeErr *gwebsocket.CloseError
	if errors.As(err, &closeErr) {
		switch closeErr.Code {
		case gwebsocket.CloseNormalClosure, gwebsocket.CloseGoingAway, gwebsocket.CloseNoStatusReceived, gwebsocket.CloseAbnormalClosure:
			return fmt.Errorf("%v: %w", err, transport.EOF)
		}
		return err
	}
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%v: %w", err, transport.EOF)
	}
	return err
}
