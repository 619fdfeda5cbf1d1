package wire_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/aptpod/devmgmt-go/errors"
	"github.com/aptpod/devmgmt-go/message"
	. "github.com/aptpod/devmgmt-go/wire"
)

func TestClientConn_Publish_Serve(t *testing.T) {
	defer goleak.VerifyNone(t)
	srv, cli := Pipe()
	cliConn := Connect(&ClientConnConfig{Transport: cli})
	devConn := Accept(&DeviceConnConfig{Transport: srv})
	defer devConn.Close()

	r := newChanResolver()
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- cliConn.Serve(context.Background(), r)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	req := newRequest(t)
	require.NoError(t, cliConn.Publish(ctx, req))

	got, err := devConn.ReadRequest(ctx)
	require.NoError(t, err)
	assert.Equal(t, req, got)

	resp := message.ReplyTo(got, message.ResponseCodeAccepted, message.ResponsePayload{
		Payload: message.NewPayload([]byte("ok"), nil),
	})
	require.NoError(t, devConn.WriteResponse(ctx, resp))

	select {
	case res := <-r.ch:
		assert.Equal(t, req.CorrelationKey(), res.key)
		assert.Equal(t, []byte("ok"), res.resp.Payload().Body())
	case <-ctx.Done():
		t.Fatal("response was not resolved")
	}

	require.NoError(t, cliConn.Close())
	assert.NoError(t, <-serveErr)
	assert.ErrorIs(t, cliConn.Publish(ctx, req), errors.ErrConnectionClosed)
}

func TestClientConn_Serve_DropRequest(t *testing.T) {
	defer goleak.VerifyNone(t)
	srv, cli := Pipe()
	cliConn := Connect(&ClientConnConfig{Transport: cli})
	defer srv.Close()

	r := newChanResolver()
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- cliConn.Serve(context.Background(), r)
	}()

	req := newRequest(t)
	require.NoError(t, srv.Write(req))
	require.NoError(t, srv.Write(message.ReplyTo(req, message.ResponseCodeNotFound, message.ResponsePayload{})))

	select {
	case res := <-r.ch:
		assert.Equal(t, message.ResponseCodeNotFound, res.resp.ResponseCode())
	case <-time.After(time.Second):
		t.Fatal("response was not resolved")
	}
	assert.Len(t, r.ch, 0)

	require.NoError(t, cliConn.Close())
	assert.NoError(t, <-serveErr)
}

func TestClientConn_Serve_RemoteClosed(t *testing.T) {
	defer goleak.VerifyNone(t)
	srv, cli := Pipe()
	cliConn := Connect(&ClientConnConfig{Transport: cli})
	defer cliConn.Close()

	require.NoError(t, srv.Close())
	assert.NoError(t, cliConn.Serve(context.Background(), newChanResolver()))
}

func TestClientConn_Serve_ContextCanceled(t *testing.T) {
	defer goleak.VerifyNone(t)
	srv, cli := Pipe()
	defer srv.Close()
	cliConn := Connect(&ClientConnConfig{Transport: cli})
	defer cliConn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, cliConn.Serve(ctx, newChanResolver()), context.Canceled)
}
