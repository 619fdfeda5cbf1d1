package wire_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aptpod/devmgmt-go/encoding"
	"github.com/aptpod/devmgmt-go/encoding/protobuf"
	"github.com/aptpod/devmgmt-go/message"
	"github.com/aptpod/devmgmt-go/transport"
	"github.com/aptpod/devmgmt-go/wire"
)

func Pipe() (srv wire.EncodingTransport, cli wire.EncodingTransport) {
	srvtr, clitr := transport.Pipe()
	srv = encoding.NewTransport(&encoding.TransportConfig{
		Transport: srvtr,
		Encoding:  protobuf.NewEncoding(),
	})
	cli = encoding.NewTransport(&encoding.TransportConfig{
		Transport: clitr,
		Encoding:  protobuf.NewEncoding(),
	})
	return
}

type resolved struct {
	key  message.CorrelationKey
	resp *message.Response
}

type chanResolver struct {
	ch chan resolved
}

func newChanResolver() *chanResolver {
	return &chanResolver{ch: make(chan resolved, 8)}
}

func (r *chanResolver) Resolve(key message.CorrelationKey, resp *message.Response) bool {
	r.ch <- resolved{key: key, resp: resp}
	return true
}

func newRequest(t *testing.T) *message.Request {
	t.Helper()
	req, err := message.NewRequest("scope", "device", message.Channel{
		AppName:    "CMD-V1",
		AppVersion: "1.0",
		Method:     message.MethodExecute,
	}, message.NewPayload(nil, map[string]string{"command.command": "ls"}), time.Unix(1700000000, 0))
	require.NoError(t, err)
	return req
}
