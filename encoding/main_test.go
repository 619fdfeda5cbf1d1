package encoding_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	. "github.com/aptpod/devmgmt-go/encoding"
	"github.com/aptpod/devmgmt-go/encoding/json"
	"github.com/aptpod/devmgmt-go/encoding/protobuf"
	"github.com/aptpod/devmgmt-go/errors"
	"github.com/aptpod/devmgmt-go/message"
	"github.com/aptpod/devmgmt-go/transport"
)

func TestTransport(t *testing.T) {
	defer goleak.VerifyNone(t)
	encodings := []Encoding{protobuf.NewEncoding(), json.NewEncoding()}
	for _, enc := range encodings {
		enc := enc
		t.Run(string(enc.Name()), func(t *testing.T) {
			cli, srv := transport.Pipe()
			tr1 := NewTransport(&TransportConfig{Transport: cli, Encoding: enc})
			tr2 := NewTransport(&TransportConfig{Transport: srv, Encoding: enc})
			defer tr1.Close()
			defer tr2.Close()

			req, err := message.NewRequest("scope", "device", message.Channel{
				AppName:    "CONF-V1",
				AppVersion: "1.0",
				Method:     message.MethodRead,
				Parameters: map[string]string{"resource": "snapshots"},
			}, message.Payload{}, time.Unix(1700000000, 0))
			require.NoError(t, err)

			require.NoError(t, tr1.Write(req))
			got, err := tr2.Read()
			require.NoError(t, err)
			assert.Equal(t, req, got)
			assert.Equal(t, enc, tr1.Encoding())

			assert.Equal(t, uint64(1), tr1.TxMessageCounterValue())
			assert.Equal(t, uint64(1), tr2.RxMessageCounterValue())
			assert.Equal(t, tr1.TxCount(), tr2.RxCount())
			assert.Equal(t, uint64(1), tr2.RxCount().MessageCount[MessageKindRequest])
		})
	}
}

func TestTransport_MaxMessageSize(t *testing.T) {
	defer goleak.VerifyNone(t)
	cli, srv := transport.Pipe()
	defer srv.Close()
	tr := NewTransport(&TransportConfig{Transport: cli, Encoding: protobuf.NewEncoding(), MaxMessageSize: 16 * B})
	defer tr.Close()

	req, err := message.NewRequest("scope", "device", message.Channel{
		AppName: "CONF-V1",
		Method:  message.MethodWrite,
	}, message.NewPayload(make([]byte, 1024), nil), time.Now())
	require.NoError(t, err)

	err = tr.Write(req)
	assert.ErrorIs(t, err, errors.ErrMessageTooLarge)
	assert.ErrorIs(t, err, errors.ErrMalformedMessage)
	assert.Equal(t, uint64(0), tr.TxMessageCounterValue())
}

func TestTransport_Read_Malformed(t *testing.T) {
	defer goleak.VerifyNone(t)
	cli, srv := transport.Pipe()
	defer cli.Close()
	tr := NewTransport(&TransportConfig{Transport: srv, Encoding: json.NewEncoding()})
	defer tr.Close()

	require.NoError(t, cli.Write([]byte("{not json")))
	_, err := tr.Read()
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrMalformedMessage)
	assert.Contains(t, err.Error(), "json: decode")
	assert.Equal(t, uint64(0), tr.RxMessageCounterValue())
}
