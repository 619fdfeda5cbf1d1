package call_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aptpod/devmgmt-go/message"
)

func newRequest(t *testing.T, deviceID string) *message.Request {
	t.Helper()
	req, err := message.NewRequest("scope", deviceID, message.Channel{
		AppName:    "CONF-V1",
		AppVersion: "1.0",
		Method:     message.MethodRead,
		Parameters: map[string]string{"resource": "snapshots"},
	}, message.Payload{}, time.Now())
	require.NoError(t, err)
	return req
}

func accepted(req *message.Request) *message.Response {
	return message.ReplyTo(req, message.ResponseCodeAccepted, message.ResponsePayload{
		Payload: message.NewPayload([]byte("<snapshot-ids/>"), nil),
	})
}

// nopPublisherは、送信に成功するがレスポンスを返さないPublisherです。
func nopPublisher(context.Context, *message.Request) error { return nil }
