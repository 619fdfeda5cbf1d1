package management_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/aptpod/devmgmt-go/encoding/json"
	"github.com/aptpod/devmgmt-go/errors"
	. "github.com/aptpod/devmgmt-go/management"
	"github.com/aptpod/devmgmt-go/management/managementtest"
	"github.com/aptpod/devmgmt-go/message"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestDevice_Read(t *testing.T) {
	d := managementtest.NewDeviceWithConfig(&managementtest.Config{
		Handler: func(req *message.Request) *message.Response {
			return managementtest.Accept(req, []byte("<snapshot-ids><snapshotId>10</snapshotId></snapshot-ids>"), nil)
		},
		Encoding: json.NewEncoding(),
	})
	defer d.Close()

	got, err := Read[snapshotIDs](context.Background(), d.Service, snapshotGetCall(), XMLCodec[snapshotIDs]{})
	require.NoError(t, err)
	assert.Equal(t, snapshotIDs{IDs: []int64{10}}, got)

	// デバイス側で受信したチャンネルは送信したものと一致する
	req := d.LastRequest()
	require.NotNil(t, req)
	assert.Equal(t, message.Channel{
		AppName:    "CONF-V1",
		AppVersion: "1.0",
		Method:     message.MethodRead,
		Parameters: map[string]string{"resource": "snapshots"},
	}, req.Channel())
	assert.Equal(t, 0, d.Executor.Pending())
}

func TestDevice_Timeout(t *testing.T) {
	d := managementtest.NewDevice(nil)
	defer d.Close()

	c := snapshotGetCall()
	c.Timeout = 50 * time.Millisecond
	start := time.Now()
	_, err := Read[snapshotIDs](context.Background(), d.Service, c, XMLCodec[snapshotIDs]{})
	elapsed := time.Since(start)

	assert.ErrorIs(t, err, errors.ErrTimeout)
	assert.True(t, elapsed >= c.Timeout, "elapsed %s", elapsed)
	events := d.Recorder.Events()
	require.Len(t, events, 1)
	assert.Nil(t, events[0].Response)
	assert.Equal(t, 0, d.Executor.Pending())
}

func TestDevice_NotFound(t *testing.T) {
	d := managementtest.NewDevice(func(req *message.Request) *message.Response {
		return managementtest.Reject(req, message.ResponseCodeNotFound, "snapshot 7 not found", "")
	})
	defer d.Close()

	err := d.Service.Execute(context.Background(), snapshotRollbackCall("7"))
	assert.ErrorIs(t, err, errors.ErrSnapshotManagement)
	merr, ok := errors.AsManagementResponseError(err)
	require.True(t, ok)
	assert.Equal(t, message.ResponseCodeNotFound, merr.ResponseCode)
	assert.Equal(t, "snapshot 7 not found", merr.ExceptionMessage)
	assert.Len(t, d.Recorder.Events(), 1)
}
