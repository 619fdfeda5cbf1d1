package packages_test

import (
	"context"
	"testing"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/aptpod/devmgmt-go/errors"
	"github.com/aptpod/devmgmt-go/management/managementtest"
	. "github.com/aptpod/devmgmt-go/management/packages"
	"github.com/aptpod/devmgmt-go/message"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestService_GetInstalled(t *testing.T) {
	d := managementtest.NewDevice(func(req *message.Request) *message.Response {
		return managementtest.Accept(req, []byte(`<packages>
  <package>
    <name>org.eclipse.kura.demo.heater</name>
    <version>1.0.300</version>
    <bundles><bundle><name>org.eclipse.kura.demo.heater</name><version>1.0.300</version></bundle></bundles>
  </package>
</packages>`), nil)
	})
	defer d.Close()

	got, err := New(d.Service).GetInstalled(context.Background(), "scope", "device", time.Second)
	require.NoError(t, err)
	assert.Equal(t, []Package{{
		Name:    "org.eclipse.kura.demo.heater",
		Version: "1.0.300",
		Bundles: []Bundle{{Name: "org.eclipse.kura.demo.heater", Version: "1.0.300"}},
	}}, got.Packages)

	ch := d.LastRequest().Channel()
	assert.Equal(t, "DEPLOY-V2", ch.AppName)
	assert.Equal(t, map[string]string{"resource": "packages"}, ch.Parameters)
}

func TestService_Install(t *testing.T) {
	SetNewOperationID(t, func() string { return "op-1" })
	d := managementtest.NewDevice(func(req *message.Request) *message.Response {
		return managementtest.Accept(req, nil, nil)
	})
	defer d.Close()

	id, err := New(d.Service).Install(context.Background(), "scope", "device", &InstallRequest{
		URI:         "https://example.com/heater.dp",
		Name:        "heater",
		Version:     "1.0.300",
		Install:     pointer.ToBool(false),
		Reboot:      true,
		RebootDelay: 30 * time.Second,
	}, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "op-1", id)

	req := d.LastRequest()
	require.NotNil(t, req)
	assert.Equal(t, message.MethodExecute, req.Channel().Method)
	assert.Equal(t, map[string]string{"resource": "download"}, req.Channel().Parameters)
	assert.Equal(t, map[string]string{
		"dp.uri":          "https://example.com/heater.dp",
		"dp.name":         "heater",
		"dp.version":      "1.0.300",
		"dp.install":      "false",
		"dp.reboot":       "true",
		"dp.reboot.delay": "30000",
		"job.id":          "op-1",
	}, req.Payload().Metrics())
}

func TestService_Install_Invalid(t *testing.T) {
	d := managementtest.NewDevice(nil)
	defer d.Close()
	s := New(d.Service)

	tests := []struct {
		name     string
		req      *InstallRequest
		argument string
	}{
		{name: "nil", argument: "installRequest"},
		{name: "no uri", req: &InstallRequest{Name: "n", Version: "v"}, argument: "uri"},
		{name: "no name", req: &InstallRequest{URI: "u", Version: "v"}, argument: "name"},
		{name: "no version", req: &InstallRequest{URI: "u", Name: "n"}, argument: "version"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Install(context.Background(), "scope", "device", tt.req, time.Second)
			ierr, ok := errors.AsInvalidArgumentError(err)
			require.True(t, ok)
			assert.Equal(t, tt.argument, ierr.Argument)
		})
	}
	assert.Len(t, d.Requests(), 0)
}

func TestService_DownloadStatus(t *testing.T) {
	tests := []struct {
		name    string
		metrics map[string]string
		want    *DownloadStatus
		wantErr bool
	}{
		{
			name: "in progress",
			metrics: map[string]string{
				"dp.download.status":   "IN_PROGRESS",
				"dp.download.progress": "42",
				"dp.download.size":     "1048576",
			},
			want: &DownloadStatus{Status: StatusInProgress, Progress: 42, Size: 1048576},
		},
		{
			name: "none",
			want: &DownloadStatus{Status: StatusNone},
		},
		{
			name:    "bad progress",
			metrics: map[string]string{"dp.download.progress": "half"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := managementtest.NewDevice(func(req *message.Request) *message.Response {
				return managementtest.Accept(req, nil, tt.metrics)
			})
			defer d.Close()

			got, err := New(d.Service).DownloadStatus(context.Background(), "scope", "device", time.Second)
			if tt.wantErr {
				assert.ErrorIs(t, err, errors.ErrPackageManagement)
				merr, ok := errors.AsManagementResponseError(err)
				require.True(t, ok)
				assert.True(t, merr.IsParseFailure())
				assert.Equal(t, "dp.download.progress=half", merr.Body)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_Uninstall(t *testing.T) {
	SetNewOperationID(t, func() string { return "op-2" })

	t.Run("accepted", func(t *testing.T) {
		d := managementtest.NewDevice(func(req *message.Request) *message.Response {
			return managementtest.Accept(req, nil, map[string]string{"dp.uninstall.status": "COMPLETED"})
		})
		defer d.Close()

		got, err := New(d.Service).Uninstall(context.Background(), "scope", "device", &UninstallRequest{Name: "heater", Version: "1.0.300"}, time.Second)
		require.NoError(t, err)
		assert.Equal(t, &UninstallOperation{ID: "op-2", Name: "heater", Version: "1.0.300", Status: StatusCompleted}, got)
		assert.Equal(t, map[string]string{"resource": "uninstall"}, d.LastRequest().Channel().Parameters)
	})

	t.Run("rejected", func(t *testing.T) {
		d := managementtest.NewDevice(func(req *message.Request) *message.Response {
			return managementtest.Reject(req, message.ResponseCodeNotFound, "package heater not installed", "at uninstall")
		})
		defer d.Close()

		_, err := New(d.Service).Uninstall(context.Background(), "scope", "device", &UninstallRequest{Name: "heater", Version: "1.0.300"}, time.Second)
		assert.ErrorIs(t, err, errors.ErrPackageManagement)
		assert.ErrorIs(t, err, errors.ErrOperationNotFound)
		merr, ok := errors.AsManagementResponseError(err)
		require.True(t, ok)
		assert.Equal(t, KindUninstall, merr.Kind)
		assert.Equal(t, "at uninstall", merr.ExceptionStack)
	})
}
