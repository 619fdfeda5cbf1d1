package packages

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/google/uuid"

	"github.com/aptpod/devmgmt-go/errors"
	"github.com/aptpod/devmgmt-go/management"
	"github.com/aptpod/devmgmt-go/message"
)

var newOperationID = func() string {
	return uuid.NewString()
}

// Serviceは、デバイスのパッケージを操作します。
type Service struct {
	svc *management.Service
}

// Newは、Serviceを生成します。
func New(svc *management.Service) *Service {
	return &Service{svc: svc}
}

func operation(method message.Method, action management.Action, resource string, kind errors.ManagementErrorKind) management.Operation {
	return management.Operation{
		Application: App,
		Method:      method,
		Action:      action,
		Parameters:  map[string]string{management.ParameterResource: resource},
		Kind:        kind,
	}
}

// GetInstalledは、デバイスにインストールされているパッケージの一覧を取得します。
func (s *Service) GetInstalled(ctx context.Context, scopeID, deviceID string, timeout time.Duration) (*Packages, error) {
	res, err := management.Read[Packages](ctx, s.svc, management.Call{
		ScopeID:   scopeID,
		DeviceID:  deviceID,
		Operation: operation(message.MethodRead, management.ActionRead, ResourcePackages, KindGetInstalled),
		Timeout:   timeout,
	}, management.XMLCodec[Packages]{})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// Installは、パッケージのダウンロードとインストールを開始し、操作IDを返却します。
//
// 操作の完了は待ちません。
func (s *Service) Install(ctx context.Context, scopeID, deviceID string, r *InstallRequest, timeout time.Duration) (string, error) {
	if r == nil {
		return "", errors.NewInvalidArgumentError("installRequest", "must not be nil")
	}
	id := newOperationID()
	metrics := map[string]string{
		MetricURI:         r.URI,
		MetricName:        r.Name,
		MetricVersion:     r.Version,
		MetricInstall:     strconv.FormatBool(r.Install == nil || pointer.GetBool(r.Install)),
		MetricReboot:      strconv.FormatBool(r.Reboot),
		MetricRebootDelay: strconv.FormatInt(r.RebootDelay.Milliseconds(), 10),
		MetricJobID:       id,
	}
	err := s.svc.Execute(ctx, management.Call{
		ScopeID:   scopeID,
		DeviceID:  deviceID,
		Operation: operation(message.MethodExecute, management.ActionExecute, ResourceDownload, KindInstall),
		Payload:   message.NewPayload(nil, metrics),
		Arguments: []management.Argument{
			{Name: "uri", Value: r.URI},
			{Name: "name", Value: r.Name},
			{Name: "version", Value: r.Version},
		},
		Timeout: timeout,
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// DownloadStatusは、実行中のダウンロードの進捗を取得します。
func (s *Service) DownloadStatus(ctx context.Context, scopeID, deviceID string, timeout time.Duration) (*DownloadStatus, error) {
	resp, err := s.svc.Exchange(ctx, management.Call{
		ScopeID:   scopeID,
		DeviceID:  deviceID,
		Operation: operation(message.MethodRead, management.ActionRead, ResourceDownload, KindDownloadStatus),
		Timeout:   timeout,
	})
	if err != nil {
		return nil, err
	}
	p := resp.Payload()
	res := &DownloadStatus{Status: StatusNone}
	if v, ok := p.Metric(MetricDownloadStatus); ok {
		res.Status = Status(strings.TrimSpace(v))
	}
	if v, ok := p.Metric(MetricDownloadProgress); ok {
		if res.Progress, err = strconv.Atoi(strings.TrimSpace(v)); err != nil {
			return nil, management.ParseFailure(KindDownloadStatus, resp, MetricDownloadProgress+"="+v, err)
		}
	}
	if v, ok := p.Metric(MetricDownloadSize); ok {
		if res.Size, err = strconv.ParseInt(strings.TrimSpace(v), 10, 64); err != nil {
			return nil, management.ParseFailure(KindDownloadStatus, resp, MetricDownloadSize+"="+v, err)
		}
	}
	return res, nil
}

// Uninstallは、パッケージのアンインストールを開始します。
func (s *Service) Uninstall(ctx context.Context, scopeID, deviceID string, r *UninstallRequest, timeout time.Duration) (*UninstallOperation, error) {
	if r == nil {
		return nil, errors.NewInvalidArgumentError("uninstallRequest", "must not be nil")
	}
	id := newOperationID()
	resp, err := s.svc.Exchange(ctx, management.Call{
		ScopeID:   scopeID,
		DeviceID:  deviceID,
		Operation: operation(message.MethodExecute, management.ActionExecute, ResourceUninstall, KindUninstall),
		Payload: message.NewPayload(nil, map[string]string{
			MetricName:        r.Name,
			MetricVersion:     r.Version,
			MetricReboot:      strconv.FormatBool(r.Reboot),
			MetricRebootDelay: strconv.FormatInt(r.RebootDelay.Milliseconds(), 10),
			MetricJobID:       id,
		}),
		Arguments: []management.Argument{
			{Name: "name", Value: r.Name},
			{Name: "version", Value: r.Version},
		},
		Timeout: timeout,
	})
	if err != nil {
		return nil, err
	}
	op := &UninstallOperation{
		ID:      id,
		Name:    r.Name,
		Version: r.Version,
		Status:  StatusInProgress,
	}
	if v, ok := resp.Payload().Metric(MetricUninstallStatus); ok && v != "" {
		op.Status = Status(v)
	}
	return op, nil
}
