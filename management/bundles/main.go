/*
Package bundles は、デバイス上のバンドルを一覧し、起動と停止を行うパッケージです。
*/
package bundles

import (
	"context"
	"encoding/xml"
	"time"

	"github.com/aptpod/devmgmt-go/errors"
	"github.com/aptpod/devmgmt-go/management"
	"github.com/aptpod/devmgmt-go/message"
)

// Appは、バンドルを管理するデバイスアプリケーションです。
var App = management.Application{Name: "DEPLOY-V2", Version: "1.0.0"}

const (
	ResourceBundles = "bundles"
	ResourceStart   = "start"
	ResourceStop    = "stop"

	// ParameterBundleIDは、バンドルIDのパラメータ名です。
	ParameterBundleID = "bundleId"
)

const (
	KindGet   errors.ManagementErrorKind = "bundles.get"
	KindStart errors.ManagementErrorKind = "bundles.start"
	KindStop  errors.ManagementErrorKind = "bundles.stop"
)

// Stateは、バンドルの状態です。
type State string

const (
	StateInstalled   State = "INSTALLED"
	StateResolved    State = "RESOLVED"
	StateStarting    State = "STARTING"
	StateActive      State = "ACTIVE"
	StateStopping    State = "STOPPING"
	StateUninstalled State = "UNINSTALLED"
)

// Bundlesは、デバイス上のバンドルの一覧です。
type Bundles struct {
	XMLName xml.Name `xml:"bundles"`
	Bundles []Bundle `xml:"bundle"`
}

// Bundleは、デバイス上のバンドルです。
type Bundle struct {
	ID      int64  `xml:"id"`
	Name    string `xml:"name"`
	State   State  `xml:"state"`
	Version string `xml:"version"`
}

// Serviceは、デバイスのバンドルを操作します。
type Service struct {
	svc *management.Service
}

// Newは、Serviceを生成します。
func New(svc *management.Service) *Service {
	return &Service{svc: svc}
}

// Getは、デバイス上のバンドルの一覧を取得します。
func (s *Service) Get(ctx context.Context, scopeID, deviceID string, timeout time.Duration) (*Bundles, error) {
	res, err := management.Read[Bundles](ctx, s.svc, management.Call{
		ScopeID:  scopeID,
		DeviceID: deviceID,
		Operation: management.Operation{
			Application: App,
			Method:      message.MethodRead,
			Action:      management.ActionRead,
			Parameters:  map[string]string{management.ParameterResource: ResourceBundles},
			Kind:        KindGet,
		},
		Timeout: timeout,
	}, management.XMLCodec[Bundles]{})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// Startは、バンドルを起動します。
func (s *Service) Start(ctx context.Context, scopeID, deviceID, bundleID string, timeout time.Duration) error {
	return s.svc.Execute(ctx, bundleCall(scopeID, deviceID, bundleID, ResourceStart, KindStart, timeout))
}

// Stopは、バンドルを停止します。
func (s *Service) Stop(ctx context.Context, scopeID, deviceID, bundleID string, timeout time.Duration) error {
	return s.svc.Execute(ctx, bundleCall(scopeID, deviceID, bundleID, ResourceStop, KindStop, timeout))
}

func bundleCall(scopeID, deviceID, bundleID, resource string, kind errors.ManagementErrorKind, timeout time.Duration) management.Call {
	return management.Call{
		ScopeID:  scopeID,
		DeviceID: deviceID,
		Operation: management.Operation{
			Application: App,
			Method:      message.MethodExecute,
			Action:      management.ActionExecute,
			Parameters: map[string]string{
				management.ParameterResource: resource,
				ParameterBundleID:            bundleID,
			},
			Required: []string{ParameterBundleID},
			Kind:     kind,
		},
		Timeout: timeout,
	}
}
