package configuration

import (
	"context"
	"time"

	"github.com/AlekSi/pointer"

	"github.com/aptpod/devmgmt-go/errors"
	"github.com/aptpod/devmgmt-go/management"
	"github.com/aptpod/devmgmt-go/message"
)

const (
	KindGet errors.ManagementErrorKind = "configuration.get"
	KindPut errors.ManagementErrorKind = "configuration.put"
)

// Serviceは、デバイスのコンポーネント設定を操作します。
type Service struct {
	svc *management.Service
}

// Newは、Serviceを生成します。
func New(svc *management.Service) *Service {
	return &Service{svc: svc}
}

// Getは、デバイスのコンポーネント設定を取得します。
//
// componentIDがnilの場合は、すべてのコンポーネントの設定を取得します。
func (s *Service) Get(ctx context.Context, scopeID, deviceID string, componentID *string, timeout time.Duration) (*Configurations, error) {
	params := map[string]string{management.ParameterResource: ResourceConfigurations}
	var required []string
	if componentID != nil {
		params[ParameterComponentID] = pointer.GetString(componentID)
		required = append(required, ParameterComponentID)
	}
	res, err := management.Read[Configurations](ctx, s.svc, management.Call{
		ScopeID:  scopeID,
		DeviceID: deviceID,
		Operation: management.Operation{
			Application: App,
			Method:      message.MethodRead,
			Action:      management.ActionRead,
			Parameters:  params,
			Required:    required,
			Kind:        KindGet,
		},
		Timeout: timeout,
	}, management.XMLCodec[Configurations]{})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// Putは、コンポーネント設定をデバイスへ書き込みます。
func (s *Service) Put(ctx context.Context, scopeID, deviceID string, c *Configurations, timeout time.Duration) error {
	if c == nil {
		return errors.NewInvalidArgumentError("configurations", "must not be nil")
	}
	for _, cc := range c.Configurations {
		if cc.ID == "" {
			return errors.NewInvalidArgumentError("configuration.id", "must not be empty")
		}
	}
	body, err := management.EncodeBody[Configurations](s.svc.Decoder(), management.XMLCodec[Configurations]{}, *c)
	if err != nil {
		return err
	}
	return s.svc.Execute(ctx, management.Call{
		ScopeID:  scopeID,
		DeviceID: deviceID,
		Operation: management.Operation{
			Application: App,
			Method:      message.MethodWrite,
			Action:      management.ActionWrite,
			Parameters:  map[string]string{management.ParameterResource: ResourceConfigurations},
			Kind:        KindPut,
		},
		Payload: message.NewPayload(body, nil),
		Timeout: timeout,
	})
}
