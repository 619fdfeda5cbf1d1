package command

import (
	"context"
	"time"

	"github.com/aptpod/devmgmt-go/errors"
	"github.com/aptpod/devmgmt-go/management"
	"github.com/aptpod/devmgmt-go/message"
)

// Serviceは、デバイス上でコマンドを実行します。
type Service struct {
	svc *management.Service
}

// Newは、Serviceを生成します。
func New(svc *management.Service) *Service {
	return &Service{svc: svc}
}

// Execは、デバイス上でコマンドを実行し、その結果を返却します。
//
// 終了コードが0以外でも、デバイスがコマンドを受理した場合はエラーになりません。
func (s *Service) Exec(ctx context.Context, scopeID, deviceID string, in *Input, timeout time.Duration) (*Output, error) {
	if in == nil {
		return nil, errors.NewInvalidArgumentError("input", "must not be nil")
	}
	resp, err := s.svc.Exchange(ctx, management.Call{
		ScopeID:  scopeID,
		DeviceID: deviceID,
		Operation: management.Operation{
			Application: App,
			Method:      message.MethodExecute,
			Action:      management.ActionExecute,
			Kind:        KindExec,
		},
		Payload:   message.NewPayload(in.Stdin, encodeInput(in)),
		Arguments: []management.Argument{{Name: "command", Value: in.Command}},
		Timeout:   timeout,
	})
	if err != nil {
		return nil, err
	}
	out, err := decodeOutput(resp)
	if err != nil {
		return nil, management.ParseFailure(KindExec, resp, formatMetrics(resp.Payload().Metrics()), err)
	}
	return out, nil
}
