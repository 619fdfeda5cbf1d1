package management

import (
	"context"
	"time"

	"github.com/aptpod/devmgmt-go/errors"
	"github.com/aptpod/devmgmt-go/message"
)

// Validateは、コールの識別子と必須の値がすべて指定されていることを確認します。
//
// 不足している場合は*errors.InvalidArgumentErrorを返却します。
func Validate(c Call) error {
	switch {
	case c.ScopeID == "":
		return errors.NewInvalidArgumentError("scopeId", "must not be empty")
	case c.DeviceID == "":
		return errors.NewInvalidArgumentError("deviceId", "must not be empty")
	case c.Operation.Application.Name == "":
		return errors.NewInvalidArgumentError("application", "must not be empty")
	case !c.Operation.Method.Valid():
		return errors.NewInvalidArgumentError("method", "unknown method "+string(c.Operation.Method))
	}
	for _, name := range c.Operation.Required {
		if c.Operation.Parameters[name] == "" {
			return errors.NewInvalidArgumentError(name, "must not be empty")
		}
	}
	for _, arg := range c.Arguments {
		if arg.Value == "" {
			return errors.NewInvalidArgumentError(arg.Name, "must not be empty")
		}
	}
	return nil
}

// Buildは、コールからリクエストメッセージを組み立てます。
func Build(c Call, now time.Time) (*message.Request, error) {
	req, err := message.NewRequest(c.ScopeID, c.DeviceID, message.Channel{
		AppName:    c.Operation.Application.Name,
		AppVersion: c.Operation.Application.Version,
		Method:     c.Operation.Method,
		Parameters: c.Operation.Parameters,
	}, c.Payload, now)
	if err != nil {
		return nil, errors.NewInvalidArgumentError("request", err.Error())
	}
	return req, nil
}

// Permissionは、コールに必要な権限です。
func (c Call) Permission() Permission {
	return Permission{
		Domain:  DomainDeviceManagement,
		Action:  c.Operation.Action,
		ScopeID: c.ScopeID,
	}
}

// Authorizeは、コールに必要な権限を確認します。
//
// 拒否された場合は*errors.AuthorizationErrorを返却します。
func (s *Service) Authorize(ctx context.Context, c Call) error {
	perm := c.Permission()
	err := s.authorizer.CheckPermission(ctx, perm)
	if err == nil {
		return nil
	}
	var aerr *errors.AuthorizationError
	if errors.As(err, &aerr) {
		return err
	}
	return &errors.AuthorizationError{
		Domain:  perm.Domain,
		Action:  string(perm.Action),
		ScopeID: perm.ScopeID,
		Err:     err,
	}
}

// Invokeは、リクエストを送信してレスポンスを待ち受け、結果をイベントレコーダーへ一度だけ渡します。
//
// レスポンスを受信できなかった場合、イベントレコーダーにはnilのレスポンスを渡します。
// レコーダーにはctxのキャンセルと期限を引き継がないコンテキストを渡します。
// レコーダーの失敗はログへ出力し、呼び出し元へは返却しません。
func (s *Service) Invoke(ctx context.Context, req *message.Request, timeout time.Duration) (*message.Response, error) {
	resp, err := s.sender.Send(ctx, req, timeout)
	rctx := detach(ctx)
	if rerr := s.recorder.Record(rctx, req, resp); rerr != nil {
		s.logger.Warnf(rctx, "failed to record device event %v: %+v", req, rerr)
	}
	return resp, err
}

func (s *Service) invoke(ctx context.Context, c Call) (*message.Response, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	if err := s.Authorize(ctx, c); err != nil {
		return nil, err
	}
	req, err := Build(c, s.now())
	if err != nil {
		return nil, err
	}
	return s.Invoke(ctx, req, c.Timeout)
}

// Exchangeは、コールを実行し、受理されたレスポンスを返却します。
//
// デバイスが受理しなかった場合は*errors.ManagementResponseErrorを返却します。
func (s *Service) Exchange(ctx context.Context, c Call) (*message.Response, error) {
	resp, err := s.invoke(ctx, c)
	if err != nil {
		return nil, err
	}
	if err := s.decoder.Check(c.Operation.Kind, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Executeは、受理されたかどうかだけを結果とするコールを実行します。
func (s *Service) Execute(ctx context.Context, c Call) error {
	_, err := s.Exchange(ctx, c)
	return err
}

// Readは、コールを実行し、受理されたレスポンスのボディをcodecでデコードします。
func Read[T any](ctx context.Context, s *Service, c Call, codec BodyCodec[T]) (T, error) {
	resp, err := s.invoke(ctx, c)
	if err != nil {
		var zero T
		return zero, err
	}
	return Decode(s.decoder, c.Operation.Kind, resp, codec)
}
