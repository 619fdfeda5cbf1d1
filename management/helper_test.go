package management_test

import (
	"context"
	"sync"
	"time"

	"github.com/aptpod/devmgmt-go/errors"
	"github.com/aptpod/devmgmt-go/management"
	"github.com/aptpod/devmgmt-go/message"
)

var snapshotApp = management.Application{Name: "CONF-V1", Version: "1.0"}

func snapshotGetCall() management.Call {
	return management.Call{
		ScopeID:  "scope",
		DeviceID: "device",
		Operation: management.Operation{
			Application: snapshotApp,
			Method:      message.MethodRead,
			Action:      management.ActionRead,
			Parameters:  map[string]string{"resource": "snapshots"},
			Kind:        "snapshot.get",
		},
		Timeout: time.Second,
	}
}

func snapshotRollbackCall(snapshotID string) management.Call {
	return management.Call{
		ScopeID:  "scope",
		DeviceID: "device",
		Operation: management.Operation{
			Application: snapshotApp,
			Method:      message.MethodExecute,
			Action:      management.ActionExecute,
			Parameters:  map[string]string{"resource": "snapshots", "snapshotId": snapshotID},
			Required:    []string{"snapshotId"},
			Kind:        "snapshot.rollback",
		},
		Timeout: time.Second,
	}
}

type snapshotIDs struct {
	IDs []int64 `xml:"snapshotId"`
}

type senderFunc func(ctx context.Context, req *message.Request, timeout time.Duration) (*message.Response, error)

func (f senderFunc) Send(ctx context.Context, req *message.Request, timeout time.Duration) (*message.Response, error) {
	return f(ctx, req, timeout)
}

func replySender(code message.ResponseCode, p message.ResponsePayload) senderFunc {
	return func(ctx context.Context, req *message.Request, timeout time.Duration) (*message.Response, error) {
		return message.ReplyTo(req, code, p), nil
	}
}

func timeoutSender() senderFunc {
	return func(ctx context.Context, req *message.Request, timeout time.Duration) (*message.Response, error) {
		return nil, &errors.TimeoutError{Request: req, Timeout: timeout}
	}
}

type event struct {
	req  *message.Request
	resp *message.Response
}

type recorder struct {
	mu     sync.Mutex
	events []event
	err    error
}

func (r *recorder) Record(_ context.Context, req *message.Request, resp *message.Response) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event{req: req, resp: resp})
	return r.err
}

func (r *recorder) Events() []event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]event(nil), r.events...)
}
