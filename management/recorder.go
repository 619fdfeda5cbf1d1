package management

import (
	"context"

	"github.com/aptpod/devmgmt-go/log"
	"github.com/aptpod/devmgmt-go/message"
)

// EventRecorderは、デバイスへのコールを監査のために記録します。
//
// ネットワークへ到達したコール一回につき、必ず一度だけ呼び出されます。
// レスポンスを受信できなかった場合、respはnilです。
type EventRecorder interface {
	Record(ctx context.Context, req *message.Request, resp *message.Response) error
}

// EventRecorderFuncは、関数をEventRecorderとして使用するためのアダプターです。
type EventRecorderFunc func(ctx context.Context, req *message.Request, resp *message.Response) error

// Recordは、f(ctx, req, resp)を呼び出します。
func (f EventRecorderFunc) Record(ctx context.Context, req *message.Request, resp *message.Response) error {
	return f(ctx, req, resp)
}

type logRecorder struct {
	logger log.Logger
}

// NewLogRecorderは、コールをロガーへ出力するEventRecorderを返却します。
func NewLogRecorder(l log.Logger) EventRecorder {
	return &logRecorder{logger: l}
}

func (r *logRecorder) Record(ctx context.Context, req *message.Request, resp *message.Response) error {
	ctx = log.WithTrackCallID(ctx, req.CorrelationID())
	if resp == nil {
		r.logger.Infof(ctx, "device event %v response:none", req)
		return nil
	}
	r.logger.Infof(ctx, "device event %v response:%s", req, resp.ResponseCode())
	return nil
}
