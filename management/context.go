package management

import (
	"context"
	"time"
)

// valueOnlyContextは、親の値のみを引き継ぎ、キャンセルと期限を引き継がないコンテキストです。
type valueOnlyContext struct {
	context.Context
}

func (valueOnlyContext) Deadline() (time.Time, bool) { return time.Time{}, false }
func (valueOnlyContext) Done() <-chan struct{}       { return nil }
func (valueOnlyContext) Err() error                  { return nil }

// detachは、ctxの値（トラックIDなど）を保持したまま、キャンセルされないコンテキストを返却します。
func detach(ctx context.Context) context.Context {
	return valueOnlyContext{Context: ctx}
}
