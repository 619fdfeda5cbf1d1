/*
Package retry は、Exponential Backoff and Jitter方式のリトライを提供するパッケージです。
*/
package retry

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/aptpod/devmgmt-go/errors"
)

var (
	randFloat64         = rand.Float64
	defaultBaseInterval = 100 * time.Millisecond
	defaultMaxInterval  = 5 * time.Second
)

// Retryは、Exponential Backoff and Jitter方式のリトライを行います。
//
// Jitterは 0.5 ~ 1.5のランダム値です。
type Retry struct {
	// 最大試行回数。0は成功するまで試行し続けます。
	MaxAttempt int

	// 基準リトライ間隔。デフォルトは100ミリ秒です。
	BaseInterval time.Duration

	// 最大基準リトライ間隔。デフォルトは5秒です。
	MaxBaseInterval time.Duration
}

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }

func (e *permanentError) Unwrap() error { return e.err }

// Permanentは、リトライしても成功しないエラーであることを示します。
//
// fがPermanentで包んだエラーを返却した場合、Doはリトライを中止します。
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// Doは、fが成功するまでリトライします。
//
// 最大試行回数に達した場合は、最後のエラーを返却します。
// ctxが終了した場合は、最後のエラーの内容を含めてctxのエラーを返却します。
func (r Retry) Do(ctx context.Context, f func(ctx context.Context) error) error {
	baseInterval := r.BaseInterval
	if baseInterval == 0 {
		baseInterval = defaultBaseInterval
	}
	maxBaseInterval := r.MaxBaseInterval
	if maxBaseInterval == 0 {
		maxBaseInterval = defaultMaxInterval
	}
	for attempt := 0; ; attempt++ {
		err := f(ctx)
		if err == nil {
			return nil
		}
		var perr *permanentError
		if errors.As(err, &perr) {
			return perr.err
		}
		if r.MaxAttempt != 0 && attempt+1 >= r.MaxAttempt {
			return err
		}
		timer := time.NewTimer(nextSleep(attempt, baseInterval, maxBaseInterval))
		select {
		case <-ctx.Done():
			timer.Stop()
			return errors.Errorf("%v: %w", err, ctx.Err())
		case <-timer.C:
		}
	}
}

func nextSleep(count int, base, max time.Duration) time.Duration {
	baseInterval := float64(base) * math.Pow(2, float64(count))
	if baseInterval > float64(max) {
		baseInterval = float64(max)
	}

	jitter := 0.5 + randFloat64()
	return time.Duration(baseInterval * jitter)
}

// Doは、デフォルト設定でfが成功するまでリトライします。
func Do(ctx context.Context, f func(ctx context.Context) error) error {
	return Retry{}.Do(ctx, f)
}
