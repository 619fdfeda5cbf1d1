/*
Package fleet は、一つの操作を複数のデバイスへ並行して実行するパッケージです。

一つのデバイスへの操作が失敗しても、他のデバイスへの操作は中断しません。
*/
package fleet

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Targetは、操作対象のデバイスです。
type Target struct {
	ScopeID  string
	DeviceID string
}

// Resultは、一つのデバイスに対する操作の結果です。
type Result struct {
	Target Target
	Err    error
}

// Outcomeは、一つのデバイスに対する操作の結果と戻り値です。
type Outcome[T any] struct {
	Target Target
	Value  T
	Err    error
}

// Runは、すべてのターゲットに対してfnを実行し、入力と同じ順序で結果を返却します。
//
// limitは同時に実行する数の上限です。0以下の場合は制限しません。
func Run(ctx context.Context, targets []Target, limit int, fn func(ctx context.Context, t Target) error) []Result {
	outcomes := Map(ctx, targets, limit, func(ctx context.Context, t Target) (struct{}, error) {
		return struct{}{}, fn(ctx, t)
	})
	res := make([]Result, len(outcomes))
	for i, o := range outcomes {
		res[i] = Result{Target: o.Target, Err: o.Err}
	}
	return res
}

// Mapは、すべてのターゲットに対してfnを実行し、入力と同じ順序で戻り値を返却します。
func Map[T any](ctx context.Context, targets []Target, limit int, fn func(ctx context.Context, t Target) (T, error)) []Outcome[T] {
	res := make([]Outcome[T], len(targets))
	var eg errgroup.Group
	if limit > 0 {
		eg.SetLimit(limit)
	}
	for i, t := range targets {
		i, t := i, t
		res[i].Target = t
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				res[i].Err = err
				return nil
			}
			res[i].Value, res[i].Err = fn(ctx, t)
			return nil
		})
	}
	_ = eg.Wait()
	return res
}

// Failedは、失敗した結果のみを返却します。
func Failed(results []Result) []Result {
	var res []Result
	for _, r := range results {
		if r.Err != nil {
			res = append(res, r)
		}
	}
	return res
}
