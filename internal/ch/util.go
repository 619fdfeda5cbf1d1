/*
Package ch は、コンテキストの終了を考慮したチャンネル操作のヘルパーです。
*/
package ch

import "context"

// WriteOrDoneは、vをcへ送信します。
//
// 送信前にctxが終了した場合はfalseを返却します。
func WriteOrDone[T any](ctx context.Context, v T, c chan<- T) bool {
	select {
	case c <- v:
		return true
	case <-ctx.Done():
		return false
	}
}

// ReadOrDoneOneは、cから一つ受信します。
//
// ctxが終了した場合、またはcが閉じられた場合はfalseを返却します。
func ReadOrDoneOne[T any](ctx context.Context, c <-chan T) (T, bool) {
	var t T
	select {
	case <-ctx.Done():
		return t, false
	case v, ok := <-c:
		if !ok {
			return t, false
		}
		return v, true
	}
}
