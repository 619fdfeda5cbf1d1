/*
Package log は、devmgmt-go内で使用するロガーを定義するパッケージです。
*/
package log

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

func init() {
	rand.Seed(time.Now().UnixNano())
}

// Loggerは、devmgmt-go内で使用するロガーインターフェースです。
type Logger interface {
	Infof(context.Context, string, ...interface{})
	Warnf(context.Context, string, ...interface{})
	Errorf(context.Context, string, ...interface{})
	Debugf(context.Context, string, ...interface{})
}

var (
	trackTransportIDKey = "trackTransportIDKey"
	trackCallIDKey      = "trackCallIDKey"
)

// WithTrackTransportIDは、新たにトランスポートIDを採番しコンテキストにセットします。
//
// トランスポートIDはワイヤのコネクションが開通されたタイミングでセットします。
// ここで設定されたトランスポートIDは常にログ出力します。
func WithTrackTransportID(ctx context.Context) context.Context {
	return context.WithValue(ctx, &trackTransportIDKey, genTrackID())
}

// TrackTransportIDは、コンテキストにセットされたトランスポートIDを取得します。
func TrackTransportID(ctx context.Context) string {
	v, ok := ctx.Value(&trackTransportIDKey).(string)
	if !ok {
		return ""
	}
	return v
}

// WithTrackCallIDは、コールIDをコンテキストにセットします。
//
// コールIDはリクエストを送信するタイミングで、リクエストのコリレーションIDをセットします。
// 空文字列の場合は新たに採番します。
func WithTrackCallID(ctx context.Context, callID string) context.Context {
	if callID == "" {
		callID = genTrackID()
	}
	return context.WithValue(ctx, &trackCallIDKey, callID)
}

// TrackCallIDは、コンテキストにセットされたコールIDを取得します。
func TrackCallID(ctx context.Context) string {
	v, ok := ctx.Value(&trackCallIDKey).(string)
	if !ok {
		return ""
	}
	return v
}

func genTrackID() string {
	return fmt.Sprintf("%04d-%04d-%04d", rand.Int31n(10000), rand.Int31n(10000), rand.Int31n(10000))
}
