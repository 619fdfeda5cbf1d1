/*
Package call は、非同期のリクエストとレスポンスを一つの同期的なコールに変換するエグゼキュータを提供するパッケージです。

Executor はリクエストを送信する前に、コリレーションキーで待機中のコールを登録します。
受信側のディスパッチャーが Resolve を呼び出すと、対応するコールへレスポンスを引き渡します。
一つのコールに対して結果（レスポンス、タイムアウト、キャンセル）は必ず一度だけ確定し、
それ以降に届いたレスポンスはログを出力して破棄します。
*/
package call

import (
	"context"

	"github.com/aptpod/devmgmt-go/message"
)

// Publisherは、リクエストを配送するトランスポートの境界です。
//
// wire.ClientConn がこのインターフェースを満たします。
//
//go:generate mockgen -destination ./${GOPACKAGE}mock/${GOFILE} -package ${GOPACKAGE}mock -source ./${GOFILE}
type Publisher interface {
	Publish(ctx context.Context, req *message.Request) error
}

// PublisherFuncは、関数をPublisherとして使用するためのアダプターです。
type PublisherFunc func(ctx context.Context, req *message.Request) error

// Publishは、f(ctx, req)を呼び出します。
func (f PublisherFunc) Publish(ctx context.Context, req *message.Request) error {
	return f(ctx, req)
}
