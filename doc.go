/*
Package devmgmtは、リモートデバイスに対するデバイス管理コールのクライアント実装パッケージです。

デバイス管理コールは、デバイス上のアプリケーションに対してリクエストを送信し、
相関IDが一致するレスポンスをタイムアウトまで待ち受けます。
このモジュールは以下のパッケージで構成されます。

  - message: リクエスト、レスポンス、チャンネル、ペイロードのメッセージ型
  - encoding: メッセージとバイト列の変換（Protocol Buffers、JSON）
  - transport: バイト列のトランスポート（WebSocket、インメモリのパイプ）
  - wire: クライアント側とデバイス側のコネクション
  - call: リクエストの送信とレスポンスの相関付けを行うエグゼキュータ
  - management: 引数検証、権限チェック、送信、イベント記録、デコードのパイプライン
  - management/snapshot, configuration, command, packages, bundles: アプリケーションごとのサービス
  - fleet: 複数デバイスへの並行コール
  - config: YAMLの設定ファイルからの組み立て

# Get Snapshots

このサンプルではWebSocketでデバイスへ接続し、スナップショットの一覧を取得します。

	package main

	import (
		"context"
		"log"
		"os"

		"github.com/aptpod/devmgmt-go/call"
		"github.com/aptpod/devmgmt-go/config"
		"github.com/aptpod/devmgmt-go/encoding"
		"github.com/aptpod/devmgmt-go/management"
		"github.com/aptpod/devmgmt-go/management/snapshot"
		"github.com/aptpod/devmgmt-go/wire"
	)

	func main() {
		ctx := context.Background()
		cfg, err := config.Load("devmgmt.yaml")
		if err != nil {
			log.Fatal(err)
		}
		logger, err := cfg.Logger(os.Stderr)
		if err != nil {
			log.Fatal(err)
		}
		enc, err := cfg.NewEncoding()
		if err != nil {
			log.Fatal(err)
		}
		dialer, err := cfg.WebSocketDialer(ctx, logger)
		if err != nil {
			log.Fatal(err)
		}
		tr, err := dialer.Dial(ctx)
		if err != nil {
			log.Fatal(err)
		}

		conn := wire.Connect(&wire.ClientConnConfig{
			Transport: encoding.NewTransport(&encoding.TransportConfig{Transport: tr, Encoding: enc}),
			Logger:    logger,
		})
		defer conn.Close()

		exec := call.NewExecutor(conn, cfg.ExecutorOptions(logger)...)
		defer exec.Close()
		go conn.Serve(ctx, exec)

		svc := snapshot.New(management.NewService(&management.ServiceConfig{
			Sender: exec,
			Logger: logger,
		}))
		snapshots, err := svc.Get(ctx, "scope-1", "device-1", 0)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("snapshots: %v", snapshots.IDs)
	}

設定ファイルの例です。

	call:
	  default_timeout: 30s
	  publish_rate: 100
	  publish_burst: 10
	encoding: protobuf
	websocket:
	  address: 127.0.0.1:8080
	  path: /devmgmt
	  library: gorilla
	  oauth2:
	    token_url: http://127.0.0.1:8081/oauth2/token
	    client_id: client
	    client_secret: secret
	log:
	  backend: logrus
	  level: info
	  format: json
*/
package devmgmt
