/*
Package management は、デバイス管理コールのパイプラインを提供するパッケージです。

各アプリケーションは Operation を組み立て、以下のステージを順に通してデバイスを操作します。

	Validate → Authorize → Build → Invoke（送信と記録）→ Check / Decode

それぞれのステージは個別に呼び出してテストできます。Service.Exchange、Service.Execute、Read は
これらを合成したものです。
*/
package management

import (
	"time"

	"github.com/aptpod/devmgmt-go/errors"
	"github.com/aptpod/devmgmt-go/message"
)

// DomainDeviceManagementは、デバイス管理操作の権限ドメインです。
const DomainDeviceManagement = "device_management"

// ParameterResourceは、操作対象のリソース名を表すチャンネルのパラメータ名です。
const ParameterResource = "resource"

// Actionは、権限チェックで使用するアクションです。
type Action string

const (
	ActionRead    Action = "read"
	ActionWrite   Action = "write"
	ActionExecute Action = "execute"
)

// Applicationは、デバイス上のアプリケーションの名前とバージョンです。
type Application struct {
	Name    string
	Version string
}

// Operationは、一つのデバイス管理操作を表す記述子です。
//
// アプリケーションごとのビルダーはOperationを生成するだけで、メッセージの型は共通です。
type Operation struct {
	// 宛先のアプリケーション
	Application Application

	// メソッド
	Method message.Method

	// 権限チェックのアクション
	Action Action

	// チャンネルのパラメータ
	Parameters map[string]string

	// 空文字列であってはならないパラメータ名
	Required []string

	// 失敗時のエラーの種類
	Kind errors.ManagementErrorKind
}

// Argumentは、呼び出し元が指定した値のうち、空であってはならないものです。
type Argument struct {
	Name  string
	Value string
}

// Callは、デバイスに対する一回のコールです。
type Call struct {
	ScopeID   string
	DeviceID  string
	Operation Operation

	// リクエストのペイロード
	Payload message.Payload

	// Payloadの元になった値のうち、空であってはならないもの
	Arguments []Argument

	// タイムアウト
	//
	// 0以下の場合、エグゼキュータのデフォルトを使用します。
	Timeout time.Duration
}
