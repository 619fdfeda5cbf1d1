/*
Package command は、デバイス上でコマンドを実行するパッケージです。

コマンドの入力と出力は、ペイロードのメトリクスで受け渡します。
*/
package command

import (
	"time"

	"github.com/aptpod/devmgmt-go/errors"
	"github.com/aptpod/devmgmt-go/management"
)

// Appは、コマンドを実行するデバイスアプリケーションです。
var App = management.Application{Name: "CMD-V1", Version: "1.0"}

// KindExecは、コマンド実行の失敗を表す種類です。
const KindExec errors.ManagementErrorKind = "command.exec"

// リクエストのメトリクス名です。
const (
	MetricCommand     = "command.command"
	MetricArgument    = "command.argument"
	MetricEnvironment = "command.environment.pair"
	MetricWorkingDir  = "command.working.directory"
	MetricTimeout     = "command.timeout"
	MetricRunAsync    = "command.run.async"
	MetricPassword    = "command.password"
)

// レスポンスのメトリクス名です。
const (
	MetricStdout   = "command.stdout"
	MetricStderr   = "command.stderr"
	MetricExitCode = "command.exit.code"
	MetricTimedOut = "command.timedout"
)

// Inputは、実行するコマンドです。
type Input struct {
	// コマンド
	Command string

	// 引数
	Arguments []string

	// 環境変数
	Environment map[string]string

	// 作業ディレクトリ
	WorkingDir string

	// 標準入力
	Stdin []byte

	// デバイス上でのコマンドのタイムアウト
	//
	// nilの場合、デバイスのデフォルトを使用します。
	Timeout *time.Duration

	// 完了を待たずに応答するかどうか
	RunAsync *bool

	// デバイスのコマンドサービスのパスワード
	Password string
}

// Outputは、コマンドの実行結果です。
type Output struct {
	Stdout   string
	Stderr   string
	ExitCode int

	// デバイス上でコマンドがタイムアウトしたかどうか
	TimedOut bool

	// デバイスが報告した例外
	ExceptionMessage string
	ExceptionStack   string
}
