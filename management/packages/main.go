/*
Package packages は、デバイスへのソフトウェアパッケージのインストールとアンインストールを行うパッケージです。

インストールはダウンロードとして開始され、デバイスが非同期に進行します。
進捗は DownloadStatus で確認します。
*/
package packages

import (
	"encoding/xml"
	"time"

	"github.com/aptpod/devmgmt-go/errors"
	"github.com/aptpod/devmgmt-go/management"
)

// Appは、パッケージを管理するデバイスアプリケーションです。
var App = management.Application{Name: "DEPLOY-V2", Version: "1.0.0"}

// リソース名です。
const (
	ResourcePackages  = "packages"
	ResourceDownload  = "download"
	ResourceUninstall = "uninstall"
)

const (
	KindGetInstalled   errors.ManagementErrorKind = "packages.get"
	KindInstall        errors.ManagementErrorKind = "packages.install"
	KindDownloadStatus errors.ManagementErrorKind = "packages.download_status"
	KindUninstall      errors.ManagementErrorKind = "packages.uninstall"
)

// メトリクス名です。
const (
	MetricURI              = "dp.uri"
	MetricName             = "dp.name"
	MetricVersion          = "dp.version"
	MetricInstall          = "dp.install"
	MetricReboot           = "dp.reboot"
	MetricRebootDelay      = "dp.reboot.delay"
	MetricJobID            = "job.id"
	MetricDownloadStatus   = "dp.download.status"
	MetricDownloadProgress = "dp.download.progress"
	MetricDownloadSize     = "dp.download.size"
	MetricUninstallStatus  = "dp.uninstall.status"
)

// Statusは、デバイス上で非同期に進行する操作の状態です。
type Status string

const (
	StatusInProgress  Status = "IN_PROGRESS"
	StatusCompleted   Status = "COMPLETED"
	StatusFailed      Status = "FAILED"
	StatusAlreadyDone Status = "ALREADY_DONE"
	StatusNone        Status = "NONE"
)

// Packagesは、デバイスにインストールされているパッケージの一覧です。
type Packages struct {
	XMLName  xml.Name  `xml:"packages"`
	Packages []Package `xml:"package"`
}

// Packageは、インストールされているパッケージです。
type Package struct {
	Name    string   `xml:"name"`
	Version string   `xml:"version"`
	Bundles []Bundle `xml:"bundles>bundle"`
}

// Bundleは、パッケージに含まれるバンドルです。
type Bundle struct {
	Name    string `xml:"name"`
	Version string `xml:"version"`
}

// InstallRequestは、パッケージのインストール要求です。
type InstallRequest struct {
	// ダウンロード元のURI
	URI string

	Name    string
	Version string

	// ダウンロード後にインストールするかどうか
	//
	// nilの場合はインストールします。
	Install *bool

	// インストール後に再起動するかどうか
	Reboot bool

	// 再起動までの待ち時間
	RebootDelay time.Duration
}

// UninstallRequestは、パッケージのアンインストール要求です。
type UninstallRequest struct {
	Name    string
	Version string

	Reboot      bool
	RebootDelay time.Duration
}

// DownloadStatusは、パッケージのダウンロードの進捗です。
type DownloadStatus struct {
	Status Status

	// 進捗率（0-100）
	Progress int

	// ダウンロードするサイズ（バイト）
	Size int64
}

// UninstallOperationは、デバイスが受理したアンインストール操作です。
type UninstallOperation struct {
	ID      string
	Name    string
	Version string
	Status  Status
}
