/*
Package config は、YAMLの設定ファイルからデバイス管理クライアントの構成要素を組み立てるパッケージです。

	call:
	  default_timeout: 30s
	  publish_rate: 50
	  publish_burst: 10
	decoder:
	  char_encoding: UTF-8
	encoding: protobuf
	websocket:
	  address: broker.example.com:443
	  path: /devmgmt
	  tls: true
	  library: gorilla
	  oauth2:
	    token_url: https://auth.example.com/oauth2/token
	    client_id: console
	    client_secret: secret
	log:
	  backend: logrus
	  level: info
	  format: json
*/
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/aptpod/devmgmt-go/call"
	"github.com/aptpod/devmgmt-go/encoding"
	"github.com/aptpod/devmgmt-go/errors"
	"github.com/aptpod/devmgmt-go/management"
)

// ライブラリ名です。
const (
	LibraryGorilla = "gorilla"
	LibraryNhooyr  = "nhooyr"
)

// ログのバックエンド名です。
const (
	BackendStd    = "std"
	BackendLogrus = "logrus"
	BackendNop    = "nop"
)

// Configは、設定ファイルの内容です。
type Config struct {
	Call      CallConfig      `yaml:"call"`
	Decoder   DecoderConfig   `yaml:"decoder"`
	Encoding  string          `yaml:"encoding"`
	WebSocket WebSocketConfig `yaml:"websocket"`
	Log       LogConfig       `yaml:"log"`
}

// CallConfigは、コールエグゼキュータの設定です。
type CallConfig struct {
	// デフォルトのタイムアウト
	DefaultTimeout time.Duration `yaml:"default_timeout"`

	// 1秒あたりのリクエスト送信数の上限。0は無制限です。
	PublishRate float64 `yaml:"publish_rate"`

	// 送信数のバースト
	PublishBurst int `yaml:"publish_burst"`
}

// DecoderConfigは、レスポンスデコーダーの設定です。
type DecoderConfig struct {
	CharEncoding string `yaml:"char_encoding"`
}

// WebSocketConfigは、ブローカーへのWebSocket接続の設定です。
type WebSocketConfig struct {
	Address     string        `yaml:"address"`
	Path        string        `yaml:"path"`
	TLS         bool          `yaml:"tls"`
	Library     string        `yaml:"library"`
	DialTimeout time.Duration `yaml:"dial_timeout"`

	// 静的なトークン。OAuth2が設定されている場合は無視します。
	Token string `yaml:"token"`

	// トークンを設定するヘッダー名
	TokenHeader string `yaml:"token_header"`

	OAuth2 *OAuth2Config `yaml:"oauth2"`
	Retry  RetryConfig   `yaml:"retry"`
}

// OAuth2Configは、クライアントクレデンシャルフローでトークンを取得するための設定です。
type OAuth2Config struct {
	TokenURL     string   `yaml:"token_url"`
	ClientID     string   `yaml:"client_id"`
	ClientSecret string   `yaml:"client_secret"`
	Scopes       []string `yaml:"scopes"`
}

// RetryConfigは、接続のリトライ設定です。
type RetryConfig struct {
	MaxAttempt      int           `yaml:"max_attempt"`
	BaseInterval    time.Duration `yaml:"base_interval"`
	MaxBaseInterval time.Duration `yaml:"max_base_interval"`
}

// LogConfigは、ロガーの設定です。
type LogConfig struct {
	Backend string `yaml:"backend"`

	// ログレベル（stdとlogrus）
	Level string `yaml:"level"`

	// logrusの出力形式（text|json）
	Format string `yaml:"format"`
}

// Loadは、ファイルから設定を読み込み、デフォルト値を適用します。
func Load(file string) (*Config, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parseは、YAMLから設定を読み込み、デフォルト値を適用して検証します。
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, errors.Errorf("parse config: %v: %w", err, errors.ErrInvalidArgument)
	}
	ApplyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyDefaultsは、設定されていない項目にデフォルト値を設定します。
func ApplyDefaults(cfg *Config) {
	if cfg.Call.DefaultTimeout == 0 {
		cfg.Call.DefaultTimeout = call.DefaultTimeout
	}
	if cfg.Call.PublishRate > 0 && cfg.Call.PublishBurst == 0 {
		cfg.Call.PublishBurst = 1
	}
	if cfg.Decoder.CharEncoding == "" {
		cfg.Decoder.CharEncoding = management.DefaultCharEncoding
	}
	if cfg.Encoding == "" {
		cfg.Encoding = string(encoding.NameProtobuf)
	}
	if cfg.WebSocket.Library == "" {
		cfg.WebSocket.Library = LibraryGorilla
	}
	if cfg.WebSocket.DialTimeout == 0 {
		cfg.WebSocket.DialTimeout = 10 * time.Second
	}
	if cfg.WebSocket.TokenHeader == "" {
		cfg.WebSocket.TokenHeader = "Authorization"
	}
	if cfg.Log.Backend == "" {
		cfg.Log.Backend = BackendStd
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}

// Validateは、設定値を検証します。
func (c *Config) Validate() error {
	switch {
	case c.Call.DefaultTimeout < 0:
		return errors.NewInvalidArgumentError("call.default_timeout", "must not be negative")
	case c.Call.PublishRate < 0:
		return errors.NewInvalidArgumentError("call.publish_rate", "must not be negative")
	}
	switch encoding.Name(c.Encoding) {
	case encoding.NameProtobuf, encoding.NameJSON:
	default:
		return errors.NewInvalidArgumentError("encoding", "unknown encoding "+c.Encoding)
	}
	switch c.WebSocket.Library {
	case LibraryGorilla, LibraryNhooyr:
	default:
		return errors.NewInvalidArgumentError("websocket.library", "unknown library "+c.WebSocket.Library)
	}
	switch c.Log.Backend {
	case BackendStd, BackendLogrus, BackendNop:
	default:
		return errors.NewInvalidArgumentError("log.backend", "unknown backend "+c.Log.Backend)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.NewInvalidArgumentError("log.format", "unknown format "+c.Log.Format)
	}
	if o := c.WebSocket.OAuth2; o != nil && (o.TokenURL == "" || o.ClientID == "") {
		return errors.NewInvalidArgumentError("websocket.oauth2", "token_url and client_id are required")
	}
	if _, err := management.NewDecoder(c.DecoderConfig()); err != nil {
		return err
	}
	return nil
}
