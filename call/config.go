package call

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/aptpod/devmgmt-go/log"
)

// DefaultTimeoutは、タイムアウトを指定しないコールのデフォルトのタイムアウトです。
const DefaultTimeout = 30 * time.Second

var defaultConfig = Config{
	DefaultTimeout: DefaultTimeout,
	Logger:         log.NewNop(),
	PublishRate:    rate.Inf,
	PublishBurst:   0,
}

// Configは、Executorの設定です。
type Config struct {
	// タイムアウトに0以下を指定したコールのタイムアウト
	DefaultTimeout time.Duration

	// ロガー
	Logger log.Logger

	// 1秒あたりに送信できるリクエスト数の上限
	//
	// rate.Inf の場合は制限しません。
	PublishRate rate.Limit

	// 送信レート制限のバースト数
	PublishBurst int
}

// DefaultConfigは、デフォルトのConfigを取得します。
func DefaultConfig() *Config {
	c := defaultConfig
	return &c
}

func (c *Config) newLimiter() *rate.Limiter {
	if c.PublishRate == rate.Inf || c.PublishRate <= 0 {
		return nil
	}
	burst := c.PublishBurst
	if burst <= 0 {
		burst = 1
	}
	return rate.NewLimiter(c.PublishRate, burst)
}

// Optionは、Executorのオプションです。
type Option func(*Config)

// WithDefaultTimeoutは、デフォルトのタイムアウトを設定します。
func WithDefaultTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.DefaultTimeout = d
	}
}

// WithLoggerは、ロガーを設定します。
func WithLogger(l log.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

// WithPublishRateLimitは、リクエスト送信のレート制限を設定します。
func WithPublishRateLimit(r rate.Limit, burst int) Option {
	return func(c *Config) {
		c.PublishRate = r
		c.PublishBurst = burst
	}
}
