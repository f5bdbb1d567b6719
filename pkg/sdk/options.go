package sysdisco

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	driver    string // "valkey", "redis" or "postgres"
	addrs     []string
	password  string
	url       string
	keyPrefix string
	maxConns  int32

	readinessTimeout time.Duration
	retryAttempts    uint
	retryDelay       time.Duration
	retryMaxDelay    time.Duration
	maxResults       int

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithValkey configures the client to connect to a Valkey instance.
func WithValkey(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "valkey"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithRedis configures the client to connect to a Redis instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "redis"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithPostgres configures the client to use Postgres. Migrations run on New.
func WithPostgres(url string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "postgres"
		c.url = url
	})
}

// WithKeyPrefix sets the Valkey/Redis key prefix. Default: "sysdisco:".
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.keyPrefix = prefix
	})
}

// WithMaxConns caps the Postgres pool size.
func WithMaxConns(n int32) Option {
	return optionFunc(func(c *clientConfig) {
		c.maxConns = n
	})
}

// WithReadinessTimeout bounds how long New waits for the store. Default: 10s.
func WithReadinessTimeout(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.readinessTimeout = d
	})
}

// WithRetry configures retries of the lookups discovery performs.
// Defaults: 3 attempts, 100ms initial delay, 2s max delay.
func WithRetry(attempts uint, delay, maxDelay time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.retryAttempts = attempts
		c.retryDelay = delay
		c.retryMaxDelay = maxDelay
	})
}

// WithMaxResults caps the number of recommendations. Default: 5.
func WithMaxResults(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.maxResults = n
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts, durations and
// discovery result sizes) on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
