// Package config provides functional-option configuration for the hub.
// Every collaborator (logger, clock, history store, telemetry) is
// injected here; the hub constructs nothing global.
package config

import (
	"fmt"
	"time"

	"github.com/kart-io/dispatchhub/pkg/history"
	"github.com/kart-io/dispatchhub/pkg/logger"
	"github.com/kart-io/dispatchhub/pkg/observability"
	"github.com/kart-io/dispatchhub/pkg/utils/clock"
)

// Config carries the hub's collaborators and tuning knobs.
type Config struct {
	Logger          logger.Logger
	Clock           clock.Clock
	History         history.Store
	Telemetry       *observability.Config
	DeliveryTimeout time.Duration
	QueueCapacity   int
	Workers         int

	// SkipDefaults leaves the hub's registries empty so tests can
	// inject doubles; the built-in generator/formatter/delivery sets
	// are not pre-registered.
	SkipDefaults bool

	redisHistory *history.RedisOptions
}

// Option mutates the configuration during construction.
type Option func(*Config) error

// New builds a validated configuration.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{
		Logger:          logger.New(),
		Clock:           clock.System(),
		DeliveryTimeout: 5 * time.Second,
		QueueCapacity:   256,
		Workers:         4,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if cfg.redisHistory != nil {
		store, err := history.NewRedisStore(cfg.redisHistory, cfg.Logger)
		if err != nil {
			return nil, err
		}
		cfg.History = store
	}
	if cfg.History == nil {
		cfg.History = history.NewMemoryStore()
	}
	return cfg, nil
}

// WithLogger sets a custom logger.
func WithLogger(log logger.Logger) Option {
	return func(cfg *Config) error {
		if log == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		cfg.Logger = log
		return nil
	}
}

// WithClock sets the time source.
func WithClock(clk clock.Clock) Option {
	return func(cfg *Config) error {
		if clk == nil {
			return fmt.Errorf("clock cannot be nil")
		}
		cfg.Clock = clk
		return nil
	}
}

// WithHistoryStore sets the history store.
func WithHistoryStore(store history.Store) Option {
	return func(cfg *Config) error {
		if store == nil {
			return fmt.Errorf("history store cannot be nil")
		}
		cfg.History = store
		return nil
	}
}

// WithRedisHistory backs the history with Redis. The store is built
// after every option has applied, so it always logs through the final
// logger no matter where WithLogger appears in the option list.
func WithRedisHistory(opts *history.RedisOptions) Option {
	return func(cfg *Config) error {
		if opts == nil {
			return fmt.Errorf("redis options cannot be nil")
		}
		cfg.redisHistory = opts
		return nil
	}
}

// WithTelemetry enables OpenTelemetry tracing and metrics.
func WithTelemetry(tcfg *observability.Config) Option {
	return func(cfg *Config) error {
		cfg.Telemetry = tcfg
		return nil
	}
}

// WithDeliveryTimeout bounds each delivery attempt.
func WithDeliveryTimeout(timeout time.Duration) Option {
	return func(cfg *Config) error {
		if timeout <= 0 {
			return fmt.Errorf("delivery timeout must be positive")
		}
		cfg.DeliveryTimeout = timeout
		return nil
	}
}

// WithQueueCapacity sets the async queue's bound.
func WithQueueCapacity(capacity int) Option {
	return func(cfg *Config) error {
		if capacity <= 0 {
			return fmt.Errorf("queue capacity must be positive")
		}
		cfg.QueueCapacity = capacity
		return nil
	}
}

// WithWorkers sets the async worker count.
func WithWorkers(workers int) Option {
	return func(cfg *Config) error {
		if workers <= 0 {
			return fmt.Errorf("worker count must be positive")
		}
		cfg.Workers = workers
		return nil
	}
}

// WithoutDefaults leaves the registries empty at construction.
func WithoutDefaults() Option {
	return func(cfg *Config) error {
		cfg.SkipDefaults = true
		return nil
	}
}
