package config

import (
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kart-io/dispatchhub/pkg/history"
	"github.com/kart-io/dispatchhub/pkg/logger"
	"github.com/kart-io/dispatchhub/pkg/utils/clock"
)

func TestNew_Defaults(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)

	assert.NotNil(t, cfg.Logger)
	assert.NotNil(t, cfg.Clock)
	assert.IsType(t, &history.MemoryStore{}, cfg.History)
	assert.Equal(t, 5*time.Second, cfg.DeliveryTimeout)
	assert.Equal(t, 256, cfg.QueueCapacity)
	assert.Equal(t, 4, cfg.Workers)
	assert.False(t, cfg.SkipDefaults)
}

func TestNew_Options(t *testing.T) {
	clk := clock.Fixed(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC))
	store := history.NewMemoryStore()

	cfg, err := New(
		WithLogger(logger.Discard),
		WithClock(clk),
		WithHistoryStore(store),
		WithDeliveryTimeout(time.Second),
		WithQueueCapacity(16),
		WithWorkers(2),
		WithoutDefaults(),
	)
	require.NoError(t, err)

	assert.Equal(t, logger.Discard, cfg.Logger)
	assert.Equal(t, clk, cfg.Clock)
	assert.Same(t, store, cfg.History)
	assert.Equal(t, time.Second, cfg.DeliveryTimeout)
	assert.Equal(t, 16, cfg.QueueCapacity)
	assert.Equal(t, 2, cfg.Workers)
	assert.True(t, cfg.SkipDefaults)
}

func TestNew_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"nil logger", WithLogger(nil)},
		{"nil redis options", WithRedisHistory(nil)},
		{"nil clock", WithClock(nil)},
		{"nil history store", WithHistoryStore(nil)},
		{"zero delivery timeout", WithDeliveryTimeout(0)},
		{"negative queue capacity", WithQueueCapacity(-1)},
		{"zero workers", WithWorkers(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := New(tt.opt)
			assert.Nil(t, cfg)
			assert.Error(t, err)
		})
	}
}

// recordingLogger captures every message it receives.
type recordingLogger struct {
	mu   sync.Mutex
	msgs []string
}

func (l *recordingLogger) LogMode(logger.LogLevel) logger.Logger { return l }
func (l *recordingLogger) Debug(msg string, _ ...any)            { l.record(msg) }
func (l *recordingLogger) Info(msg string, _ ...any)             { l.record(msg) }
func (l *recordingLogger) Warn(msg string, _ ...any)             { l.record(msg) }
func (l *recordingLogger) Error(msg string, _ ...any)            { l.record(msg) }

func (l *recordingLogger) record(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.msgs = append(l.msgs, msg)
}

func TestWithRedisHistory_UsesFinalLogger(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set, skipping Redis-backed config test")
	}

	rec := &recordingLogger{}
	// WithLogger appears after WithRedisHistory; the store must still
	// log through it.
	cfg, err := New(
		WithRedisHistory(&history.RedisOptions{Addr: addr, KeyPrefix: "dispatchhub:test:config:"}),
		WithLogger(rec),
	)
	require.NoError(t, err)
	defer cfg.History.Close()

	assert.IsType(t, &history.RedisStore{}, cfg.History)
	assert.NotEmpty(t, rec.msgs)
}
