package history

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kart-io/dispatchhub/pkg/logger"
	"github.com/kart-io/dispatchhub/pkg/utils/idgen"
)

// RedisOptions configures the Redis-backed store.
type RedisOptions struct {
	Addr         string
	Password     string
	DB           int
	KeyPrefix    string
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolSize     int
}

// RedisStore keeps the history in a Redis list so it survives process
// restarts. Entries are JSON-encoded and appended with RPUSH; RPUSH
// plus LRANGE preserves the append-only insertion-order contract.
type RedisStore struct {
	client *redis.Client
	key    string
	logger logger.Logger
}

// NewRedisStore connects to Redis and returns a store rooted at
// <prefix>entries.
func NewRedisStore(opts *RedisOptions, log logger.Logger) (*RedisStore, error) {
	if log == nil {
		log = logger.Discard
	}
	if opts == nil {
		return nil, fmt.Errorf("redis options cannot be nil")
	}
	if opts.KeyPrefix == "" {
		opts.KeyPrefix = "dispatchhub:history:"
	}
	if opts.DialTimeout == 0 {
		opts.DialTimeout = 5 * time.Second
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 3 * time.Second
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = 3 * time.Second
	}

	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  opts.DialTimeout,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		PoolSize:     opts.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Info("Redis history store connected", "addr", opts.Addr, "keyPrefix", opts.KeyPrefix)
	return &RedisStore{
		client: client,
		key:    opts.KeyPrefix + "entries",
		logger: log,
	}, nil
}

// Append RPUSHes the JSON-encoded entry.
func (r *RedisStore) Append(ctx context.Context, entry *Entry) error {
	stored := *entry
	if stored.ID == "" {
		stored.ID = idgen.GenerateEntryID()
	}

	data, err := json.Marshal(&stored)
	if err != nil {
		return fmt.Errorf("failed to encode history entry: %w", err)
	}
	if err := r.client.RPush(ctx, r.key, data).Err(); err != nil {
		r.logger.Error("Failed to append history entry", "error", err)
		return fmt.Errorf("failed to append history entry: %w", err)
	}
	return nil
}

// All returns every entry in insertion order.
func (r *RedisStore) All(ctx context.Context) ([]*Entry, error) {
	return r.scan(ctx, func(*Entry) bool { return true })
}

// FilterByOrder returns entries for the given order id.
func (r *RedisStore) FilterByOrder(ctx context.Context, orderID string) ([]*Entry, error) {
	return r.scan(ctx, func(e *Entry) bool { return e.OrderID == orderID })
}

// FilterByRecipient returns entries whose recipient contains substr.
func (r *RedisStore) FilterByRecipient(ctx context.Context, substr string) ([]*Entry, error) {
	return r.scan(ctx, func(e *Entry) bool { return strings.Contains(e.Recipient, substr) })
}

// Clear deletes every entry. Intended for tests and operational resets.
func (r *RedisStore) Clear(ctx context.Context) error {
	return r.client.Del(ctx, r.key).Err()
}

// Close closes the Redis client.
func (r *RedisStore) Close() error {
	return r.client.Close()
}

func (r *RedisStore) scan(ctx context.Context, keep func(*Entry) bool) ([]*Entry, error) {
	raw, err := r.client.LRange(ctx, r.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read history entries: %w", err)
	}

	entries := make([]*Entry, 0, len(raw))
	for _, data := range raw {
		var entry Entry
		if err := json.Unmarshal([]byte(data), &entry); err != nil {
			r.logger.Warn("Skipping undecodable history entry", "error", err)
			continue
		}
		if keep(&entry) {
			entries = append(entries, &entry)
		}
	}
	return entries, nil
}
