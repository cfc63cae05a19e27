package history

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// redisStore skips unless a Redis instance is reachable via REDIS_ADDR.
func redisStore(t *testing.T) *RedisStore {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set, skipping Redis store tests")
	}

	store, err := NewRedisStore(&RedisOptions{
		Addr:      addr,
		KeyPrefix: "dispatchhub:test:" + t.Name() + ":",
	}, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		store.Clear(context.Background())
		store.Close()
	})
	return store
}

func TestRedisStore_AppendAll(t *testing.T) {
	store := redisStore(t)
	ctx := context.Background()

	e := &Entry{
		RequestID: "REQ-redis",
		Kind:      "sales",
		Format:    "pdf",
		Method:    "email",
		Recipient: "admin@company.com",
		Success:   true,
		Timestamp: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, store.Append(ctx, e))

	all, err := store.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "REQ-redis", all[0].RequestID)
	assert.Equal(t, "admin@company.com", all[0].Recipient)
	assert.NotEmpty(t, all[0].ID)
}

func TestRedisStore_Filters(t *testing.T) {
	store := redisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, &Entry{Method: "email", Recipient: "a@company.com", OrderID: "ORD-001"}))
	require.NoError(t, store.Append(ctx, &Entry{Method: "sms", Recipient: "13800138000", OrderID: "ORD-002"}))

	byOrder, err := store.FilterByOrder(ctx, "ORD-001")
	require.NoError(t, err)
	require.Len(t, byOrder, 1)
	assert.Equal(t, "email", byOrder[0].Method)

	byRecipient, err := store.FilterByRecipient(ctx, "138001")
	require.NoError(t, err)
	require.Len(t, byRecipient, 1)
	assert.Equal(t, "sms", byRecipient[0].Method)
}
