package history

import (
	"context"
	"strings"
	"sync"

	"github.com/kart-io/dispatchhub/pkg/utils/idgen"
)

// MemoryStore is the default in-process Store. Suitable for tests and
// deployments where history need not outlive the process.
type MemoryStore struct {
	entries []*Entry
	mu      sync.RWMutex
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make([]*Entry, 0)}
}

// Append adds an entry, assigning an ID when the entry has none. The
// entry is copied so later caller mutations cannot reach the log.
func (m *MemoryStore) Append(_ context.Context, entry *Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *entry
	if stored.ID == "" {
		stored.ID = idgen.GenerateEntryID()
	}
	m.entries = append(m.entries, &stored)
	return nil
}

// All returns copies of every entry in insertion order.
func (m *MemoryStore) All(_ context.Context) ([]*Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copyEntries(m.entries, func(*Entry) bool { return true }), nil
}

// FilterByOrder returns entries for the given order id.
func (m *MemoryStore) FilterByOrder(_ context.Context, orderID string) ([]*Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copyEntries(m.entries, func(e *Entry) bool { return e.OrderID == orderID }), nil
}

// FilterByRecipient returns entries whose recipient contains substr.
func (m *MemoryStore) FilterByRecipient(_ context.Context, substr string) ([]*Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copyEntries(m.entries, func(e *Entry) bool { return strings.Contains(e.Recipient, substr) }), nil
}

// Len returns the number of entries.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Close is a no-op for the memory store.
func (m *MemoryStore) Close() error { return nil }

func copyEntries(entries []*Entry, keep func(*Entry) bool) []*Entry {
	out := make([]*Entry, 0, len(entries))
	for _, e := range entries {
		if keep(e) {
			c := *e
			out = append(out, &c)
		}
	}
	return out
}
