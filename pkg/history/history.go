// Package history provides the append-only audit log of delivery
// attempts. Entries are never edited or removed once appended; every
// completed generator+delivery pairing produces exactly one entry, and
// a request rejected before content exists produces none.
package history

import (
	"context"
	"time"
)

// Entry is the immutable audit record of one delivery attempt.
type Entry struct {
	ID        string    `json:"id"`
	RequestID string    `json:"request_id"`
	Kind      string    `json:"kind"`
	Format    string    `json:"format"`
	Method    string    `json:"method"`
	Recipient string    `json:"recipient"`
	OrderID   string    `json:"order_id,omitempty"`
	Success   bool      `json:"success"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Store is an append-only, insertion-ordered entry log.
type Store interface {
	// Append adds an entry. Entries are never mutated afterwards.
	Append(ctx context.Context, entry *Entry) error
	// All returns every entry in insertion order.
	All(ctx context.Context) ([]*Entry, error)
	// FilterByOrder returns entries whose OrderID equals orderID.
	FilterByOrder(ctx context.Context, orderID string) ([]*Entry, error)
	// FilterByRecipient returns entries whose Recipient contains substr.
	FilterByRecipient(ctx context.Context, substr string) ([]*Entry, error)
	// Close releases store resources.
	Close() error
}
