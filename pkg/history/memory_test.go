package history

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"
)

func entry(method, recipient, orderID string, success bool) *Entry {
	return &Entry{
		RequestID: "REQ-test",
		Kind:      "order",
		Format:    "text",
		Method:    method,
		Recipient: recipient,
		OrderID:   orderID,
		Success:   success,
		Timestamp: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
	}
}

func TestMemoryStore_AppendPreservesOrder(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		e := entry("email", fmt.Sprintf("user%d@company.com", i), "", true)
		if err := store.Append(ctx, e); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}

	all, err := store.All(ctx)
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("All() returned %d entries, want 5", len(all))
	}
	for i, e := range all {
		want := fmt.Sprintf("user%d@company.com", i)
		if e.Recipient != want {
			t.Errorf("entry %d recipient = %q, want %q", i, e.Recipient, want)
		}
		if e.ID == "" {
			t.Errorf("entry %d has no assigned id", i)
		}
	}
}

func TestMemoryStore_AllIsIdempotent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Append(ctx, entry("sms", "13800138000", "ORD-001", true)); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	first, _ := store.All(ctx)
	second, _ := store.All(ctx)
	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("All() lengths = %d, %d, want 1, 1", len(first), len(second))
	}

	// Mutating a returned copy must not reach the log.
	first[0].Recipient = "tampered"
	third, _ := store.All(ctx)
	if third[0].Recipient != "13800138000" {
		t.Errorf("returned entries alias the log: recipient = %q", third[0].Recipient)
	}
}

func TestMemoryStore_AppendCopiesEntry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	e := entry("email", "admin@company.com", "", true)
	if err := store.Append(ctx, e); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	e.Recipient = "tampered"

	all, _ := store.All(ctx)
	if all[0].Recipient != "admin@company.com" {
		t.Errorf("log aliases the caller's entry: recipient = %q", all[0].Recipient)
	}
}

func TestMemoryStore_FilterByOrder(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Append(ctx, entry("email", "a@company.com", "ORD-001", true))
	store.Append(ctx, entry("sms", "13800138000", "ORD-002", true))
	store.Append(ctx, entry("push", "DEVICE-1", "ORD-001", false))
	store.Append(ctx, entry("email", "b@company.com", "", true))

	got, err := store.FilterByOrder(ctx, "ORD-001")
	if err != nil {
		t.Fatalf("FilterByOrder() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("FilterByOrder() returned %d entries, want 2", len(got))
	}
	if got[0].Method != "email" || got[1].Method != "push" {
		t.Errorf("FilterByOrder() order = %s, %s, want email, push", got[0].Method, got[1].Method)
	}
}

func TestMemoryStore_FilterByRecipient(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Append(ctx, entry("email", "alice@company.com", "", true))
	store.Append(ctx, entry("email", "bob@other.org", "", true))
	store.Append(ctx, entry("sms", "13800138000", "", true))

	got, err := store.FilterByRecipient(ctx, "company.com")
	if err != nil {
		t.Fatalf("FilterByRecipient() error = %v", err)
	}
	if len(got) != 1 || got[0].Recipient != "alice@company.com" {
		t.Fatalf("FilterByRecipient() = %+v, want only alice", got)
	}

	none, _ := store.FilterByRecipient(ctx, "nobody")
	if len(none) != 0 {
		t.Errorf("FilterByRecipient() with no match returned %d entries", len(none))
	}
}

func TestMemoryStore_ConcurrentAppend(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			store.Append(ctx, entry("email", fmt.Sprintf("user%d@company.com", n), "", true))
		}(i)
	}
	wg.Wait()

	if store.Len() != 32 {
		t.Errorf("Len() = %d, want 32", store.Len())
	}
}
