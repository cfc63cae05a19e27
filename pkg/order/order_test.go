package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kart-io/dispatchhub/pkg/errors"
	"github.com/kart-io/dispatchhub/pkg/generator"
	"github.com/kart-io/dispatchhub/pkg/target"
)

var alice = Customer{
	Name:        "Alice Chen",
	Email:       "alice@example.com",
	Phone:       "13800138000",
	DeviceID:    "DEVICE-alice-1",
	Preferences: []string{target.TypeEmail, target.TypeSMS, target.TypePush},
}

func TestCustomer_ContactFor(t *testing.T) {
	tests := []struct {
		channel string
		want    string
		ok      bool
	}{
		{target.TypeEmail, "alice@example.com", true},
		{target.TypeSMS, "13800138000", true},
		{target.TypePush, "DEVICE-alice-1", true},
		{"carrier-pigeon", "", false},
	}
	for _, tt := range tests {
		got, ok := alice.ContactFor(tt.channel)
		assert.Equal(t, tt.ok, ok, "channel %s", tt.channel)
		assert.Equal(t, tt.want, got, "channel %s", tt.channel)
	}

	_, ok := Customer{Name: "No Contact"}.ContactFor(target.TypeEmail)
	assert.False(t, ok)
}

func TestCustomer_Prefers(t *testing.T) {
	assert.True(t, alice.Prefers(target.TypeSMS))
	assert.False(t, alice.Prefers(target.TypeDownload))

	// No recorded preferences means email only.
	bare := Customer{Name: "Bob", Email: "bob@example.com"}
	assert.True(t, bare.Prefers(target.TypeEmail))
	assert.False(t, bare.Prefers(target.TypeSMS))
}

func TestOrder_Validate(t *testing.T) {
	ok := Order{ID: "ORD-001", Customer: alice, Total: 99.5}
	require.NoError(t, ok.Validate())

	noID := Order{Customer: alice}
	assert.True(t, errors.HasCode(noID.Validate(), errors.ErrInvalidPayload))

	noName := Order{ID: "ORD-002"}
	assert.True(t, errors.HasCode(noName.Validate(), errors.ErrInvalidPayload))
}

func TestNewRequest(t *testing.T) {
	o := Order{ID: "ORD-001", Customer: alice, Total: 1299.99}

	req, err := NewRequest(o, target.TypeEmail, target.TypeSMS, target.TypePush)
	require.NoError(t, err)

	assert.Equal(t, generator.KindOrder, req.Kind)
	assert.Equal(t, "text", req.Format)
	assert.Equal(t, "ORD-001", req.Payload["order_id"])
	assert.Equal(t, "Alice Chen", req.Payload["customer_name"])
	assert.Equal(t, 1299.99, req.Payload["total"])

	require.Len(t, req.Targets, 3)
	assert.Equal(t, target.Target{Type: target.TypeEmail, Value: "alice@example.com"}, req.Targets[0])
	assert.Equal(t, target.Target{Type: target.TypeSMS, Value: "13800138000"}, req.Targets[1])
	assert.Equal(t, target.Target{Type: target.TypePush, Value: "DEVICE-alice-1"}, req.Targets[2])
}

func TestNewRequest_MissingContact(t *testing.T) {
	o := Order{
		ID:       "ORD-003",
		Customer: Customer{Name: "Bob", Email: "bob@example.com"},
		Total:    50,
	}

	req, err := NewRequest(o, target.TypeEmail, target.TypeSMS)
	assert.Nil(t, req)
	assert.True(t, errors.HasCode(err, errors.ErrInvalidPayload), "error = %v", err)
}

func TestNewRequest_NoChannels(t *testing.T) {
	o := Order{ID: "ORD-004", Customer: alice, Total: 10}

	req, err := NewRequest(o)
	assert.Nil(t, req)
	assert.True(t, errors.HasCode(err, errors.ErrInvalidRequest))
}

func TestNewRequest_InvalidOrder(t *testing.T) {
	req, err := NewRequest(Order{}, target.TypeEmail)
	assert.Nil(t, req)
	assert.True(t, errors.HasCode(err, errors.ErrInvalidPayload))
}
