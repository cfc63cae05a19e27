// Package generator provides the content generation strategies: the
// three report variants (sales, inventory, financial) and the
// per-channel order message variants. Every generator is a pure
// function of its payload plus an injected clock; payload shape is
// validated explicitly before any aggregate is computed.
package generator

import (
	"github.com/kart-io/dispatchhub/pkg/content"
	"github.com/kart-io/dispatchhub/pkg/request"
)

// Generator builds structured content from a request payload.
type Generator interface {
	// Kind returns the content kind this generator produces.
	Kind() string
	// Generate produces content from the payload, or an
	// ErrInvalidPayload / ErrMissingField error when required fields
	// are absent or mistyped. It has no side effects.
	Generate(payload request.Payload) (*content.Content, error)
}

// Generator tags pre-registered by the hub.
const (
	KindSales     = "sales"
	KindInventory = "inventory"
	KindFinancial = "financial"

	KindOrder      = "order"
	KindOrderEmail = "order.email"
	KindOrderSMS   = "order.sms"
	KindOrderPush  = "order.push"
)
