package generator

import (
	"fmt"

	"github.com/kart-io/dispatchhub/pkg/content"
	"github.com/kart-io/dispatchhub/pkg/request"
	"github.com/kart-io/dispatchhub/pkg/target"
	"github.com/kart-io/dispatchhub/pkg/utils/clock"
)

// smsMaxLength is the single-segment SMS character budget; the SMS
// message variant truncates to it.
const smsMaxLength = 160

// OrderMessageGenerator builds the confirmation message for one
// notification channel. The payload must carry "order_id",
// "customer_name", and "total"; the channel selects the template.
type OrderMessageGenerator struct {
	channel string
	clock   clock.Clock
}

// NewOrderMessageGenerator creates the message generator for a channel
// (target.TypeEmail, target.TypeSMS, or target.TypePush).
func NewOrderMessageGenerator(channel string, clk clock.Clock) *OrderMessageGenerator {
	if clk == nil {
		clk = clock.System()
	}
	return &OrderMessageGenerator{channel: channel, clock: clk}
}

// Kind returns "order".
func (g *OrderMessageGenerator) Kind() string { return KindOrder }

// Channel returns the notification channel this generator templates for.
func (g *OrderMessageGenerator) Channel() string { return g.channel }

// Generate renders the channel template with the order fields.
func (g *OrderMessageGenerator) Generate(payload request.Payload) (*content.Content, error) {
	orderID, err := stringField(payload, "order_id")
	if err != nil {
		return nil, err
	}
	name, err := stringField(payload, "customer_name")
	if err != nil {
		return nil, err
	}
	total, err := numberField(payload, "total")
	if err != nil {
		return nil, err
	}

	var body string
	switch g.channel {
	case target.TypeEmail:
		body = fmt.Sprintf("Dear %s, your order #%s for $%.2f has been confirmed. Thank you for your purchase.",
			name, orderID, total)
	case target.TypeSMS:
		body = fmt.Sprintf("Order #%s confirmed. Total: $%.2f. Thanks!", orderID, total)
		// Truncate by characters, not bytes, so a multi-byte rune is
		// never split.
		if runes := []rune(body); len(runes) > smsMaxLength {
			body = string(runes[:smsMaxLength])
		}
	case target.TypePush:
		body = fmt.Sprintf("Order confirmed! #%s - $%.2f", orderID, total)
	default:
		body = "Order confirmed."
	}

	return content.New(KindOrder, body, map[string]any{
		"order_id":      orderID,
		"customer_name": name,
		"total":         round2(total),
		"channel":       g.channel,
	}, g.clock.Now()), nil
}
