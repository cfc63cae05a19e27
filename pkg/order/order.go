// Package order provides the order-notification domain objects and
// assembles pipeline requests from them: one request fans an order
// confirmation out over the customer's channels, each channel picking
// its own template and recipient.
package order

import (
	"github.com/kart-io/dispatchhub/pkg/errors"
	"github.com/kart-io/dispatchhub/pkg/format"
	"github.com/kart-io/dispatchhub/pkg/generator"
	"github.com/kart-io/dispatchhub/pkg/request"
	"github.com/kart-io/dispatchhub/pkg/target"
)

// Customer holds a customer's contact information per channel.
type Customer struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	DeviceID    string   `json:"device_id"`
	Preferences []string `json:"preferences,omitempty"`
}

// ContactFor returns the customer's recipient value for a channel.
func (c Customer) ContactFor(channel string) (string, bool) {
	switch channel {
	case target.TypeEmail:
		return c.Email, c.Email != ""
	case target.TypeSMS:
		return c.Phone, c.Phone != ""
	case target.TypePush:
		return c.DeviceID, c.DeviceID != ""
	default:
		return "", false
	}
}

// Prefers reports whether the customer opted into a channel. A
// customer with no recorded preferences accepts email only.
func (c Customer) Prefers(channel string) bool {
	prefs := c.Preferences
	if len(prefs) == 0 {
		prefs = []string{target.TypeEmail}
	}
	for _, p := range prefs {
		if p == channel {
			return true
		}
	}
	return false
}

// Item is one order line.
type Item struct {
	Product string  `json:"product"`
	Amount  float64 `json:"amount"`
}

// Order is a confirmed purchase to notify about.
type Order struct {
	ID       string   `json:"id"`
	Customer Customer `json:"customer"`
	Total    float64  `json:"total"`
	Items    []Item   `json:"items,omitempty"`
}

// Validate checks the fields a notification needs.
func (o Order) Validate() error {
	if o.ID == "" {
		return errors.New(errors.ErrInvalidPayload, "order id cannot be empty")
	}
	if o.Customer.Name == "" {
		return errors.New(errors.ErrInvalidPayload, "order customer name cannot be empty")
	}
	return nil
}

// NewRequest builds the notification request for an order across the
// given channels, in order. Each channel's recipient comes from the
// customer's contact info; a requested channel with no contact info
// rejects the whole request before submission.
func NewRequest(o Order, channels ...string) (*request.Request, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if len(channels) == 0 {
		return nil, errors.New(errors.ErrInvalidRequest, "at least one notification channel is required")
	}

	targets := make([]target.Target, 0, len(channels))
	for _, channel := range channels {
		recipient, ok := o.Customer.ContactFor(channel)
		if !ok {
			return nil, errors.Newf(errors.ErrInvalidPayload, "no contact info for channel %q", channel).
				WithContext("channel", channel)
		}
		targets = append(targets, target.New(channel, recipient))
	}

	payload := request.Payload{
		"order_id":      o.ID,
		"customer_name": o.Customer.Name,
		"total":         o.Total,
	}
	return request.New(generator.KindOrder, format.FormatText, payload, targets...)
}
