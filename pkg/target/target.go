// Package target provides the delivery target structure shared by the
// report and notification pipelines.
package target

import "github.com/kart-io/dispatchhub/pkg/errors"

// Target names a delivery channel and the recipient or location on it.
type Target struct {
	Type  string `json:"type"`  // delivery method tag: "email", "sms", "push", "download", "cloud"
	Value string `json:"value"` // address, phone number, device id, path, ...
}

// Delivery method tags.
const (
	TypeEmail    = "email"
	TypeSMS      = "sms"
	TypePush     = "push"
	TypeDownload = "download"
	TypeCloud    = "cloud"
)

// New creates a target.
func New(targetType, value string) Target {
	return Target{Type: targetType, Value: value}
}

// NewEmail creates an email target.
func NewEmail(address string) Target {
	return Target{Type: TypeEmail, Value: address}
}

// NewSMS creates an SMS target.
func NewSMS(phone string) Target {
	return Target{Type: TypeSMS, Value: phone}
}

// NewPush creates a push notification target.
func NewPush(deviceID string) Target {
	return Target{Type: TypePush, Value: deviceID}
}

// NewDownload creates a download target. The value is the destination
// directory; the file name is synthesized at delivery time.
func NewDownload(path string) Target {
	return Target{Type: TypeDownload, Value: path}
}

// NewCloud creates a cloud upload target rooted at the given base URL.
func NewCloud(baseURL string) Target {
	return Target{Type: TypeCloud, Value: baseURL}
}

// Validate checks the target has a type. The value may legitimately be
// empty at this level; delivery strategies apply channel-specific
// recipient validation.
func (t Target) Validate() error {
	if t.Type == "" {
		return errors.New(errors.ErrInvalidRequest, "target type cannot be empty")
	}
	return nil
}

// String returns "type:value".
func (t Target) String() string {
	return t.Type + ":" + t.Value
}
