package errors

// Error categories group codes by the pipeline stage that produced them.
const (
	RegistryCategory   = "REG"
	ValidationCategory = "VAL"
	DeliveryCategory   = "DLV"
	QueueCategory      = "QUE"
	SystemCategory     = "SYS"
)

// Registry error codes.
const (
	// ErrUnknownTag is returned when resolving a tag with no registered
	// implementation. It rejects the request before any side effect.
	ErrUnknownTag Code = "REG001"
)

// Validation error codes.
const (
	// ErrInvalidPayload is returned when a generator's required payload
	// fields are absent or mistyped. Fatal for the whole request.
	ErrInvalidPayload Code = "VAL001"
	// ErrMissingField marks a specific absent payload field.
	ErrMissingField Code = "VAL002"
	// ErrInvalidRequest is returned when a request fails construction.
	ErrInvalidRequest Code = "VAL003"
)

// Delivery error codes.
const (
	// ErrInvalidRecipient marks malformed contact information. Local to
	// one delivery channel; never aborts sibling channels.
	ErrInvalidRecipient Code = "DLV001"
	// ErrDeliveryTimeout marks a delivery attempt cut off by its deadline.
	ErrDeliveryTimeout Code = "DLV002"
	// ErrDeliveryCancelled marks a delivery attempt skipped by context
	// cancellation.
	ErrDeliveryCancelled Code = "DLV003"
)

// Queue error codes.
const (
	ErrQueueFull   Code = "QUE001"
	ErrQueueClosed Code = "QUE002"
)

// System error codes.
const (
	ErrInternal Code = "SYS001"
)

// Category returns the category prefix of a code.
func (c Code) Category() string {
	if len(c) < 3 {
		return SystemCategory
	}
	return string(c[:3])
}

// IsFatal reports whether an error of this code rejects the whole
// request, as opposed to a single delivery channel.
func (c Code) IsFatal() bool {
	return c.Category() == RegistryCategory || c.Category() == ValidationCategory
}
