// Package request defines the pipeline request. A request is built in
// one validated step and treated as read-only once submitted; the
// constructor copies the payload and target list so the caller cannot
// alias into a submitted request.
package request

import (
	"github.com/kart-io/dispatchhub/pkg/errors"
	"github.com/kart-io/dispatchhub/pkg/target"
	"github.com/kart-io/dispatchhub/pkg/utils/idgen"
)

// Payload is the opaque structured input a generator consumes:
// already-parsed mappings and sequences of primitive values.
type Payload map[string]any

// Request describes what to produce and how to deliver it.
type Request struct {
	ID      string          `json:"id"`
	Kind    string          `json:"kind"`    // generator tag: "sales", "inventory", "financial", "order.email", ...
	Format  string          `json:"format"`  // formatter tag: "pdf", "excel", "html", "text"
	Payload Payload         `json:"payload"` // generator input
	Targets []target.Target `json:"targets"` // delivery fan-out, attempted in order
}

// New builds a request with all fields validated up front. This
// replaces a stepwise mutable builder: a request either exists
// complete and valid, or not at all.
func New(kind, format string, payload Payload, targets ...target.Target) (*Request, error) {
	if kind == "" {
		return nil, errors.New(errors.ErrInvalidRequest, "request kind cannot be empty")
	}
	if format == "" {
		return nil, errors.New(errors.ErrInvalidRequest, "request format cannot be empty")
	}
	if payload == nil {
		return nil, errors.New(errors.ErrInvalidRequest, "request payload cannot be nil")
	}
	if len(targets) == 0 {
		return nil, errors.New(errors.ErrInvalidRequest, "request must have at least one target")
	}
	for _, tgt := range targets {
		if err := tgt.Validate(); err != nil {
			return nil, err
		}
	}

	payloadCopy := make(Payload, len(payload))
	for k, v := range payload {
		payloadCopy[k] = v
	}
	targetsCopy := make([]target.Target, len(targets))
	copy(targetsCopy, targets)

	return &Request{
		ID:      idgen.GenerateRequestID(),
		Kind:    kind,
		Format:  format,
		Payload: payloadCopy,
		Targets: targetsCopy,
	}, nil
}
