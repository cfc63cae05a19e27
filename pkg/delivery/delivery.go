// Package delivery provides the delivery strategies. Transport is
// simulated: a strategy validates the recipient, "sends", and reports
// the outcome as a captured Result. A strategy never returns a Go
// error to the caller; per-channel failures must not abort sibling
// channels, so they travel inside the Result.
package delivery

import (
	"context"
	"time"

	"github.com/kart-io/dispatchhub/pkg/content"
	"github.com/kart-io/dispatchhub/pkg/errors"
	"github.com/kart-io/dispatchhub/pkg/target"
)

// Result captures the outcome of one delivery attempt.
type Result struct {
	Target    target.Target `json:"target"`
	Success   bool          `json:"success"`
	Error     string        `json:"error,omitempty"`
	Response  string        `json:"response,omitempty"` // delivery echo: address, file name, URL
	Timestamp time.Time     `json:"timestamp"`
	Duration  time.Duration `json:"duration"`
}

// Strategy delivers an artifact to one target.
type Strategy interface {
	// Name returns the delivery method tag.
	Name() string
	// Deliver attempts delivery. Failures are captured in the Result,
	// never raised. Implementations honor ctx cancellation and
	// deadline.
	Deliver(ctx context.Context, artifact *content.Artifact, tgt target.Target) *Result
}

// succeeded builds a successful result stamped at now.
func succeeded(tgt target.Target, response string, now time.Time, started time.Time) *Result {
	return &Result{
		Target:    tgt,
		Success:   true,
		Response:  response,
		Timestamp: now,
		Duration:  now.Sub(started),
	}
}

// failed builds a failed result carrying the coded error text.
func failed(tgt target.Target, err *errors.Error, now time.Time, started time.Time) *Result {
	return &Result{
		Target:    tgt,
		Success:   false,
		Error:     err.Error(),
		Timestamp: now,
		Duration:  now.Sub(started),
	}
}

// ctxResult translates a context error into a failed result, or nil
// when the context is still live.
func ctxResult(ctx context.Context, tgt target.Target, now time.Time) *Result {
	switch ctx.Err() {
	case nil:
		return nil
	case context.DeadlineExceeded:
		return failed(tgt, errors.New(errors.ErrDeliveryTimeout, "delivery deadline exceeded"), now, now)
	default:
		return failed(tgt, errors.New(errors.ErrDeliveryCancelled, "delivery cancelled"), now, now)
	}
}
