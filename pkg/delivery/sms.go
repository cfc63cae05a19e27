package delivery

import (
	"context"

	"github.com/kart-io/dispatchhub/pkg/content"
	"github.com/kart-io/dispatchhub/pkg/errors"
	"github.com/kart-io/dispatchhub/pkg/logger"
	"github.com/kart-io/dispatchhub/pkg/target"
	"github.com/kart-io/dispatchhub/pkg/utils/clock"
)

// minPhoneLength is the exclusive lower bound for a deliverable phone
// number: a recipient of 10 characters or fewer is rejected.
const minPhoneLength = 10

// SMSStrategy simulates SMS delivery with phone number validation.
type SMSStrategy struct {
	logger logger.Logger
	clock  clock.Clock
}

// NewSMSStrategy creates an SMS delivery strategy.
func NewSMSStrategy(log logger.Logger, clk clock.Clock) *SMSStrategy {
	if log == nil {
		log = logger.Discard
	}
	if clk == nil {
		clk = clock.System()
	}
	return &SMSStrategy{logger: log, clock: clk}
}

// Name returns "sms".
func (s *SMSStrategy) Name() string { return target.TypeSMS }

// Deliver sends the artifact to the target phone number. A number of
// minPhoneLength characters or fewer fails with InvalidRecipient.
func (s *SMSStrategy) Deliver(ctx context.Context, artifact *content.Artifact, tgt target.Target) *Result {
	started := s.clock.Now()
	if r := ctxResult(ctx, tgt, started); r != nil {
		return r
	}

	if len(tgt.Value) <= minPhoneLength {
		err := errors.Newf(errors.ErrInvalidRecipient, "invalid phone number %q", tgt.Value).
			WithContext("method", target.TypeSMS)
		s.logger.Warn("SMS delivery rejected", "to", tgt.Value, "reason", "invalid phone number")
		return failed(tgt, err, s.clock.Now(), started)
	}

	s.logger.Info("SMS sent", "to", tgt.Value, "kind", artifact.Kind)
	return succeeded(tgt, tgt.Value, s.clock.Now(), started)
}
