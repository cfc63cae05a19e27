package delivery

import (
	"context"

	"github.com/kart-io/dispatchhub/pkg/content"
	"github.com/kart-io/dispatchhub/pkg/logger"
	"github.com/kart-io/dispatchhub/pkg/target"
	"github.com/kart-io/dispatchhub/pkg/utils/clock"
)

// EmailStrategy simulates email delivery. It always succeeds and
// records the target address as the response.
type EmailStrategy struct {
	logger logger.Logger
	clock  clock.Clock
}

// NewEmailStrategy creates an email delivery strategy.
func NewEmailStrategy(log logger.Logger, clk clock.Clock) *EmailStrategy {
	if log == nil {
		log = logger.Discard
	}
	if clk == nil {
		clk = clock.System()
	}
	return &EmailStrategy{logger: log, clock: clk}
}

// Name returns "email".
func (s *EmailStrategy) Name() string { return target.TypeEmail }

// Deliver sends the artifact to the target address.
func (s *EmailStrategy) Deliver(ctx context.Context, artifact *content.Artifact, tgt target.Target) *Result {
	started := s.clock.Now()
	if r := ctxResult(ctx, tgt, started); r != nil {
		return r
	}

	s.logger.Info("Email sent", "to", tgt.Value, "kind", artifact.Kind, "format", artifact.Format)
	return succeeded(tgt, tgt.Value, s.clock.Now(), started)
}
