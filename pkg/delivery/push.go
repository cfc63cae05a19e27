package delivery

import (
	"context"
	"strings"

	"github.com/kart-io/dispatchhub/pkg/content"
	"github.com/kart-io/dispatchhub/pkg/errors"
	"github.com/kart-io/dispatchhub/pkg/logger"
	"github.com/kart-io/dispatchhub/pkg/target"
	"github.com/kart-io/dispatchhub/pkg/utils/clock"
)

// devicePrefix is the identifier prefix a deliverable device id carries.
const devicePrefix = "DEVICE-"

// PushStrategy simulates push notification delivery with device id
// validation.
type PushStrategy struct {
	logger logger.Logger
	clock  clock.Clock
}

// NewPushStrategy creates a push delivery strategy.
func NewPushStrategy(log logger.Logger, clk clock.Clock) *PushStrategy {
	if log == nil {
		log = logger.Discard
	}
	if clk == nil {
		clk = clock.System()
	}
	return &PushStrategy{logger: log, clock: clk}
}

// Name returns "push".
func (s *PushStrategy) Name() string { return target.TypePush }

// Deliver sends the artifact to the target device. A device id without
// the DEVICE- prefix fails with InvalidRecipient.
func (s *PushStrategy) Deliver(ctx context.Context, artifact *content.Artifact, tgt target.Target) *Result {
	started := s.clock.Now()
	if r := ctxResult(ctx, tgt, started); r != nil {
		return r
	}

	if !strings.HasPrefix(tgt.Value, devicePrefix) {
		err := errors.Newf(errors.ErrInvalidRecipient, "invalid device id %q", tgt.Value).
			WithContext("method", target.TypePush)
		s.logger.Warn("Push delivery rejected", "to", tgt.Value, "reason", "invalid device id")
		return failed(tgt, err, s.clock.Now(), started)
	}

	s.logger.Info("Push notification sent", "to", tgt.Value, "kind", artifact.Kind)
	return succeeded(tgt, tgt.Value, s.clock.Now(), started)
}
