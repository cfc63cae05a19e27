package delivery

import (
	"context"

	"github.com/kart-io/dispatchhub/pkg/content"
	"github.com/kart-io/dispatchhub/pkg/logger"
	"github.com/kart-io/dispatchhub/pkg/target"
	"github.com/kart-io/dispatchhub/pkg/utils/clock"
)

// DefaultCloudBaseURL is used when a cloud target carries no base URL.
const DefaultCloudBaseURL = "https://cloud.company.com"

// CloudStrategy simulates uploading an artifact to cloud storage. It
// always succeeds and synthesizes the upload URL from the base URL and
// the artifact kind.
type CloudStrategy struct {
	logger logger.Logger
	clock  clock.Clock
}

// NewCloudStrategy creates a cloud delivery strategy.
func NewCloudStrategy(log logger.Logger, clk clock.Clock) *CloudStrategy {
	if log == nil {
		log = logger.Discard
	}
	if clk == nil {
		clk = clock.System()
	}
	return &CloudStrategy{logger: log, clock: clk}
}

// Name returns "cloud".
func (s *CloudStrategy) Name() string { return target.TypeCloud }

// Deliver uploads the artifact and reports the synthesized URL.
func (s *CloudStrategy) Deliver(ctx context.Context, artifact *content.Artifact, tgt target.Target) *Result {
	started := s.clock.Now()
	if r := ctxResult(ctx, tgt, started); r != nil {
		return r
	}

	base := tgt.Value
	if base == "" {
		base = DefaultCloudBaseURL
	}
	url := base + "/reports/" + artifact.Kind

	s.logger.Info("Report uploaded to cloud", "url", url)
	return succeeded(tgt, url, s.clock.Now(), started)
}
