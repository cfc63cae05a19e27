package delivery

import (
	"context"
	"fmt"

	"github.com/kart-io/dispatchhub/pkg/content"
	"github.com/kart-io/dispatchhub/pkg/logger"
	"github.com/kart-io/dispatchhub/pkg/target"
	"github.com/kart-io/dispatchhub/pkg/utils/clock"
)

// DefaultDownloadPath is used when a download target carries no path.
const DefaultDownloadPath = "./reports"

// DownloadStrategy simulates making an artifact available for
// download. It always succeeds and synthesizes a deterministic file
// name from the artifact kind, format, and the clock.
type DownloadStrategy struct {
	logger logger.Logger
	clock  clock.Clock
}

// NewDownloadStrategy creates a download delivery strategy.
func NewDownloadStrategy(log logger.Logger, clk clock.Clock) *DownloadStrategy {
	if log == nil {
		log = logger.Discard
	}
	if clk == nil {
		clk = clock.System()
	}
	return &DownloadStrategy{logger: log, clock: clk}
}

// Name returns "download".
func (s *DownloadStrategy) Name() string { return target.TypeDownload }

// Deliver stages the artifact under the target path (or
// DefaultDownloadPath) and reports the synthesized location.
func (s *DownloadStrategy) Deliver(ctx context.Context, artifact *content.Artifact, tgt target.Target) *Result {
	started := s.clock.Now()
	if r := ctxResult(ctx, tgt, started); r != nil {
		return r
	}

	path := tgt.Value
	if path == "" {
		path = DefaultDownloadPath
	}
	filename := fmt.Sprintf("report_%s_%s.%s",
		artifact.Kind, started.Format("20060102_150405"), artifact.Format)
	location := path + "/" + filename

	s.logger.Info("Report available for download", "file", filename, "location", location)
	return succeeded(tgt, location, s.clock.Now(), started)
}
