// Package async provides a bounded in-memory job queue with a worker
// pool and a handle for tracking each job's outcome. The hub uses it
// to process requests asynchronously while keeping the synchronous
// Process contract for each job.
package async

import (
	"context"

	"github.com/kart-io/dispatchhub/pkg/utils/idgen"
)

// Handle tracks one submitted job until its result is available.
type Handle[R any] struct {
	id     string
	done   chan struct{}
	result R
	err    error
}

func newHandle[R any]() *Handle[R] {
	return &Handle[R]{
		id:   idgen.GenerateRequestID(),
		done: make(chan struct{}),
	}
}

// ID returns the handle's unique id.
func (h *Handle[R]) ID() string { return h.id }

// Done is closed when the job has finished.
func (h *Handle[R]) Done() <-chan struct{} { return h.done }

// Result blocks until the job finishes or ctx is cancelled.
func (h *Handle[R]) Result(ctx context.Context) (R, error) {
	select {
	case <-h.done:
		return h.result, h.err
	case <-ctx.Done():
		var zero R
		return zero, ctx.Err()
	}
}

// complete records the outcome and releases waiters. Called once.
func (h *Handle[R]) complete(result R, err error) {
	h.result = result
	h.err = err
	close(h.done)
}
