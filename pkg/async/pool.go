package async

import (
	"context"
	"sync"

	"github.com/kart-io/dispatchhub/pkg/errors"
	"github.com/kart-io/dispatchhub/pkg/logger"
)

// Job computes one result under the submitter's context.
type Job[R any] func(ctx context.Context) (R, error)

type task[R any] struct {
	ctx    context.Context
	run    Job[R]
	handle *Handle[R]
}

// Pool runs submitted jobs on a fixed set of workers over a bounded
// queue. Submit never blocks: a full queue is reported immediately.
type Pool[R any] struct {
	tasks  chan *task[R]
	closed bool
	wg     sync.WaitGroup
	logger logger.Logger

	// mu orders Submit's closed check + send against Close's channel
	// close, so a Submit racing Close reports ErrQueueClosed instead
	// of sending on a closed channel.
	mu sync.RWMutex
}

// NewPool starts workers goroutines over a queue of the given capacity.
func NewPool[R any](capacity, workers int, log logger.Logger) *Pool[R] {
	if log == nil {
		log = logger.Discard
	}
	if capacity <= 0 {
		capacity = 256
	}
	if workers <= 0 {
		workers = 4
	}

	p := &Pool[R]{
		tasks:  make(chan *task[R], capacity),
		logger: log,
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
	log.Debug("Async pool started", "workers", workers, "capacity", capacity)
	return p
}

// Submit enqueues a job and returns its handle. Returns ErrQueueClosed
// after Close, or ErrQueueFull when the queue is at capacity. Safe to
// call concurrently with Close.
func (p *Pool[R]) Submit(ctx context.Context, run Job[R]) (*Handle[R], error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return nil, errors.New(errors.ErrQueueClosed, "async pool is closed")
	}

	t := &task[R]{ctx: ctx, run: run, handle: newHandle[R]()}
	select {
	case p.tasks <- t:
		return t.handle, nil
	default:
		return nil, errors.New(errors.ErrQueueFull, "async queue is full")
	}
}

// Close stops accepting jobs, drains the queue, and waits for workers.
func (p *Pool[R]) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.tasks)
	p.mu.Unlock()

	p.wg.Wait()
	p.logger.Debug("Async pool stopped")
}

func (p *Pool[R]) worker(id int) {
	defer p.wg.Done()
	for t := range p.tasks {
		if err := t.ctx.Err(); err != nil {
			var zero R
			t.handle.complete(zero, err)
			continue
		}
		result, err := t.run(t.ctx)
		if err != nil {
			p.logger.Warn("Async job failed", "worker", id, "handle", t.handle.ID(), "error", err)
		}
		t.handle.complete(result, err)
	}
}
