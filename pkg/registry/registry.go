// Package registry provides the tag → implementation registries that
// drive strategy selection in the pipeline. A hub owns three
// independent instances: generators by kind, formatters by output
// format, and delivery strategies by channel.
package registry

import (
	"sort"
	"sync"

	"github.com/kart-io/dispatchhub/pkg/errors"
	"github.com/kart-io/dispatchhub/pkg/logger"
)

// Registry maps string tags to implementations of one strategy
// category. Registration may happen at any time; subsequent lookups see
// the update immediately, and the last registration for a tag wins.
// Safe for concurrent use: registration takes the write lock,
// resolution the read lock.
type Registry[T any] struct {
	category string
	entries  map[string]T
	logger   logger.Logger
	mu       sync.RWMutex
}

// New creates an empty registry. The category names the strategy set
// in log lines and error details ("generator", "formatter", "delivery").
func New[T any](category string, log logger.Logger) *Registry[T] {
	if log == nil {
		log = logger.Discard
	}
	return &Registry[T]{
		category: category,
		entries:  make(map[string]T),
		logger:   log,
	}
}

// Register stores or overwrites the implementation for tag.
func (r *Registry[T]) Register(tag string, impl T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[tag]; exists {
		r.logger.Warn("Overwriting registered implementation", "category", r.category, "tag", tag)
	}
	r.entries[tag] = impl
	r.logger.Debug("Implementation registered", "category", r.category, "tag", tag)
}

// Resolve returns the registered implementation for tag, or an
// ErrUnknownTag error when absent. The returned value is the exact
// instance that was registered.
func (r *Registry[T]) Resolve(tag string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	impl, exists := r.entries[tag]
	if !exists {
		var zero T
		return zero, errors.Newf(errors.ErrUnknownTag, "no %s registered for tag %q", r.category, tag).
			WithContext("category", r.category).
			WithContext("tag", tag)
	}
	return impl, nil
}

// Has reports whether tag is registered.
func (r *Registry[T]) Has(tag string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.entries[tag]
	return exists
}

// Tags returns the registered tags in sorted order.
func (r *Registry[T]) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tags := make([]string, 0, len(r.entries))
	for tag := range r.entries {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
