// Package clock provides an injectable time source so generated
// timestamps, history entries, and synthesized file names are
// deterministic under test.
package clock

import "time"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System returns the real wall clock.
func System() Clock { return systemClock{} }

// FixedClock always reports the same instant.
type FixedClock struct {
	at time.Time
}

// Fixed returns a clock pinned at the given instant.
func Fixed(at time.Time) *FixedClock {
	return &FixedClock{at: at}
}

// Now returns the pinned instant.
func (f *FixedClock) Now() time.Time { return f.at }

// Advance moves the pinned instant forward by d.
func (f *FixedClock) Advance(d time.Duration) { f.at = f.at.Add(d) }
