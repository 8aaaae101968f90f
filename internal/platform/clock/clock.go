// Package clock provides an injectable wall-clock so time-dependent code
// stays deterministic under test
package clock

import "time"

// Clock yields the current instant. Components that resolve relative dates
// must capture a single instant per operation rather than calling this
// repeatedly mid-flight
type Clock func() time.Time

// System reads the real wall clock
func System() Clock { return time.Now }

// Frozen always returns t
func Frozen(t time.Time) Clock {
	return func() time.Time { return t }
}

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
