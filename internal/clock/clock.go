// Package clock abstracts the source of the current time so services can
// be tested against a fixed instant. The deployment is assumed to run in a
// single timezone; times are interpreted in the local wall clock.
package clock

import "time"

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by the system time.
type SystemClock struct{}

// NewSystemClock creates a Clock backed by time.Now.
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// Now implements the Clock interface.
func (c *SystemClock) Now() time.Time {
	return time.Now()
}

// Fixed is a Clock pinned to a single instant, for tests.
type Fixed struct {
	Instant time.Time
}

// NewFixed creates a Clock that always reports the given instant.
func NewFixed(instant time.Time) *Fixed {
	return &Fixed{Instant: instant}
}

// Now implements the Clock interface.
func (c *Fixed) Now() time.Time {
	return c.Instant
}
