package engine

import "time"

// Clock is the time source consumed by the animation and scheduling layers.
// The widget never reads time.Now directly so tests can drive it deterministically.
type Clock interface {
	Now() time.Time
}

// MonotonicClock provides the real system time with monotonic clock readings
// Used for live operation (frame loop, transitions)
type MonotonicClock struct{}

// NewMonotonicClock creates a new monotonic time source
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{}
}

// Now returns the current time with monotonic clock reading
func (c *MonotonicClock) Now() time.Time {
	return time.Now()
}
