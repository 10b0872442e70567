package game

import (
	"time"
)

type Clock interface {
	// Now returns the monotonic time since the clock was created
	Now() time.Duration
}

type MonotonicClock struct {
	origin time.Time
}

func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{origin: time.Now()}
}

func (c *MonotonicClock) Now() time.Duration {
	return time.Since(c.origin)
}
