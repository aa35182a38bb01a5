package cachetest

import (
	"sync"
	"time"

	"github.com/karupanerura/pocketcache"
)

// FixedClock is a clock that returns a time set by the test.
// It is safe for concurrent use.
type FixedClock struct {
	mu   sync.Mutex
	time time.Time
}

var _ pocketcache.Clock = (*FixedClock)(nil)

// NewFixedClock returns a clock stopped at t.
func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{time: t}
}

// Now returns the current time of the clock.
func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.time
}

// Set moves the clock to t. t may be before the current time of the clock.
func (c *FixedClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.time = t
}

// Advance moves the clock forward by d, or backward if d is negative.
func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.time = c.time.Add(d)
}
