package platform

import (
	"sort"
	"sync"
	"time"
)

// FakeClock is a manually driven Clock for deterministic frames and tests.
// Timers fire synchronously from Advance or Set, in deadline order, on the
// calling goroutine.
type FakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

type fakeTimer struct {
	clock    *FakeClock
	deadline time.Time
	fn       func()
	stopped  bool
}

// NewFakeClock returns a FakeClock reading start
func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{now: start}
}

// Now returns the current fake time
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// AfterFunc registers f to run once the clock has advanced by d
func (c *FakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := &fakeTimer{clock: c, deadline: c.now.Add(d), fn: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward by d and fires due timers
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()
	c.Set(target)
}

// Set jumps the clock to t and fires due timers. Timers registered by fired
// callbacks also run if they fall due before t.
func (c *FakeClock) Set(t time.Time) {
	for {
		c.mu.Lock()
		next := c.nextDueLocked(t)
		if next == nil {
			c.now = t
			c.mu.Unlock()
			return
		}
		if next.deadline.After(c.now) {
			c.now = next.deadline
		}
		next.stopped = true
		c.removeLocked(next)
		c.mu.Unlock()

		next.fn()
	}
}

// Pending returns the number of timers that have not fired or been stopped
func (c *FakeClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

func (c *FakeClock) nextDueLocked(limit time.Time) *fakeTimer {
	sort.SliceStable(c.timers, func(i, j int) bool {
		return c.timers[i].deadline.Before(c.timers[j].deadline)
	})
	if len(c.timers) == 0 || c.timers[0].deadline.After(limit) {
		return nil
	}
	return c.timers[0]
}

func (c *FakeClock) removeLocked(t *fakeTimer) {
	for i, pending := range c.timers {
		if pending == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return
		}
	}
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	if t.stopped {
		return false
	}
	t.stopped = true
	t.clock.removeLocked(t)
	return true
}
