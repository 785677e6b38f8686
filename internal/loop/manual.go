package loop

import (
	"sort"
	"sync"
	"time"
)

// ManualClock is a Scheduler driven by virtual time. Nothing fires until
// Advance or RunNext is called, and callbacks run on the caller's goroutine.
type ManualClock struct {
	mu     sync.Mutex
	now    time.Time
	seq    uint64
	timers []*manualTimer
}

type manualTimer struct {
	clock *ManualClock
	at    time.Time
	seq   uint64
	fn    func()
	done  bool
}

// NewManualClock creates a clock reading start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current virtual time.
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Pending returns the number of armed callbacks.
func (c *ManualClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

// AfterFunc arms fn to run once the clock has advanced by d.
func (c *ManualClock) AfterFunc(d time.Duration, fn func()) Handle {
	if d < 0 {
		d = 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	t := &manualTimer{clock: c, at: c.now.Add(d), seq: c.seq, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward by d, firing every callback due on the
// way in deadline order. Callbacks armed while advancing fire too if they
// fall due before the new time. It returns the number of callbacks fired.
func (c *ManualClock) Advance(d time.Duration) int {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	fired := 0
	for {
		t := c.popDue(target)
		if t == nil {
			break
		}
		t.fn()
		fired++
	}

	c.mu.Lock()
	if target.After(c.now) {
		c.now = target
	}
	c.mu.Unlock()
	return fired
}

// RunNext jumps to the earliest deadline and fires that callback.
// It reports false when nothing is armed.
func (c *ManualClock) RunNext() bool {
	c.mu.Lock()
	if len(c.timers) == 0 {
		c.mu.Unlock()
		return false
	}
	c.sortLocked()
	target := c.timers[0].at
	c.mu.Unlock()

	t := c.popDue(target)
	if t == nil {
		return false
	}
	t.fn()
	return true
}

// popDue removes and returns the earliest timer due at or before target,
// moving the clock to its deadline.
func (c *ManualClock) popDue(target time.Time) *manualTimer {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.timers) == 0 {
		return nil
	}
	c.sortLocked()
	t := c.timers[0]
	if t.at.After(target) {
		return nil
	}
	c.timers = c.timers[1:]
	t.done = true
	if t.at.After(c.now) {
		c.now = t.at
	}
	return t
}

func (c *ManualClock) sortLocked() {
	sort.Slice(c.timers, func(i, j int) bool {
		if c.timers[i].at.Equal(c.timers[j].at) {
			return c.timers[i].seq < c.timers[j].seq
		}
		return c.timers[i].at.Before(c.timers[j].at)
	})
}

// Stop disarms the timer.
func (t *manualTimer) Stop() bool {
	c := t.clock
	c.mu.Lock()
	defer c.mu.Unlock()

	if t.done {
		return false
	}
	t.done = true
	for i, other := range c.timers {
		if other == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			break
		}
	}
	return true
}
