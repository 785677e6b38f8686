package loop

import "time"

// Handle cancels a callback armed with Scheduler.AfterFunc.
type Handle interface {
	// Stop prevents the callback from firing. It reports false if the
	// callback already fired or was stopped.
	Stop() bool
}

// Scheduler runs a callback once after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Handle
}

// RealScheduler schedules callbacks on wall-clock timers.
// Callbacks run on their own goroutine.
type RealScheduler struct{}

// AfterFunc arms a time.Timer.
func (RealScheduler) AfterFunc(d time.Duration, fn func()) Handle {
	return time.AfterFunc(d, fn)
}
