package tui

import (
	"testing"
	"time"
)

func TestTeaSchedulerFireAndStop(t *testing.T) {
	s := newTeaScheduler()
	var fired []int

	s.AfterFunc(time.Millisecond, func() { fired = append(fired, 1) })
	h := s.AfterFunc(time.Millisecond, func() { fired = append(fired, 2) })

	if s.drain() == nil {
		t.Fatal("drain should return the queued tick commands")
	}
	if s.drain() != nil {
		t.Error("second drain should be empty")
	}

	if !h.Stop() {
		t.Error("Stop() on an armed callback should report true")
	}
	if h.Stop() {
		t.Error("second Stop() should report false")
	}

	if !s.fire(1) {
		t.Error("fire(1) should run the callback")
	}
	if s.fire(2) {
		t.Error("stopped callback should not run")
	}
	if s.fire(1) {
		t.Error("a callback fires at most once")
	}
	if len(fired) != 1 || fired[0] != 1 {
		t.Errorf("fired = %v, expected [1]", fired)
	}
	if s.pending() != 0 {
		t.Errorf("pending = %d, expected 0", s.pending())
	}
}
