// Package loop drives an engine on a variable-rate cadence. It owns the
// single pending tick callback and makes sure no callback survives a
// pause, reset or game over.
package loop

import (
	"errors"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-snake/internal/core"
	"github.com/vovakirdan/neon-snake/internal/engine"
)

// Loop serializes commands and scheduled ticks for one engine.
//
// Event handlers run inside Loop calls and must not call back into the loop.
type Loop struct {
	mu     sync.Mutex
	engine *engine.Engine
	sched  Scheduler
	logger *log.Logger

	handle Handle
	gen    uint64 // Bumped on every arm and disarm; stale callbacks compare unequal
	ticks  uint64
}

// Option configures a Loop.
type Option func(*Loop)

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New wraps e. A nil scheduler uses wall-clock timers.
func New(e *engine.Engine, sched Scheduler, opts ...Option) *Loop {
	if sched == nil {
		sched = RealScheduler{}
	}
	l := &Loop{
		engine: e,
		sched:  sched,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Start resumes or begins the game and arms the first tick one interval out.
func (l *Loop) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.engine.Start(); err != nil {
		return err
	}
	l.arm()
	return nil
}

// Pause stops the game and cancels the pending tick.
func (l *Loop) Pause() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.engine.Pause(); err != nil {
		return err
	}
	l.disarm()
	return nil
}

// Reset cancels the pending tick and starts a fresh Idle game.
func (l *Loop) Reset() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.disarm()
	return l.engine.Reset()
}

// Close cancels the pending tick without touching the game.
func (l *Loop) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.disarm()
}

// SetPendingHeading forwards h to the engine.
func (l *Loop) SetPendingHeading(h core.Heading) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.engine.SetPendingHeading(h)
}

// SetSpeedMultiplier forwards m to the engine. The new rate applies from
// the next armed tick.
func (l *Loop) SetSpeedMultiplier(m float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.engine.SetSpeedMultiplier(m)
}

// Phase returns the engine phase.
func (l *Loop) Phase() core.Phase {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.engine.Phase()
}

// Snapshot returns the engine snapshot.
func (l *Loop) Snapshot() engine.Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.engine.Snapshot()
}

// Armed reports whether a tick callback is pending.
func (l *Loop) Armed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.handle != nil
}

// Ticks returns the number of scheduled ticks the loop has run.
func (l *Loop) Ticks() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ticks
}

// arm schedules the next tick at the engine's current interval.
func (l *Loop) arm() {
	if l.handle != nil {
		l.handle.Stop()
	}
	l.gen++
	gen := l.gen
	interval := l.engine.TickInterval()
	l.handle = l.sched.AfterFunc(interval, func() { l.fire(gen) })
}

func (l *Loop) disarm() {
	if l.handle != nil {
		l.handle.Stop()
		l.handle = nil
	}
	l.gen++
}

func (l *Loop) fire(gen uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.gen {
		// Canceled after the timer had already fired
		l.logger.Debug("stale tick dropped", "gen", gen, "current", l.gen)
		return
	}
	l.handle = nil

	started := time.Now()
	if err := l.engine.Tick(); err != nil {
		if errors.Is(err, engine.ErrInvalidTransition) {
			l.logger.Debug("tick skipped", "err", err)
		} else {
			l.logger.Error("tick", "err", err)
		}
		return
	}
	l.ticks++

	if l.engine.Phase() != core.PhaseRunning {
		l.logger.Debug("loop stopped", "phase", l.engine.Phase(), "ticks", l.ticks)
		return
	}
	l.arm()
	if elapsed := time.Since(started); elapsed > l.engine.TickInterval() {
		l.logger.Warn("tick overran interval", "elapsed", elapsed, "interval", l.engine.TickInterval())
	}
}
