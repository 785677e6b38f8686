// Package tui runs neon-snake in the terminal with Bubble Tea. It drives
// the game loop from Update, renders snapshots and reacts to game events.
package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-snake/internal/loop"
)

// fireMsg runs the scheduled callback with the given id.
type fireMsg struct {
	id uint64
}

// frameMsg advances visual effects by one frame.
type frameMsg time.Time

const frameInterval = 60 * time.Millisecond

// frameCmd returns a command that sends the next effects frame.
func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// teaScheduler implements loop.Scheduler on top of tea.Tick so tick
// callbacks run inside Update, on the same goroutine as input handling.
type teaScheduler struct {
	mu     sync.Mutex
	nextID uint64
	armed  map[uint64]func()
	queue  []tea.Cmd
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{armed: make(map[uint64]func())}
}

// AfterFunc records fn and queues a tea.Tick that will fire it.
func (s *teaScheduler) AfterFunc(d time.Duration, fn func()) loop.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.armed[id] = fn
	s.queue = append(s.queue, tea.Tick(d, func(time.Time) tea.Msg {
		return fireMsg{id: id}
	}))
	return teaHandle{s: s, id: id}
}

// fire runs the callback for id unless it was stopped.
func (s *teaScheduler) fire(id uint64) bool {
	s.mu.Lock()
	fn, ok := s.armed[id]
	delete(s.armed, id)
	s.mu.Unlock()

	if ok {
		fn()
	}
	return ok
}

// drain returns the commands queued since the last call.
func (s *teaScheduler) drain() tea.Cmd {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.queue) == 0 {
		return nil
	}
	cmds := s.queue
	s.queue = nil
	return tea.Batch(cmds...)
}

func (s *teaScheduler) pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.armed)
}

type teaHandle struct {
	s  *teaScheduler
	id uint64
}

// Stop drops the callback; the tea.Tick still fires but finds nothing.
func (h teaHandle) Stop() bool {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()

	if _, ok := h.s.armed[h.id]; !ok {
		return false
	}
	delete(h.s.armed, h.id)
	return true
}
