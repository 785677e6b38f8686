package tui

import (
	"fmt"

	"github.com/vovakirdan/neon-snake/internal/core"
	"github.com/vovakirdan/neon-snake/internal/events"
)

const (
	burstFrames = 8 // ~0.5s at frameInterval
	shakeFrames = 4
)

// burst is a floating "+N" marker where food was eaten.
type burst struct {
	at    core.Cell
	label string
	age   int
}

// effects is the TUI's event sink. It only records what happened; the
// board reads it when drawing. Handlers run inside Update, so no locking.
type effects struct {
	bursts   []burst
	shake    int
	lastOver *events.GameOver
	best     int
	points   int // Score per food, shown in bursts
	unsub    func()
}

func newEffects(bus *events.Bus, points int) *effects {
	fx := &effects{points: points}
	if bus != nil {
		fx.unsub = bus.SubscribeAll(fx.handle)
	}
	return fx
}

func (fx *effects) handle(ev events.Event) {
	switch ev := ev.(type) {
	case events.FoodEaten:
		fx.bursts = append(fx.bursts, burst{at: ev.At, label: fmt.Sprintf("+%d", fx.points)})
		fx.shake = shakeFrames
		if ev.Score > fx.best {
			fx.best = ev.Score
		}
	case events.GameOver:
		over := ev
		fx.lastOver = &over
		if ev.Score > fx.best {
			fx.best = ev.Score
		}
	case events.Reset:
		fx.bursts = nil
		fx.shake = 0
		fx.lastOver = nil
	}
}

// step ages effects by one frame.
func (fx *effects) step() {
	if fx.shake > 0 {
		fx.shake--
	}
	live := fx.bursts[:0]
	for _, b := range fx.bursts {
		b.age++
		if b.age < burstFrames {
			live = append(live, b)
		}
	}
	fx.bursts = live
}

// active reports whether any effect still needs frames.
func (fx *effects) active() bool {
	return fx.shake > 0 || len(fx.bursts) > 0
}

// shakeOffset returns the horizontal board offset for the current frame.
func (fx *effects) shakeOffset() int {
	if fx.shake == 0 {
		return 0
	}
	if fx.shake%2 == 0 {
		return 1
	}
	return -1
}

func (fx *effects) close() {
	if fx.unsub != nil {
		fx.unsub()
		fx.unsub = nil
	}
}
