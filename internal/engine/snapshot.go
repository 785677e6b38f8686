package engine

import (
	"github.com/vovakirdan/neon-snake/internal/core"
	"github.com/vovakirdan/neon-snake/internal/events"
)

// Snapshot captures the complete game state for rendering, determinism
// testing and replay. It shares no memory with the engine.
type Snapshot struct {
	Round      string
	Tick       uint64
	Phase      core.Phase
	Grid       core.Grid
	Snake      []core.Cell // Head at index 0
	Food       core.Cell
	Score      int
	Delta      core.Heading
	Pending    core.Heading
	BaseRate   float64
	Multiplier float64
	TickRate   int
	Reason     events.GameOverReason // Meaningful only when Phase is GameOver
}

// Snapshot returns the current game snapshot.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Round:      e.round,
		Tick:       e.ticks,
		Phase:      e.phase,
		Grid:       e.grid,
		Snake:      e.copySnake(),
		Food:       e.food,
		Score:      e.score,
		Delta:      e.delta,
		Pending:    e.pending,
		BaseRate:   e.baseRate,
		Multiplier: e.multiplier,
		TickRate:   e.TickRate(),
		Reason:     e.reason,
	}
}

// Head returns the head cell of the snapshot's snake.
func (s Snapshot) Head() core.Cell {
	if len(s.Snake) == 0 {
		return core.Cell{}
	}
	return s.Snake[0]
}
