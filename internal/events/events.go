// Package events defines the typed event stream published by the simulation
// engine and consumed by presentation collaborators (terminal UI, audio).
package events

import "github.com/vovakirdan/neon-snake/internal/core"

// Kind identifies an event type for subscription.
type Kind int

const (
	KindTick Kind = iota
	KindFoodEaten
	KindGameOver
	KindReset
	KindPhaseChanged
)

func (k Kind) String() string {
	switch k {
	case KindTick:
		return "tick"
	case KindFoodEaten:
		return "food-eaten"
	case KindGameOver:
		return "game-over"
	case KindReset:
		return "reset"
	case KindPhaseChanged:
		return "phase-changed"
	default:
		return "unknown"
	}
}

// Event is implemented by every payload the engine publishes.
type Event interface {
	Kind() Kind
}

// Tick is published after every tick that did not end the game.
// Snake is a copy; handlers may keep it.
type Tick struct {
	Round string
	Tick  uint64
	Snake []core.Cell
	Food  core.Cell
	Score int
}

func (Tick) Kind() Kind { return KindTick }

// FoodEaten is published when the head lands on the food cell.
// At is the cell that was eaten, Score the score after the increment.
type FoodEaten struct {
	Round string
	Tick  uint64
	At    core.Cell
	Score int
}

func (FoodEaten) Kind() Kind { return KindFoodEaten }

// GameOverReason describes why a game ended.
type GameOverReason int

const (
	ReasonWall GameOverReason = iota
	ReasonSelf
	ReasonBoardFull // no free cell left for food
)

func (r GameOverReason) String() string {
	switch r {
	case ReasonWall:
		return "wall"
	case ReasonSelf:
		return "self"
	case ReasonBoardFull:
		return "board-full"
	default:
		return "unknown"
	}
}

// GameOver is published once per game when it ends.
type GameOver struct {
	Round  string
	Tick   uint64
	Score  int
	Reason GameOverReason
}

func (GameOver) Kind() Kind { return KindGameOver }

// Reset is published after the engine returns to a fresh Idle game.
type Reset struct {
	Round string
	Snake []core.Cell
	Food  core.Cell
}

func (Reset) Kind() Kind { return KindReset }

// PhaseChanged is published on start and pause transitions.
type PhaseChanged struct {
	Round string
	From  core.Phase
	To    core.Phase
}

func (PhaseChanged) Kind() Kind { return KindPhaseChanged }
