// Package engine implements the snake simulation: it owns the authoritative
// game state, advances it one tick at a time and publishes events describing
// what happened.
package engine

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/core"
	"github.com/vovakirdan/neon-snake/internal/events"
	"github.com/vovakirdan/neon-snake/internal/food"
)

var (
	// ErrInvalidTransition is returned when a command is not valid in the
	// current phase. The engine state is left untouched.
	ErrInvalidTransition = errors.New("engine: invalid transition")

	// ErrInvalidHeading is returned for headings other than the four directions.
	ErrInvalidHeading = errors.New("engine: invalid heading")

	// ErrInvalidMultiplier is returned for non-positive or non-finite multipliers.
	ErrInvalidMultiplier = errors.New("engine: invalid speed multiplier")
)

// Engine is the sole mutator of snake, food, score, speed and phase.
// It is not safe for concurrent use; the loop serializes access.
type Engine struct {
	cfg    config.SnakeConfig
	grid   core.Grid
	rng    *rand.Rand
	placer *food.Placer
	bus    *events.Bus
	logger *log.Logger
	newID  func() string

	round      string
	phase      core.Phase
	ticks      uint64
	snake      []core.Cell // Head at index 0
	food       core.Cell
	score      int
	baseRate   float64
	multiplier float64
	delta      core.Heading // Last applied direction, None until the first input
	pending    core.Heading // Latest input, consumed by the next tick
	reason     events.GameOverReason
}

// Option configures an Engine.
type Option func(*Engine)

// WithSeed seeds the food placement RNG for reproducible games.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithBus publishes events on bus instead of a private one.
func WithBus(bus *events.Bus) Option {
	return func(e *Engine) {
		e.bus = bus
	}
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithRoundIDs replaces the round ID generator (UUIDs by default).
func WithRoundIDs(next func() string) Option {
	return func(e *Engine) {
		if next != nil {
			e.newID = next
		}
	}
}

// New validates cfg and returns an engine in a fresh Idle game.
func New(cfg config.SnakeConfig, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:    cfg,
		grid:   cfg.Grid,
		bus:    events.NewBus(),
		logger: log.New(io.Discard),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e.placer = food.NewPlacer(e.rng, cfg.Food.MaxAttempts)

	if err := e.reset(); err != nil {
		return nil, err
	}
	return e, nil
}

// Bus returns the bus events are published on.
func (e *Engine) Bus() *events.Bus {
	return e.bus
}

// Grid returns the playfield dimensions.
func (e *Engine) Grid() core.Grid {
	return e.grid
}

// Phase returns the current lifecycle phase.
func (e *Engine) Phase() core.Phase {
	return e.phase
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// Reset starts a fresh game in the Idle phase. Resetting an engine that has
// not changed since its last reset does nothing, so repeated resets are
// indistinguishable from one.
func (e *Engine) Reset() error {
	if e.pristine() {
		return nil
	}
	return e.reset()
}

func (e *Engine) reset() error {
	spawn := e.cfg.SpawnCell()

	e.round = e.newID()
	e.phase = core.PhaseIdle
	e.ticks = 0
	e.snake = []core.Cell{spawn}
	e.score = 0
	e.baseRate = e.cfg.Speed.BaseRate
	e.multiplier = e.cfg.Speed.Multiplier
	e.delta = core.HeadingNone
	e.pending = core.HeadingNone
	e.reason = events.ReasonWall

	f, err := e.placer.Place(e.snake, e.grid)
	if err != nil {
		return fmt.Errorf("engine: reset: %w", err)
	}
	e.food = f

	e.logger.Debug("reset", "round", e.round, "spawn", spawn, "food", e.food)
	e.bus.Publish(events.Reset{
		Round: e.round,
		Snake: e.copySnake(),
		Food:  e.food,
	})
	return nil
}

// pristine reports whether the engine is exactly as reset left it.
func (e *Engine) pristine() bool {
	return e.phase == core.PhaseIdle &&
		e.ticks == 0 &&
		e.score == 0 &&
		e.delta == core.HeadingNone &&
		e.pending == core.HeadingNone &&
		e.multiplier == e.cfg.Speed.Multiplier &&
		len(e.snake) == 1 && e.snake[0] == e.cfg.SpawnCell()
}

// Start moves an Idle or Paused game to Running.
func (e *Engine) Start() error {
	if e.phase != core.PhaseIdle && e.phase != core.PhasePaused {
		return fmt.Errorf("%w: start from %s", ErrInvalidTransition, e.phase)
	}
	e.setPhase(core.PhaseRunning)
	return nil
}

// Pause moves a Running game to Paused.
func (e *Engine) Pause() error {
	if e.phase != core.PhaseRunning {
		return fmt.Errorf("%w: pause from %s", ErrInvalidTransition, e.phase)
	}
	e.setPhase(core.PhasePaused)
	return nil
}

func (e *Engine) setPhase(to core.Phase) {
	from := e.phase
	e.phase = to
	e.logger.Debug("phase", "round", e.round, "from", from, "to", to)
	e.bus.Publish(events.PhaseChanged{Round: e.round, From: from, To: to})
}

// SetPendingHeading records h as the direction for the next tick, replacing
// any earlier input. Reversal is only checked when the tick consumes it.
func (e *Engine) SetPendingHeading(h core.Heading) error {
	if !h.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidHeading, int(h))
	}
	e.pending = h
	return nil
}

// SetSpeedMultiplier scales the base rate. m must be finite and positive and
// is clamped to the configured range.
func (e *Engine) SetSpeedMultiplier(m float64) error {
	if math.IsNaN(m) || math.IsInf(m, 0) || m <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidMultiplier, m)
	}
	e.multiplier = core.ClampF(m, e.cfg.Speed.MinMultiplier, e.cfg.Speed.MaxMultiplier)
	e.logger.Debug("speed multiplier", "round", e.round, "multiplier", e.multiplier, "rate", e.TickRate())
	return nil
}

// SpeedMultiplier returns the current user multiplier.
func (e *Engine) SpeedMultiplier() float64 {
	return e.multiplier
}

// TickRate returns the effective ticks per second: base rate times the
// multiplier, floored, never below 1.
func (e *Engine) TickRate() int {
	rate := int(math.Floor(e.baseRate * e.multiplier))
	if rate < 1 {
		return 1
	}
	return rate
}

// TickInterval returns the delay between ticks at the current rate.
func (e *Engine) TickInterval() time.Duration {
	return time.Second / time.Duration(e.TickRate())
}

func (e *Engine) copySnake() []core.Cell {
	out := make([]core.Cell, len(e.snake))
	copy(out, e.snake)
	return out
}
