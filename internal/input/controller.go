// Package input turns raw key, touch and swipe intents into headings and
// feeds them to the game.
package input

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/core"
)

// Target receives resolved headings. *loop.Loop satisfies it.
type Target interface {
	Phase() core.Phase
	SetPendingHeading(h core.Heading) error
	Start() error
}

// Controller resolves intents and forwards them to a Target.
type Controller struct {
	keys     KeyMap
	deadZone float64
	swipeMin float64
	target   Target
	logger   *log.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewController creates a controller for target. target may be nil when
// only Resolve is used.
func NewController(cfg config.InputConfig, target Target, opts ...Option) *Controller {
	c := &Controller{
		keys:     NewKeyMap(cfg.Keys),
		deadZone: cfg.TouchDeadZone,
		swipeMin: cfg.SwipeMinDistance,
		target:   target,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// KeyMap returns the movement bindings, for help views.
func (c *Controller) KeyMap() KeyMap {
	return c.keys
}

// Resolve maps an intent to a heading. Unknown keys, presses inside the
// dead zone, short swipes and diagonal ties resolve to (HeadingNone, false).
func (c *Controller) Resolve(in Intent) (core.Heading, bool) {
	switch in := in.(type) {
	case Key:
		return c.keys.Heading(in)
	case Touch:
		if math.Hypot(in.DX, in.DY) <= c.deadZone {
			return core.HeadingNone, false
		}
		return dominant(in.DX, in.DY)
	case Swipe:
		if math.Max(math.Abs(in.DX), math.Abs(in.DY)) < c.swipeMin {
			return core.HeadingNone, false
		}
		return dominant(in.DX, in.DY)
	}
	return core.HeadingNone, false
}

// Interpret resolves in and sets it as the target's pending heading. The
// first heading in an Idle game also starts it.
func (c *Controller) Interpret(in Intent) (core.Heading, bool) {
	h, ok := c.Resolve(in)
	if !ok {
		return core.HeadingNone, false
	}
	if c.target == nil {
		return h, true
	}

	if err := c.target.SetPendingHeading(h); err != nil {
		c.logger.Debug("heading rejected", "heading", h, "err", err)
		return core.HeadingNone, false
	}
	if c.target.Phase() == core.PhaseIdle {
		if err := c.target.Start(); err != nil {
			c.logger.Debug("auto-start", "err", err)
		}
	}
	return h, true
}

// dominant picks the axis with the larger magnitude. Equal magnitudes are
// ambiguous.
func dominant(dx, dy float64) (core.Heading, bool) {
	ax, ay := math.Abs(dx), math.Abs(dy)
	switch {
	case ax == ay || math.IsNaN(ax) || math.IsNaN(ay):
		return core.HeadingNone, false
	case ax > ay && dx > 0:
		return core.HeadingRight, true
	case ax > ay:
		return core.HeadingLeft, true
	case dy > 0:
		return core.HeadingDown, true
	default:
		return core.HeadingUp, true
	}
}
