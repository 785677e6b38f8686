package tui

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-snake/internal/audio"
	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/core"
	"github.com/vovakirdan/neon-snake/internal/engine"
	"github.com/vovakirdan/neon-snake/internal/input"
	"github.com/vovakirdan/neon-snake/internal/loop"
)

// Model is the Bubble Tea model for a game of snake.
type Model struct {
	loop   *loop.Loop
	sched  *teaScheduler
	ctrl   *input.Controller
	fx     *effects
	screen *core.Screen
	keys   KeyMap
	help   help.Model
	logger *log.Logger

	speed      config.SpeedConfig
	multiplier float64 // Player's choice, re-applied after every reset

	dragging     bool
	dragX, dragY int
	animating    bool // A frameMsg is in flight
	quitting     bool
}

// NewModel wires e to a Bubble Tea scheduler, the input controller and the
// effects sink.
func NewModel(e *engine.Engine, cfg config.SnakeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sched := newTeaScheduler()
	l := loop.New(e, sched, loop.WithLogger(logger))
	ctrl := input.NewController(cfg.Input, l, input.WithLogger(logger))

	w, h := requiredSize(e.Grid())
	hm := help.New()
	hm.ShowAll = false

	return Model{
		loop:       l,
		sched:      sched,
		ctrl:       ctrl,
		fx:         newEffects(e.Bus(), cfg.Scoring.FoodPoints),
		screen:     core.NewScreen(w, h),
		keys:       DefaultKeyMap(ctrl.KeyMap()),
		help:       hm,
		logger:     logger,
		speed:      cfg.Speed,
		multiplier: e.SpeedMultiplier(),
	}
}

// Init starts nothing: the game waits for the first input.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.handleKey(msg)
		cmds = append(cmds, cmd)

	case tea.MouseMsg:
		m = m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-helpRows, 1))
		m.help.Width = msg.Width

	case fireMsg:
		m.sched.fire(msg.id)

	case frameMsg:
		m.fx.step()
		m.animating = false
	}

	if m.quitting {
		return m, tea.Batch(cmds...)
	}

	cmds = append(cmds, m.sched.drain())
	if !m.animating && m.fx.active() {
		m.animating = true
		cmds = append(cmds, frameCmd())
	}
	return m, tea.Batch(cmds...)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.loop.Close()
		m.fx.close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Toggle):
		m.toggle()
	case key.Matches(msg, m.keys.Reset):
		m.reset()
	case key.Matches(msg, m.keys.Faster):
		m.adjustSpeed(m.speed.MultiplierStep)
	case key.Matches(msg, m.keys.Slower):
		m.adjustSpeed(-m.speed.MultiplierStep)
	default:
		m.ctrl.Interpret(input.Key(msg.String()))
	}
	return m, nil
}

// toggle starts, pauses or restarts depending on the phase.
func (m *Model) toggle() {
	var err error
	switch m.loop.Phase() {
	case core.PhaseIdle, core.PhasePaused:
		err = m.loop.Start()
	case core.PhaseRunning:
		err = m.loop.Pause()
	case core.PhaseGameOver:
		m.reset()
	}
	if err != nil {
		m.logger.Debug("toggle", "err", err)
	}
}

func (m *Model) reset() {
	if freshRound(m.loop.Snapshot()) {
		return
	}
	if err := m.loop.Reset(); err != nil {
		m.logger.Error("reset", "err", err)
		return
	}
	if m.multiplier != m.speed.Multiplier {
		if err := m.loop.SetSpeedMultiplier(m.multiplier); err != nil {
			m.logger.Debug("restore multiplier", "err", err)
		}
	}
}

// freshRound reports whether snap is an untouched round, which a reset
// would only re-roll. The multiplier is ignored: it is the player's choice.
func freshRound(snap engine.Snapshot) bool {
	return snap.Phase == core.PhaseIdle &&
		snap.Tick == 0 &&
		len(snap.Snake) == 1 &&
		snap.Delta == core.HeadingNone &&
		snap.Pending == core.HeadingNone
}

func (m *Model) adjustSpeed(delta float64) {
	target := math.Round((m.multiplier+delta)*100) / 100
	if err := m.loop.SetSpeedMultiplier(target); err != nil {
		m.logger.Debug("speed", "err", err)
		return
	}
	m.multiplier = m.loop.Snapshot().Multiplier
}

// handleMouse turns pad clicks into touches and drags into swipes.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	l := computeLayout(m.loop.Snapshot().Grid, m.screen.Width(), 0)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m
		}
		if l.onPad(msg.X, msg.Y) {
			m.ctrl.Interpret(input.Touch{
				DX: float64(msg.X-l.padX) / cellWidth,
				DY: float64(msg.Y - l.padY),
			})
			return m
		}
		m.dragging = true
		m.dragX, m.dragY = msg.X, msg.Y

	case tea.MouseActionRelease:
		if !m.dragging {
			return m
		}
		m.dragging = false
		m.ctrl.Interpret(input.Swipe{
			DX: float64(msg.X-m.dragX) / cellWidth,
			DY: float64(msg.Y - m.dragY),
		})
	}
	return m
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	drawGame(m.screen, view{snap: m.loop.Snapshot(), fx: m.fx})
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Options configures Run.
type Options struct {
	Config config.SnakeConfig
	Seed   int64 // 0 picks a time-based seed
	Logger *log.Logger
}

// Run plays one session in the terminal until the player quits.
func Run(opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	engineOpts := []engine.Option{engine.WithLogger(logger)}
	if opts.Seed != 0 {
		engineOpts = append(engineOpts, engine.WithSeed(opts.Seed))
	}
	e, err := engine.New(opts.Config, engineOpts...)
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	sink := audio.NewSink(opts.Config.Audio, audio.WithLogger(logger))
	if err := sink.Init(); err != nil {
		logger.Warn("audio disabled", "err", err)
	} else {
		sink.Attach(e.Bus())
	}
	defer sink.Close()

	p := tea.NewProgram(
		NewModel(e, opts.Config, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if m, ok := final.(Model); ok {
		m.loop.Close()
		m.fx.close()
	}
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	logger.Info("session ended", "score", e.Score(), "phase", e.Phase())
	return nil
}
