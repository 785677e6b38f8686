package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/core"
	"github.com/vovakirdan/neon-snake/internal/engine"
	"github.com/vovakirdan/neon-snake/internal/events"
)

func newTestModel(t *testing.T) (Model, *engine.Engine) {
	t.Helper()
	cfg := config.DefaultSnakeConfig()
	e, err := engine.New(cfg, engine.WithSeed(99))
	if err != nil {
		t.Fatalf("engine.New() error = %v", err)
	}
	return NewModel(e, cfg, nil), e
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// fireArmed delivers the most recently armed tick.
func fireArmed(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = update(t, m, fireMsg{id: m.sched.nextID})
	return m
}

func TestFirstKeyStartsGame(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := update(t, m, keyMsg("right"))
	if m.loop.Phase() != core.PhaseRunning {
		t.Fatalf("phase = %s, expected running", m.loop.Phase())
	}
	if cmd == nil {
		t.Error("starting should return the tick command")
	}
	if m.sched.pending() != 1 {
		t.Errorf("armed = %d, expected 1", m.sched.pending())
	}

	m = fireArmed(t, m)
	if head := m.loop.Snapshot().Head(); head != (core.Cell{X: 11, Y: 10}) {
		t.Errorf("head = %v, expected (11,10)", head)
	}
	if m.sched.pending() != 1 {
		t.Error("loop should re-arm after a tick")
	}
}

func TestToggleCyclesPhases(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, keyMsg(" "))
	if m.loop.Phase() != core.PhaseRunning {
		t.Fatalf("space from idle: phase = %s", m.loop.Phase())
	}

	m, _ = update(t, m, keyMsg(" "))
	if m.loop.Phase() != core.PhasePaused {
		t.Fatalf("space while running: phase = %s", m.loop.Phase())
	}
	if m.sched.pending() != 0 {
		t.Error("pause should cancel the armed tick")
	}

	// A stale fire after the pause does nothing
	m = fireArmed(t, m)
	if m.loop.Snapshot().Tick != 0 {
		t.Error("stale tick ran while paused")
	}

	m, _ = update(t, m, keyMsg("p"))
	if m.loop.Phase() != core.PhaseRunning {
		t.Errorf("p while paused: phase = %s", m.loop.Phase())
	}
}

func TestToggleAfterGameOverResets(t *testing.T) {
	m, e := newTestModel(t)
	m, _ = update(t, m, keyMsg("right"))
	for i := 0; i < 30 && m.loop.Phase() == core.PhaseRunning; i++ {
		m = fireArmed(t, m)
	}
	if e.Phase() != core.PhaseGameOver {
		t.Fatalf("phase = %s, expected game_over", e.Phase())
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("view should show the game-over overlay")
	}

	m, _ = update(t, m, keyMsg(" "))
	if m.loop.Phase() != core.PhaseIdle {
		t.Errorf("phase = %s, expected idle after restart", m.loop.Phase())
	}
	if m.fx.lastOver != nil {
		t.Error("reset should clear the game-over record")
	}
}

func TestSpeedKeysSurviveReset(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, keyMsg("+"))
	m, _ = update(t, m, keyMsg("+"))
	if m.multiplier != 1.4 {
		t.Fatalf("multiplier = %v, expected 1.4", m.multiplier)
	}

	m, _ = update(t, m, keyMsg("right"))
	m = fireArmed(t, m)
	m, _ = update(t, m, keyMsg("r"))

	snap := m.loop.Snapshot()
	if snap.Phase != core.PhaseIdle {
		t.Errorf("phase = %s, expected idle", snap.Phase)
	}
	if snap.Multiplier != 1.4 {
		t.Errorf("multiplier after reset = %v, expected 1.4", snap.Multiplier)
	}

	for i := 0; i < 20; i++ {
		m, _ = update(t, m, keyMsg("-"))
	}
	if m.multiplier != 0.2 {
		t.Errorf("multiplier = %v, expected clamp at 0.2", m.multiplier)
	}
}

func TestRepeatedResetKeepsRound(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, keyMsg("+"))
	m, _ = update(t, m, keyMsg("right"))
	m = fireArmed(t, m)
	m, _ = update(t, m, keyMsg("r"))

	first := m.loop.Snapshot()
	if first.Multiplier != 1.2 {
		t.Fatalf("multiplier after reset = %v, expected 1.2", first.Multiplier)
	}

	for i := 0; i < 3; i++ {
		m, _ = update(t, m, keyMsg("r"))
	}
	again := m.loop.Snapshot()
	if again.Round != first.Round {
		t.Errorf("round = %s, expected %s to survive repeated resets", again.Round, first.Round)
	}
	if again.Food != first.Food {
		t.Errorf("food = %v, expected %v", again.Food, first.Food)
	}
	if again.Multiplier != 1.2 {
		t.Errorf("multiplier = %v, expected 1.2", again.Multiplier)
	}
}

func TestCommandKeysRejectedAsMovement(t *testing.T) {
	m, _ := newTestModel(t)

	for _, b := range m.keys.ShortHelp() {
		for _, k := range b.Keys() {
			cfg := config.DefaultSnakeConfig()
			cfg.Input.Keys.Up = []string{k}
			if err := cfg.Validate(); err == nil {
				t.Errorf("binding up to command key %q should fail validation", k)
			}
		}
	}
}

func TestPadClickSteers(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 34})

	l := computeLayout(m.loop.Snapshot().Grid, m.screen.Width(), 0)
	m, _ = update(t, m, tea.MouseMsg{
		X: l.padX, Y: l.padY - 2,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})

	if m.loop.Phase() != core.PhaseRunning {
		t.Fatalf("pad press should start the game, phase = %s", m.loop.Phase())
	}
	m = fireArmed(t, m)
	if head := m.loop.Snapshot().Head(); head != (core.Cell{X: 10, Y: 9}) {
		t.Errorf("head = %v, expected (10,9) after pressing up", head)
	}
}

func TestDragSteers(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 34})

	m, _ = update(t, m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.loop.Phase() != core.PhaseIdle {
		t.Fatal("pressing off the pad should not steer yet")
	}
	m, _ = update(t, m, tea.MouseMsg{X: 2, Y: 6, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	m = fireArmed(t, m)
	if head := m.loop.Snapshot().Head(); head != (core.Cell{X: 9, Y: 10}) {
		t.Errorf("head = %v, expected (9,10) after a left drag", head)
	}
}

func TestQuit(t *testing.T) {
	m, e := newTestModel(t)
	m, _ = update(t, m, keyMsg("right"))

	m, cmd := update(t, m, keyMsg("q"))
	if !m.quitting || cmd == nil {
		t.Fatal("q should quit")
	}
	if m.sched.pending() != 0 {
		t.Error("quit should cancel the armed tick")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
	if e.Bus().HandlerCount(events.KindFoodEaten) != 0 {
		t.Error("effects should unsubscribe on quit")
	}
}

func TestEffectsAnimate(t *testing.T) {
	m, e := newTestModel(t)
	e.Bus().Publish(events.FoodEaten{At: core.Cell{X: 3, Y: 3}, Score: 10})

	if !m.fx.active() || len(m.fx.bursts) != 1 || m.fx.bursts[0].label != "+10" {
		t.Fatalf("burst not recorded: %+v", m.fx.bursts)
	}

	m, cmd := update(t, m, frameMsg{})
	if cmd == nil || !m.animating {
		t.Error("active effects should request the next frame")
	}
	for i := 0; i < burstFrames; i++ {
		m, _ = update(t, m, frameMsg{})
	}
	if m.fx.active() {
		t.Error("effects should expire")
	}
	if m.fx.best != 10 {
		t.Errorf("best = %d, expected 10", m.fx.best)
	}
}
