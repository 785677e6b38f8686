package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/neon-snake/internal/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(default yaml) error = %v", err)
	}
	def := DefaultSnakeConfig()

	if cfg.Grid != def.Grid {
		t.Errorf("grid = %+v, expected %+v", cfg.Grid, def.Grid)
	}
	if cfg.Speed != def.Speed {
		t.Errorf("speed = %+v, expected %+v", cfg.Speed, def.Speed)
	}
	if cfg.Scoring != def.Scoring || cfg.Collision != def.Collision || cfg.Food != def.Food {
		t.Errorf("scoring/collision/food differ from hardcoded defaults")
	}
	if cfg.Spawn != nil {
		t.Errorf("default spawn should be unset, got %v", *cfg.Spawn)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadSnakeCustomPathPartialOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.yaml")
	data := "grid:\n  width: 30\n  height: 12\nspawn:\n  x: 3\n  y: 4\nspeed:\n  base_rate: 9\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() error = %v", err)
	}
	if cfg.Grid != core.NewGrid(30, 12) {
		t.Errorf("grid = %+v, expected 30x12", cfg.Grid)
	}
	if cfg.SpawnCell() != (core.Cell{X: 3, Y: 4}) {
		t.Errorf("spawn = %v, expected (3,4)", cfg.SpawnCell())
	}
	if cfg.Speed.BaseRate != 9 {
		t.Errorf("base_rate = %v, expected 9", cfg.Speed.BaseRate)
	}
	// Untouched keys keep their defaults
	if cfg.Speed.EveryPoints != 50 || cfg.Scoring.FoodPoints != 10 || cfg.Collision.SelfExemption != 4 {
		t.Errorf("unspecified keys lost their defaults: %+v", cfg)
	}
}

func TestLoadSnakeMissingCustomPath(t *testing.T) {
	_, err := LoadSnake(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for a missing custom config")
	}
	if !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("unexpected error %v", err)
	}
}

func TestLoadSnakeMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("grid: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnake(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSpawnDefaultsToCenter(t *testing.T) {
	cfg := DefaultSnakeConfig()
	if cfg.SpawnCell() != (core.Cell{X: 10, Y: 10}) {
		t.Errorf("SpawnCell() = %v, expected (10,10)", cfg.SpawnCell())
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnakeConfig)
		want   string
	}{
		{"tiny grid", func(c *SnakeConfig) { c.Grid = core.NewGrid(1, 1) }, "room for the snake"},
		{"zero grid", func(c *SnakeConfig) { c.Grid = core.NewGrid(0, 5) }, "at least 1x1"},
		{"spawn outside", func(c *SnakeConfig) { c.Spawn = &core.Cell{X: 20, Y: 0} }, "outside"},
		{"zero base rate", func(c *SnakeConfig) { c.Speed.BaseRate = 0 }, "base_rate"},
		{"negative step", func(c *SnakeConfig) { c.Speed.Step = -1 }, "speed.step"},
		{"zero every points", func(c *SnakeConfig) { c.Speed.EveryPoints = 0 }, "every_points"},
		{"inverted range", func(c *SnakeConfig) { c.Speed.MinMultiplier = 4 }, "range"},
		{"multiplier outside", func(c *SnakeConfig) { c.Speed.Multiplier = 5 }, "outside"},
		{"zero food points", func(c *SnakeConfig) { c.Scoring.FoodPoints = 0 }, "food_points"},
		{"zero exemption", func(c *SnakeConfig) { c.Collision.SelfExemption = 0 }, "self_exemption"},
		{"negative attempts", func(c *SnakeConfig) { c.Food.MaxAttempts = -1 }, "max_attempts"},
		{"no up keys", func(c *SnakeConfig) { c.Input.Keys.Up = nil }, "input.keys.up"},
		{"shared key", func(c *SnakeConfig) { c.Input.Keys.Left = []string{"w"} }, "bound to both"},
		{"reserved key", func(c *SnakeConfig) { c.Input.Keys.Up = []string{"up", "r"} }, `key "r" is reserved for reset`},
		{"space reserved", func(c *SnakeConfig) { c.Input.Keys.Right = []string{" "} }, "reserved for start/pause"},
		{"loud audio", func(c *SnakeConfig) { c.Audio.Volume = 2 }, "audio.volume"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Validate() = %v, expected ErrInvalidConfig", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() = %q, expected it to mention %q", err, tc.want)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		multiplier float64
		step       float64
	}{
		{DifficultyEasy, 0.6, 0.5},
		{DifficultyNormal, 1.0, 0.5},
		{DifficultyHard, 1.6, 0.5},
		{DifficultyFixed, 1.0, 0},
	}

	for _, tc := range tests {
		cfg := DefaultSnakeConfig()
		ApplySnakePreset(&cfg, tc.preset)
		if cfg.Speed.Multiplier != tc.multiplier {
			t.Errorf("%s: multiplier = %v, expected %v", tc.preset, cfg.Speed.Multiplier, tc.multiplier)
		}
		if cfg.Speed.Step != tc.step {
			t.Errorf("%s: step = %v, expected %v", tc.preset, cfg.Speed.Step, tc.step)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("%s: preset config should validate, got %v", tc.preset, err)
		}
	}
}

func TestPresetClampedToRange(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Speed.MaxMultiplier = 1.2
	ApplySnakePreset(&cfg, DifficultyHard)
	if cfg.Speed.Multiplier != 1.2 {
		t.Errorf("multiplier = %v, expected clamp to 1.2", cfg.Speed.Multiplier)
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != "" {
		t.Errorf("ParsePreset(\"\") = (%q, %v), expected empty preset", p, err)
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = (%q, %v)", p, err)
	}
	if _, err := ParsePreset("nightmare"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("ParsePreset(nightmare) error = %v, expected ErrInvalidConfig", err)
	}
}

func TestMarshalRoundTripKeepsSpawn(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Spawn = &core.Cell{X: 1, Y: 2}

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if back.SpawnCell() != (core.Cell{X: 1, Y: 2}) {
		t.Errorf("spawn lost in round trip: %v", back.SpawnCell())
	}
}
