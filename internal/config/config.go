// Package config provides YAML-based game configuration loading, validation
// and difficulty presets.
package config

import "github.com/vovakirdan/neon-snake/internal/core"

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid      core.Grid       `yaml:"grid"`
	Spawn     *core.Cell      `yaml:"spawn,omitempty"` // nil means grid center
	Speed     SpeedConfig     `yaml:"speed"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Collision CollisionConfig `yaml:"collision"`
	Food      FoodConfig      `yaml:"food"`
	Input     InputConfig     `yaml:"input"`
	Audio     AudioConfig     `yaml:"audio"`
}

// SpeedConfig defines the tick rate and how it grows with score.
type SpeedConfig struct {
	BaseRate       float64 `yaml:"base_rate"`       // Ticks per second at score 0
	Step           float64 `yaml:"step"`            // Added to base rate at each threshold
	EveryPoints    int     `yaml:"every_points"`    // Score interval for a speed step
	Multiplier     float64 `yaml:"multiplier"`      // User speed multiplier applied on reset
	MinMultiplier  float64 `yaml:"min_multiplier"`  // Lower bound for SetSpeedMultiplier
	MaxMultiplier  float64 `yaml:"max_multiplier"`  // Upper bound for SetSpeedMultiplier
	MultiplierStep float64 `yaml:"multiplier_step"` // Increment used by +/- in the TUI
}

// ScoringConfig defines points awarded.
type ScoringConfig struct {
	FoodPoints int `yaml:"food_points"`
}

// CollisionConfig defines collision tolerances.
type CollisionConfig struct {
	// SelfExemption is the number of leading segments (head included) that
	// never count for self collision.
	SelfExemption int `yaml:"self_exemption"`
}

// FoodConfig defines food placement parameters.
type FoodConfig struct {
	MaxAttempts int `yaml:"max_attempts"` // 0 = 100 draws per grid cell
}

// InputConfig defines how raw input is turned into headings.
type InputConfig struct {
	Keys             KeyBindings `yaml:"keys"`
	TouchDeadZone    float64     `yaml:"touch_dead_zone"`    // Radius in cells around the pad center
	SwipeMinDistance float64     `yaml:"swipe_min_distance"` // Shortest gesture that counts
}

// KeyBindings lists key names (as reported by the terminal) per heading.
type KeyBindings struct {
	Up    []string `yaml:"up"`
	Down  []string `yaml:"down"`
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
}

// AudioConfig defines the sound cues played on game events.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 - 1.0
}

// SpawnCell returns the configured spawn cell or the grid center.
func (c SnakeConfig) SpawnCell() core.Cell {
	if c.Spawn != nil {
		return *c.Spawn
	}
	return c.Grid.Center()
}
