package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// LoadSnake loads the snake configuration.
// Search order: customPath -> ~/.snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default.
// Files are decoded over DefaultSnakeConfig, so a partial file only overrides
// the keys it names. The result is not validated; call Validate.
func LoadSnake(customPath string) (SnakeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/snake.yaml"); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultSnakeYAML)
	if err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the default configuration.
func Parse(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SnakeConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg SnakeConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs", filename)
}

// Validate rejects out-of-range values so the engine never sees them.
// All problems are reported together.
func (c SnakeConfig) Validate() error {
	var problems []error
	bad := func(format string, args ...any) {
		problems = append(problems, fmt.Errorf(format, args...))
	}

	if c.Grid.Width < 1 || c.Grid.Height < 1 {
		bad("grid must be at least 1x1, got %dx%d", c.Grid.Width, c.Grid.Height)
	} else if c.Grid.Cells() < 2 {
		bad("grid needs room for the snake and one food, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if c.Spawn != nil && !c.Grid.Contains(*c.Spawn) {
		bad("spawn %v is outside the %dx%d grid", *c.Spawn, c.Grid.Width, c.Grid.Height)
	}

	s := c.Speed
	if !positive(s.BaseRate) {
		bad("speed.base_rate must be > 0, got %v", s.BaseRate)
	}
	if s.Step < 0 || !finite(s.Step) {
		bad("speed.step must be >= 0, got %v", s.Step)
	}
	if s.EveryPoints <= 0 {
		bad("speed.every_points must be > 0, got %d", s.EveryPoints)
	}
	if !positive(s.MinMultiplier) || !finite(s.MaxMultiplier) || s.MinMultiplier > s.MaxMultiplier {
		bad("speed multiplier range [%v, %v] is invalid", s.MinMultiplier, s.MaxMultiplier)
	} else if s.Multiplier < s.MinMultiplier || s.Multiplier > s.MaxMultiplier {
		bad("speed.multiplier %v is outside [%v, %v]", s.Multiplier, s.MinMultiplier, s.MaxMultiplier)
	}
	if !positive(s.MultiplierStep) {
		bad("speed.multiplier_step must be > 0, got %v", s.MultiplierStep)
	}

	if c.Scoring.FoodPoints <= 0 {
		bad("scoring.food_points must be > 0, got %d", c.Scoring.FoodPoints)
	}
	if c.Collision.SelfExemption < 1 {
		bad("collision.self_exemption must be >= 1, got %d", c.Collision.SelfExemption)
	}
	if c.Food.MaxAttempts < 0 {
		bad("food.max_attempts must be >= 0, got %d", c.Food.MaxAttempts)
	}

	in := c.Input
	if in.TouchDeadZone < 0 || !finite(in.TouchDeadZone) {
		bad("input.touch_dead_zone must be >= 0, got %v", in.TouchDeadZone)
	}
	if in.SwipeMinDistance < 0 || !finite(in.SwipeMinDistance) {
		bad("input.swipe_min_distance must be >= 0, got %v", in.SwipeMinDistance)
	}
	problems = append(problems, in.Keys.validate()...)

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		bad("audio.volume must be within [0, 1], got %v", c.Audio.Volume)
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(problems...))
}

func (k KeyBindings) validate() []error {
	var problems []error
	reserved := reservedKeys()
	owner := make(map[string]string)
	for _, group := range []struct {
		name string
		keys []string
	}{
		{"up", k.Up},
		{"down", k.Down},
		{"left", k.Left},
		{"right", k.Right},
	} {
		if len(group.keys) == 0 {
			problems = append(problems, fmt.Errorf("input.keys.%s needs at least one key", group.name))
		}
		for _, key := range group.keys {
			if cmd, ok := reserved[key]; ok {
				problems = append(problems, fmt.Errorf("input.keys.%s: key %q is reserved for %s", group.name, key, cmd))
				continue
			}
			if prev, ok := owner[key]; ok && prev != group.name {
				problems = append(problems, fmt.Errorf("key %q is bound to both %s and %s", key, prev, group.name))
				continue
			}
			owner[key] = group.name
		}
	}
	return problems
}

func positive(v float64) bool {
	return v > 0 && finite(v)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
