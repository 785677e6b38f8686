package config

import (
	_ "embed"

	"github.com/vovakirdan/neon-snake/internal/core"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: core.NewGrid(20, 20),
		Speed: SpeedConfig{
			BaseRate:       7,
			Step:           0.5,
			EveryPoints:    50,
			Multiplier:     1.0,
			MinMultiplier:  0.2,
			MaxMultiplier:  3.0,
			MultiplierStep: 0.2,
		},
		Scoring: ScoringConfig{
			FoodPoints: 10,
		},
		Collision: CollisionConfig{
			SelfExemption: 4,
		},
		Food: FoodConfig{
			MaxAttempts: 0,
		},
		Input: InputConfig{
			Keys: KeyBindings{
				Up:    []string{"up", "w", "k"},
				Down:  []string{"down", "s", "j"},
				Left:  []string{"left", "a", "h"},
				Right: []string{"right", "d", "l"},
			},
			TouchDeadZone:    1.0,
			SwipeMinDistance: 2.0,
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  0.5,
		},
	}
}

// CommandKeys are the keys the game keeps for its own commands. Movement
// bindings may not use them.
var CommandKeys = struct {
	Toggle []string
	Reset  []string
	Faster []string
	Slower []string
	Help   []string
	Quit   []string
}{
	Toggle: []string{" ", "p", "enter"},
	Reset:  []string{"r"},
	Faster: []string{"+", "="},
	Slower: []string{"-", "_"},
	Help:   []string{"?"},
	Quit:   []string{"q", "ctrl+c", "esc"},
}

// reservedKeys maps every command key to its command name.
func reservedKeys() map[string]string {
	k := CommandKeys
	out := make(map[string]string)
	for _, group := range []struct {
		name string
		keys []string
	}{
		{"start/pause", k.Toggle},
		{"reset", k.Reset},
		{"faster", k.Faster},
		{"slower", k.Slower},
		{"help", k.Help},
		{"quit", k.Quit},
	} {
		for _, key := range group.keys {
			out[key] = group.name
		}
	}
	return out
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
