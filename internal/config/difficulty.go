package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset validates a preset name. An empty name is accepted and means
// "leave the config as loaded".
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return "", nil
	}
	for _, p := range Presets {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalidConfig, name)
}

// MultiplierForPreset returns the starting speed multiplier for a preset.
func MultiplierForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.6
	case DifficultyHard:
		return 1.6
	default:
		return 1.0
	}
}

// Description returns a one-line summary for menus and help output.
func (p DifficultyPreset) Description() string {
	switch p {
	case DifficultyEasy:
		return "slower snake, speeds up with score"
	case DifficultyNormal:
		return "classic pace, speeds up with score"
	case DifficultyHard:
		return "fast snake, speeds up with score"
	case DifficultyFixed:
		return "classic pace, no speed-up"
	default:
		return ""
	}
}

// ApplySnakePreset modifies the config based on a difficulty preset.
// The multiplier is clamped into the configured range.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}

	m := MultiplierForPreset(preset)
	if m < cfg.Speed.MinMultiplier {
		m = cfg.Speed.MinMultiplier
	}
	if m > cfg.Speed.MaxMultiplier {
		m = cfg.Speed.MaxMultiplier
	}
	cfg.Speed.Multiplier = m

	if preset == DifficultyFixed {
		cfg.Speed.Step = 0
	}
}
