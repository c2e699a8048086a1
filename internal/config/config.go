// Package config provides YAML-based game configuration loading and
// difficulty presets for the tetris variants.
package config

import (
	"strings"
	"time"
)

// TetrisConfig contains all configuration for the tetris game.
type TetrisConfig struct {
	Timing     TetrisTiming     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Audio      AudioConfig      `yaml:"audio"`
}

// TetrisTiming defines the cadence parameters in milliseconds.
type TetrisTiming struct {
	MoveDelayMS     int `yaml:"move_delay_ms"`     // Fall interval at level 0
	MinMoveDelayMS  int `yaml:"min_move_delay_ms"` // Gravity debounce and fall interval floor
	RotationDelayMS int `yaml:"rotation_delay_ms"` // Minimum gap between rotations
}

// MoveDelay returns the level 0 fall interval.
func (t TetrisTiming) MoveDelay() time.Duration {
	return time.Duration(t.MoveDelayMS) * time.Millisecond
}

// MinMoveDelay returns the gravity debounce.
func (t TetrisTiming) MinMoveDelay() time.Duration {
	return time.Duration(t.MinMoveDelayMS) * time.Millisecond
}

// RotationDelay returns the rotation debounce.
func (t TetrisTiming) RotationDelay() time.Duration {
	return time.Duration(t.RotationDelayMS) * time.Millisecond
}

// DifficultyConfig defines how quickly gravity speeds up per level.
type DifficultyConfig struct {
	Ratio        float64 `yaml:"ratio"`         // Fraction of move delay removed per level
	ClassicRatio float64 `yaml:"classic_ratio"` // Same, for the classic variant
}

// AudioConfig defines sound cue settings.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists every known preset in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// PresetNames returns the preset names joined for help and error text.
func PresetNames() string {
	names := make([]string, len(Presets))
	for i, p := range Presets {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}
