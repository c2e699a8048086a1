package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Timing: TetrisTiming{
			MoveDelayMS:     1000,
			MinMoveDelayMS:  50,
			RotationDelayMS: 150,
		},
		Difficulty: DifficultyConfig{
			Ratio:        0.1,
			ClassicRatio: 0.2,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.7,
		},
	}
}

// DefaultYAML returns a copy of the embedded default config file, the
// starting point for a custom --config file.
func DefaultYAML() []byte {
	return append([]byte(nil), defaultTetrisYAML...)
}
