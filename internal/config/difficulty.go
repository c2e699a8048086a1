package config

import "fmt"

// presetRatios maps each preset to its modern and classic difficulty ratio.
var presetRatios = map[DifficultyPreset]DifficultyConfig{
	DifficultyEasy:   {Ratio: 0.05, ClassicRatio: 0.1},
	DifficultyNormal: {Ratio: 0.1, ClassicRatio: 0.2},
	DifficultyHard:   {Ratio: 0.2, ClassicRatio: 0.3},
	DifficultyFixed:  {Ratio: 0, ClassicRatio: 0},
}

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return "", nil
	}
	preset := DifficultyPreset(name)
	if _, ok := presetRatios[preset]; !ok {
		return "", fmt.Errorf("config: unknown difficulty %q (want one of %s)", name, PresetNames())
	}
	return preset, nil
}

// DifficultyForPreset returns the ratios of a preset, falling back to normal.
func DifficultyForPreset(preset DifficultyPreset) DifficultyConfig {
	if d, ok := presetRatios[preset]; ok {
		return d
	}
	return presetRatios[DifficultyNormal]
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Difficulty = DifficultyForPreset(preset)
}
