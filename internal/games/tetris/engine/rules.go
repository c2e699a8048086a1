package engine

import "math/rand"

// Leveling selects how the level is derived after a clear.
type Leveling int

const (
	// LevelByRows uses tiered divisors over the rows-cleared total.
	LevelByRows Leveling = iota
	// LevelByScore gains a level every 500 points.
	LevelByScore
)

// Rules selects the behavior that differs between game variants.
type Rules struct {
	WallKicks     bool
	Leveling      Leveling
	NewRandomizer func(rng *rand.Rand) Randomizer
}

// ModernRules is the bag randomizer with wall kicks and tiered leveling.
func ModernRules() Rules {
	return Rules{
		WallKicks: true,
		Leveling:  LevelByRows,
		NewRandomizer: func(rng *rand.Rand) Randomizer {
			return NewBag(rng)
		},
	}
}

// ClassicRules draws pieces uniformly, never kicks and levels by score.
func ClassicRules() Rules {
	return Rules{
		WallKicks: false,
		Leveling:  LevelByScore,
		NewRandomizer: func(rng *rand.Rand) Randomizer {
			return NewUniform(rng)
		},
	}
}
