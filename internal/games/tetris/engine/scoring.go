package engine

// Scoring holds the running score and level progression.
type Scoring struct {
	Score int
	// RowsCleared counts cleared rows for leveling; clears of four or more
	// rows count double.
	RowsCleared int
	Level       int
}

// lineScore is the base award by number of rows cleared at once.
func lineScore(cleared int) int {
	switch cleared {
	case 0:
		return 0
	case 1:
		return 40
	case 2:
		return 100
	case 3:
		return 300
	default:
		return 1200
	}
}

// scoreLevelRatio is the score per level under LevelByScore.
const scoreLevelRatio = 500

// Award applies a clear of the given size and returns true if the level went
// up. The award is scaled by the level in force before the clear.
func (sc *Scoring) Award(cleared int, leveling Leveling) bool {
	if cleared <= 0 {
		return false
	}
	sc.Score += lineScore(cleared) * (sc.Level + 1)
	if cleared >= 4 {
		sc.RowsCleared += cleared * 2
	} else {
		sc.RowsCleared += cleared
	}

	var candidate int
	switch leveling {
	case LevelByScore:
		candidate = sc.Score / scoreLevelRatio
	default:
		candidate = tieredLevel(sc.RowsCleared, sc.Level)
	}
	if candidate > sc.Level {
		sc.Level = candidate
		return true
	}
	return false
}

// tieredLevel picks the divisor from the current level only; a level-up in
// this recompute does not move it to the next tier until the next clear.
func tieredLevel(rows, level int) int {
	switch {
	case level < 10:
		return rows / 5
	case level < 20:
		return rows / 10
	case level < 30:
		return rows / 15
	default:
		return rows / 25
	}
}
