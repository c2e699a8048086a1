package tetris

import (
	"strings"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Variant  string
	Status   string
	Score    int
	Level    int
	Rows     int
	Elapsed  time.Duration
	Board    string // one line per row, '.' for empty
	Active   engine.Piece
	Upcoming string // queued kinds as letters
	Muted    bool
	TooSmall bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	sc := g.state.Scoring()

	var up strings.Builder
	for _, k := range g.state.Upcoming() {
		up.WriteString(k.String())
	}

	return Snapshot{
		Tick:     g.tick,
		Variant:  string(g.variant),
		Status:   g.state.Status().String(),
		Score:    sc.Score,
		Level:    sc.Level,
		Rows:     sc.RowsCleared,
		Elapsed:  g.state.Elapsed(),
		Board:    g.state.Board().String(),
		Active:   g.state.Active(),
		Upcoming: up.String(),
		Muted:    g.state.Muted(),
		TooSmall: g.tooSmall,
	}
}
