// Package tetris adapts the falling-block engine to the platform's Game
// interface: it maps input actions to engine commands, drives gravity from
// the tick loop and draws the playfield into a screen buffer.
package tetris

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Variant selects the rule set.
type Variant string

const (
	VariantModern  Variant = "tetris"
	VariantClassic Variant = "tetris_classic"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// startMuted is the mute flag new games start with
var startMuted bool

// logger reports config problems that fall back to defaults
var logger = log.New(io.Discard)

// SetLogger sets where config warnings go. Nil discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		logger.Warn("ignoring difficulty preset", "err", err)
		p = ""
	}
	difficultyPreset = p
}

// SetStartMuted sets whether new games start with sound muted.
func SetStartMuted(muted bool) {
	startMuted = muted
}

// Game implements registry.Game for one tetris variant.
type Game struct {
	variant Variant
	state   *engine.State
	cfg     config.TetrisConfig
	now     func() time.Time
	tick    uint64

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a modern tetris game: bag randomizer, wall kicks and
// row-based levels.
func New() *Game {
	return &Game{variant: VariantModern}
}

// NewClassic creates a classic tetris game: uniform pieces, no kicks and
// score-based levels.
func NewClassic() *Game {
	return &Game{variant: VariantClassic}
}

func init() {
	registry.Register(string(VariantModern), func() registry.Game {
		return New()
	})
	registry.Register(string(VariantClassic), func() registry.Game {
		return NewClassic()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantClassic {
		return "Tetris (Classic)"
	}
	return "Tetris"
}

// Description returns a one-line summary of the rules.
func (g *Game) Description() string {
	if g.variant == VariantClassic {
		return "Random pieces, no wall kicks, a level every 500 points"
	}
	return "7-piece bag, wall kicks, levels by rows cleared"
}

// Reset loads configuration and starts a new game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	tc, err := config.LoadTetris(configPath)
	if err != nil {
		logger.Warn("config unusable, using defaults", "err", err)
		tc = config.DefaultTetrisConfig()
	}
	config.ApplyTetrisPreset(&tc, difficultyPreset)
	g.cfg = tc

	g.state = engine.New(engine.Options{
		Rules:  g.rules(),
		Timing: g.timing(),
		Seed:   cfg.Seed,
		Now:    g.now,
	})
	g.state.SetMuted(startMuted)
	g.tick = 0

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.checkScreenSize()
}

func (g *Game) rules() engine.Rules {
	if g.variant == VariantClassic {
		return engine.ClassicRules()
	}
	return engine.ModernRules()
}

func (g *Game) timing() engine.Timing {
	ratio := g.cfg.Difficulty.Ratio
	if g.variant == VariantClassic {
		ratio = g.cfg.Difficulty.ClassicRatio
	}
	return engine.Timing{
		MoveDelay:       g.cfg.Timing.MoveDelay(),
		MinMoveDelay:    g.cfg.Timing.MinMoveDelay(),
		RotationDelay:   g.cfg.Timing.RotationDelay(),
		DifficultyRatio: ratio,
	}
}

// Config returns the configuration the current game was built from.
func (g *Game) Config() config.TetrisConfig {
	return g.cfg
}

// Resize follows a terminal resize without restarting. A game that no
// longer fits is paused so the clock does not run while it is hidden.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
	if g.tooSmall && g.state != nil && g.state.Status() == engine.Playing {
		g.state.TogglePause()
	}
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

// Step applies the frame's actions in order, then lets gravity advance the
// piece if its interval has elapsed.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	for _, a := range in.Actions {
		if g.tooSmall && a != core.ActionQuit {
			continue
		}
		g.apply(a)
	}

	if !g.tooSmall && g.state.Due() {
		g.state.Advance()
	}

	return core.StepResult{
		State:  g.State(),
		Events: convertEvents(g.state.Events()),
	}
}

func (g *Game) apply(a core.Action) {
	switch a {
	case core.ActionMoveLeft:
		g.state.MoveLeft()
	case core.ActionMoveRight:
		g.state.MoveRight()
	case core.ActionRotate:
		g.state.Rotate()
	case core.ActionSoftDrop:
		g.state.SoftDrop()
	case core.ActionPause:
		g.state.TogglePause()
	case core.ActionRestart:
		g.state.Restart()
	case core.ActionMute:
		g.state.ToggleMute()
	case core.ActionQuit:
		g.state.Quit()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{}
	}
	sc := g.state.Scoring()
	status := g.state.Status()
	return core.GameState{
		Score:    sc.Score,
		Level:    sc.Level,
		Rows:     sc.RowsCleared,
		GameOver: status == engine.GameOver,
		Paused:   status == engine.Paused,
		Muted:    g.state.Muted(),
		Closed:   status == engine.Closing,
	}
}

func convertEvents(events []engine.Event) []core.Event {
	if len(events) == 0 {
		return nil
	}
	out := make([]core.Event, 0, len(events))
	for _, e := range events {
		var kind core.EventKind
		switch e.Kind {
		case engine.EventPieceLocked:
			kind = core.EventPieceLocked
		case engine.EventRowsCleared:
			kind = core.EventRowsCleared
		case engine.EventLevelUp:
			kind = core.EventLevelUp
		case engine.EventGameOver:
			kind = core.EventGameOver
		case engine.EventPauseEntered:
			kind = core.EventPauseEntered
		case engine.EventPauseExited:
			kind = core.EventPauseExited
		case engine.EventMuteToggled:
			kind = core.EventMuteToggled
		default:
			continue
		}
		out = append(out, core.Event{Kind: kind, Rows: e.Rows, Level: e.Level, Muted: e.Muted})
	}
	return out
}
