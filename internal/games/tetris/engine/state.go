package engine

import (
	"math/rand"
	"time"
)

// Status is the overall game status.
type Status int

const (
	Playing Status = iota
	Paused
	GameOver
	// Closing is terminal: the driver stops calling the engine.
	Closing
)

// String returns a readable name for the status.
func (s Status) String() string {
	switch s {
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case GameOver:
		return "GameOver"
	case Closing:
		return "Closing"
	default:
		return "Unknown"
	}
}

// Options configures a new game.
type Options struct {
	Rules  Rules
	Timing Timing
	// Seed seeds the piece randomizer once; restarts keep drawing from it.
	Seed int64
	// Now supplies wall time. Defaults to time.Now.
	Now func() time.Time
}

// State is the complete game record. It is not safe for concurrent use;
// the driver serializes every call.
type State struct {
	rules   Rules
	timing  Timing
	rand    Randomizer
	board   Board
	active  Piece
	scoring Scoring
	clock   Clock
	status  Status
	muted   bool
	events  []Event
}

// New creates a game in the Playing status with its first piece spawned.
func New(opts Options) *State {
	if opts.Rules.NewRandomizer == nil {
		opts.Rules = ModernRules()
	}
	if opts.Timing == (Timing{}) {
		opts.Timing = DefaultTiming()
	}
	rng := rand.New(rand.NewSource(opts.Seed))
	s := &State{
		rules:  opts.Rules,
		timing: opts.Timing,
		rand:   opts.Rules.NewRandomizer(rng),
		clock:  NewClock(opts.Now),
	}
	s.start()
	return s
}

// start resets the board, score and clock and spawns the first piece.
func (s *State) start() {
	s.board.Clear()
	s.scoring = Scoring{}
	s.clock.Start(s.timing.RotationDelay)
	s.status = Playing
	s.Spawn()
}

// Restart begins a new game after a game over. The randomizer restarts from
// a fresh sequence but keeps its seed stream.
func (s *State) Restart() {
	if s.status != GameOver {
		return
	}
	s.rand.Reset()
	s.start()
}

// Advance moves the active piece one row down, locking it when it has come
// to rest. Calls closer together than MinMoveDelay are ignored. Only valid
// while Playing.
func (s *State) Advance() {
	if s.status != Playing {
		return
	}
	if s.clock.SinceFall() < s.timing.MinMoveDelay {
		return
	}
	s.clock.MarkFall()

	p := s.active
	switch s.TestPosition(p.Rot, p.X, p.Y+1) {
	case Free:
		s.active.Y++
	case Blocked:
		if aboveGrid(p) {
			s.gameOver()
			return
		}
		s.lock()
		s.Spawn()
	case GameOverLock:
		s.gameOver()
	}
}

// lock settles the active piece and scores any completed rows.
func (s *State) lock() {
	s.board.WritePiece(s.active)
	s.emit(Event{Kind: EventPieceLocked})

	cleared := s.board.CompactAndClear()
	if cleared == 0 {
		return
	}
	s.emit(Event{Kind: EventRowsCleared, Rows: cleared})
	if s.scoring.Award(cleared, s.rules.Leveling) {
		s.emit(Event{Kind: EventLevelUp, Level: s.scoring.Level})
	}
}

func (s *State) gameOver() {
	s.status = GameOver
	s.emit(Event{Kind: EventGameOver})
}

// Due reports whether gravity should advance the piece now.
func (s *State) Due() bool {
	return s.status == Playing && s.clock.SinceFall() >= s.FallInterval()
}

// FallInterval returns the gravity interval at the current level.
func (s *State) FallInterval() time.Duration {
	return s.timing.FallInterval(s.scoring.Level)
}

// MoveLeft shifts the active piece one column left. It reports whether the
// piece ended up somewhere else: a blocked shift can kick back into the
// pose it started from, which counts as not moved.
func (s *State) MoveLeft() bool {
	return s.shift(-1)
}

// MoveRight shifts the active piece one column right, reporting like MoveLeft.
func (s *State) MoveRight() bool {
	return s.shift(1)
}

func (s *State) shift(dx int) bool {
	if s.status != Playing {
		return false
	}
	before := s.active
	return s.TryMove(s.active.Rot, s.active.X+dx, s.active.Y) && s.active != before
}

// Rotate turns the active piece one step clockwise. Requests arriving within
// RotationDelay of the previous attempt are dropped without testing.
func (s *State) Rotate() bool {
	if s.status != Playing {
		return false
	}
	if s.clock.SinceRotation() < s.timing.RotationDelay {
		return false
	}
	s.clock.MarkRotation()
	return s.TryMove(s.active.Rot.Next(), s.active.X, s.active.Y)
}

// SoftDrop is a manual gravity step.
func (s *State) SoftDrop() {
	s.Advance()
}

// TogglePause switches between Playing and Paused.
func (s *State) TogglePause() {
	switch s.status {
	case Playing:
		s.clock.Pause()
		s.status = Paused
		s.emit(Event{Kind: EventPauseEntered})
	case Paused:
		s.clock.Resume()
		s.status = Playing
		s.emit(Event{Kind: EventPauseExited})
	}
}

// ToggleMute flips the mute flag observed by the audio layer.
func (s *State) ToggleMute() {
	if s.status == Closing {
		return
	}
	s.muted = !s.muted
	s.emit(Event{Kind: EventMuteToggled, Muted: s.muted})
}

// SetMuted sets the mute flag without emitting an event.
func (s *State) SetMuted(muted bool) {
	s.muted = muted
}

// Quit moves the game to Closing from any status.
func (s *State) Quit() {
	s.status = Closing
}

// Status returns the current game status.
func (s *State) Status() Status { return s.status }

// Board returns the settled-cell grid. Callers must treat it as read-only.
func (s *State) Board() *Board { return &s.board }

// Active returns the falling piece.
func (s *State) Active() Piece { return s.active }

// Upcoming returns the kinds queued after the active piece.
func (s *State) Upcoming() []Kind { return s.rand.Upcoming() }

// Scoring returns score, rows cleared and level.
func (s *State) Scoring() Scoring { return s.scoring }

// Elapsed returns play time excluding pauses.
func (s *State) Elapsed() time.Duration { return s.clock.Elapsed() }

// Muted reports the mute flag.
func (s *State) Muted() bool { return s.muted }

// Timing returns the cadence parameters in force.
func (s *State) Timing() Timing { return s.timing }
