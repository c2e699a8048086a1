package engine

import "time"

// Timing holds the cadence parameters of a game.
type Timing struct {
	// MoveDelay is the fall interval at level 0.
	MoveDelay time.Duration
	// MinMoveDelay debounces gravity steps and floors the fall interval.
	MinMoveDelay time.Duration
	// RotationDelay is the minimum gap between two rotation attempts.
	RotationDelay time.Duration
	// DifficultyRatio is the fraction of MoveDelay removed per level.
	DifficultyRatio float64
}

// DefaultTiming returns the standard cadence.
func DefaultTiming() Timing {
	return Timing{
		MoveDelay:       1000 * time.Millisecond,
		MinMoveDelay:    50 * time.Millisecond,
		RotationDelay:   150 * time.Millisecond,
		DifficultyRatio: 0.1,
	}
}

// FallInterval returns the gravity interval at the given level.
func (t Timing) FallInterval(level int) time.Duration {
	cut := time.Duration(float64(t.MoveDelay) * t.DifficultyRatio * float64(level))
	interval := t.MoveDelay - cut
	if interval < t.MinMoveDelay {
		return t.MinMoveDelay
	}
	return interval
}

// Clock measures play time with paused stretches removed. All cadence
// timestamps are kept in elapsed-play-time units so pausing never makes a
// timer fire.
type Clock struct {
	now         func() time.Time
	start       time.Time
	pausedTotal time.Duration
	pausedAt    time.Time
	paused      bool

	lastFall     time.Duration
	lastRotation time.Duration
}

// NewClock creates a clock reading wall time from now.
func NewClock(now func() time.Time) Clock {
	if now == nil {
		now = time.Now
	}
	return Clock{now: now}
}

// Start rewinds the clock to zero elapsed time.
func (c *Clock) Start(rotationDelay time.Duration) {
	c.start = c.now()
	c.pausedTotal = 0
	c.paused = false
	c.lastFall = 0
	// The first rotation of a game is never debounced.
	c.lastRotation = -rotationDelay
}

// Elapsed returns play time since Start, frozen while paused.
func (c *Clock) Elapsed() time.Duration {
	t := c.now()
	if c.paused {
		t = c.pausedAt
	}
	return t.Sub(c.start) - c.pausedTotal
}

// Pause freezes elapsed time.
func (c *Clock) Pause() {
	if c.paused {
		return
	}
	c.pausedAt = c.now()
	c.paused = true
}

// Resume adds the paused stretch to the excluded total.
func (c *Clock) Resume() {
	if !c.paused {
		return
	}
	c.pausedTotal += c.now().Sub(c.pausedAt)
	c.paused = false
}

// Paused reports whether the clock is frozen.
func (c *Clock) Paused() bool {
	return c.paused
}

// SinceFall returns elapsed time since the last gravity step.
func (c *Clock) SinceFall() time.Duration {
	return c.Elapsed() - c.lastFall
}

// MarkFall records a gravity step at the current elapsed time.
func (c *Clock) MarkFall() {
	c.lastFall = c.Elapsed()
}

// SinceRotation returns elapsed time since the last rotation attempt.
func (c *Clock) SinceRotation() time.Duration {
	return c.Elapsed() - c.lastRotation
}

// MarkRotation records a rotation attempt at the current elapsed time.
func (c *Clock) MarkRotation() {
	c.lastRotation = c.Elapsed()
}
