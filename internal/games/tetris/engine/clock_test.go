package engine

import (
	"testing"
	"time"
)

func TestFallInterval(t *testing.T) {
	timing := DefaultTiming()
	tests := []struct {
		level    int
		expected time.Duration
	}{
		{0, 1000 * time.Millisecond},
		{1, 900 * time.Millisecond},
		{5, 500 * time.Millisecond},
		{9, 100 * time.Millisecond},
		{10, 50 * time.Millisecond},
		{15, 50 * time.Millisecond},
	}

	for _, tc := range tests {
		if got := timing.FallInterval(tc.level); got != tc.expected {
			t.Errorf("FallInterval(%d) = %v, expected %v", tc.level, got, tc.expected)
		}
	}
}

func TestFallIntervalFixedRatio(t *testing.T) {
	timing := DefaultTiming()
	timing.DifficultyRatio = 0
	if got := timing.FallInterval(30); got != timing.MoveDelay {
		t.Errorf("FallInterval(30) = %v, expected %v", got, timing.MoveDelay)
	}
}

func TestClockPauseExcluded(t *testing.T) {
	fc := newFakeClock()
	c := NewClock(fc.now)
	c.Start(0)

	fc.advance(3 * time.Second)
	c.Pause()
	if !c.Paused() {
		t.Fatal("Paused() = false after Pause()")
	}
	fc.advance(10 * time.Second)
	if got := c.Elapsed(); got != 3*time.Second {
		t.Errorf("Elapsed() while paused = %v, expected 3s", got)
	}
	c.Resume()
	if got := c.Elapsed(); got != 3*time.Second {
		t.Errorf("Elapsed() after resume = %v, expected 3s", got)
	}
	fc.advance(2 * time.Second)
	if got := c.Elapsed(); got != 5*time.Second {
		t.Errorf("Elapsed() = %v, expected 5s", got)
	}
}

func TestClockPauseIdempotent(t *testing.T) {
	fc := newFakeClock()
	c := NewClock(fc.now)
	c.Start(0)

	fc.advance(time.Second)
	c.Pause()
	fc.advance(time.Second)
	c.Pause()
	fc.advance(time.Second)
	c.Resume()
	c.Resume()
	if got := c.Elapsed(); got != time.Second {
		t.Errorf("Elapsed() = %v, expected 1s", got)
	}
}

func TestClockFirstRotationNotDebounced(t *testing.T) {
	fc := newFakeClock()
	c := NewClock(fc.now)
	c.Start(150 * time.Millisecond)
	if got := c.SinceRotation(); got < 150*time.Millisecond {
		t.Errorf("SinceRotation() at start = %v, expected at least 150ms", got)
	}
}
