package engine

import (
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) now() time.Time { return f.t }

func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

// newTestState builds a game on a fake clock with the given rules.
func newTestState(t *testing.T, rules Rules) (*State, *fakeClock) {
	t.Helper()
	fc := newFakeClock()
	s := New(Options{Rules: rules, Seed: 42, Now: fc.now})
	s.Events()
	return s, fc
}

// dropUntilLocked steps gravity one second at a time until the active
// piece locks or the game leaves Playing.
func dropUntilLocked(t *testing.T, s *State, fc *fakeClock) []Event {
	t.Helper()
	var events []Event
	for i := 0; i < Height+ShapeSize+2; i++ {
		fc.advance(time.Second)
		s.Advance()
		got := s.Events()
		events = append(events, got...)
		for _, e := range got {
			if e.Kind == EventPieceLocked || e.Kind == EventGameOver {
				return events
			}
		}
		if s.Status() != Playing {
			return events
		}
	}
	t.Fatalf("piece never locked after %d steps", Height+ShapeSize+2)
	return nil
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
