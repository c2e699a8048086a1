package core

import "testing"

func TestInputFrameKeepsOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionMoveLeft)
	f.Set(ActionRotate)
	f.Set(ActionMoveLeft)
	f.Set(ActionNone)

	expected := []Action{ActionMoveLeft, ActionRotate, ActionMoveLeft}
	if len(f.Actions) != len(expected) {
		t.Fatalf("len(Actions) = %d, expected %d", len(f.Actions), len(expected))
	}
	for i, a := range expected {
		if f.Actions[i] != a {
			t.Errorf("Actions[%d] = %v, expected %v", i, f.Actions[i], a)
		}
	}
	if !f.Has(ActionRotate) {
		t.Error("Has(Rotate) = false, expected true")
	}
	if f.Has(ActionPause) {
		t.Error("Has(Pause) = true, expected false")
	}
}

func TestInputFrameCloneAndClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionSoftDrop)
	clone := f.Clone()

	f.Clear()
	if !f.Empty() {
		t.Errorf("Empty() after Clear = false, actions %v", f.Actions)
	}
	if !clone.Has(ActionSoftDrop) {
		t.Error("Clear() should not affect a clone")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionMoveLeft, "MoveLeft"},
		{ActionMute, "Mute"},
		{ActionBack, "Back"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}
}
