package audio

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestTonesForEvent(t *testing.T) {
	tests := []struct {
		name     string
		event    core.Event
		expected int
	}{
		{"lock", core.Event{Kind: core.EventPieceLocked}, 1},
		{"single", core.Event{Kind: core.EventRowsCleared, Rows: 1}, 1},
		{"double", core.Event{Kind: core.EventRowsCleared, Rows: 2}, 2},
		{"triple", core.Event{Kind: core.EventRowsCleared, Rows: 3}, 3},
		{"four", core.Event{Kind: core.EventRowsCleared, Rows: 4}, 3},
		{"no rows", core.Event{Kind: core.EventRowsCleared}, 0},
		{"level up", core.Event{Kind: core.EventLevelUp, Level: 2}, 4},
		{"game over", core.Event{Kind: core.EventGameOver}, 3},
		{"pause", core.Event{Kind: core.EventPauseEntered}, 1},
		{"resume", core.Event{Kind: core.EventPauseExited}, 1},
		{"unmute", core.Event{Kind: core.EventMuteToggled, Muted: false}, 1},
		{"mute", core.Event{Kind: core.EventMuteToggled, Muted: true}, 0},
		{"unknown", core.Event{Kind: core.EventKind(99)}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tonesForEvent(tc.event)
			if len(got) != tc.expected {
				t.Fatalf("len(tonesForEvent()) = %d, expected %d", len(got), tc.expected)
			}
			for _, ts := range got {
				if ts.frequency <= 0 || ts.duration <= 0 {
					t.Errorf("tone %+v should have positive frequency and duration", ts)
				}
			}
		})
	}
}

func TestRenderToneSequenceLength(t *testing.T) {
	const rate = 1000
	seq := []toneSpec{
		{frequency: 100, duration: 50 * time.Millisecond, volume: 0.5},
		{frequency: 200, duration: 20 * time.Millisecond, volume: 0.5},
	}
	buf := renderToneSequence(seq, rate, 1)

	// 50 + 10 gap + 20 samples at 1kHz, four bytes each.
	expected := (50 + 10 + 20) * bytesPerFrame
	if len(buf) != expected {
		t.Errorf("len(renderToneSequence()) = %d, expected %d", len(buf), expected)
	}
}

func TestRenderToneSequenceSilentAtZeroVolume(t *testing.T) {
	seq := tonesForEvent(core.Event{Kind: core.EventGameOver})
	buf := renderToneSequence(seq, 8000, 0)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %d, expected silence at zero volume", i, b)
		}
	}
}

func TestRenderToneChannelsMatch(t *testing.T) {
	ts := toneSpec{frequency: 440, duration: 10 * time.Millisecond, volume: 1}
	buf := make([]byte, sampleCount(ts.duration, 8000)*bytesPerFrame)
	renderTone(buf, 0, ts, 8000, 1)

	nonZero := false
	for i := 0; i < len(buf); i += bytesPerFrame {
		if buf[i] != buf[i+2] || buf[i+1] != buf[i+3] {
			t.Fatalf("frame %d: left and right channels differ", i/bytesPerFrame)
		}
		if buf[i] != 0 || buf[i+1] != 0 {
			nonZero = true
		}
	}
	if !nonZero {
		t.Error("renderTone() produced only silence")
	}
}

func TestClampVolume(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{-1, 0},
		{0, 0},
		{0.4, 0.4},
		{1, 1},
		{2, 1},
	}
	for _, tc := range tests {
		if got := clampVolume(tc.in); got != tc.expected {
			t.Errorf("clampVolume(%v) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestDisabledEngineIsSilent(t *testing.T) {
	e := New(Options{Enabled: false, Volume: 3})
	if e.Available() {
		t.Error("Available() = true for a disabled engine")
	}
	if e.Err() != nil {
		t.Errorf("Err() = %v, expected nil when no device was opened", e.Err())
	}

	// Must not panic or open a device.
	e.Play(core.Event{Kind: core.EventPieceLocked})

	e.HandleEvents([]core.Event{{Kind: core.EventMuteToggled, Muted: true}})
	if !e.Muted() {
		t.Error("Muted() = false after a MuteToggled(true) event")
	}
	e.HandleEvents([]core.Event{{Kind: core.EventMuteToggled, Muted: false}})
	if e.Muted() {
		t.Error("Muted() = true after a MuteToggled(false) event")
	}
}
