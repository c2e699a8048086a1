// Package audio plays short synthesized tones for game events.
// Playback never blocks the game loop and silently does nothing when no
// audio device is available.
package audio

import (
	"bytes"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

const sampleRate = 44100

var (
	contextOnce sync.Once
	audioCtx    *oto.Context
	contextErr  error
)

// sharedContext opens the process-wide audio context. oto allows only one.
func sharedContext() (*oto.Context, error) {
	contextOnce.Do(func() {
		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: 2,
			Format:       oto.FormatSignedInt16LE,
		})
		if err != nil {
			contextErr = err
			return
		}
		<-ready
		audioCtx = ctx
	})
	return audioCtx, contextErr
}

// Options configures the sound engine.
type Options struct {
	Enabled bool
	Volume  float64 // 0.0 to 1.0
	Muted   bool
}

// Engine plays event cues. It is safe for concurrent use.
type Engine struct {
	mu      sync.RWMutex
	ctx     *oto.Context
	err     error
	enabled bool
	muted   bool
	volume  float64
}

// New creates a sound engine. When opts.Enabled is false no device is
// opened. A device failure is reported by Err and leaves the engine silent.
func New(opts Options) *Engine {
	e := &Engine{
		enabled: opts.Enabled,
		muted:   opts.Muted,
		volume:  clampVolume(opts.Volume),
	}
	if !opts.Enabled {
		return e
	}
	e.ctx, e.err = sharedContext()
	if e.err != nil {
		e.enabled = false
	}
	return e
}

// Err returns the error from opening the audio device, if any.
func (e *Engine) Err() error {
	return e.err
}

// Available reports whether cues can actually be heard.
func (e *Engine) Available() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.enabled && e.ctx != nil
}

// SetMuted mutes or unmutes playback.
func (e *Engine) SetMuted(muted bool) {
	e.mu.Lock()
	e.muted = muted
	e.mu.Unlock()
}

// Muted reports the mute flag.
func (e *Engine) Muted() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.muted
}

// HandleEvents follows mute changes and plays the cue of every event.
func (e *Engine) HandleEvents(events []core.Event) {
	for _, ev := range events {
		if ev.Kind == core.EventMuteToggled {
			e.SetMuted(ev.Muted)
		}
		e.Play(ev)
	}
}

// Play renders and plays the cue for an event in the background.
func (e *Engine) Play(ev core.Event) {
	e.mu.RLock()
	ctx := e.ctx
	audible := e.enabled && !e.muted
	volume := e.volume
	e.mu.RUnlock()
	if !audible || ctx == nil {
		return
	}
	sequence := tonesForEvent(ev)
	if len(sequence) == 0 {
		return
	}
	go func() {
		buffer := renderToneSequence(sequence, sampleRate, volume)
		player := ctx.NewPlayer(bytes.NewReader(buffer))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(5 * time.Millisecond)
		}
		_ = player.Close()
	}()
}
