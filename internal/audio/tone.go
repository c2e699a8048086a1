package audio

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

type toneSpec struct {
	frequency float64
	duration  time.Duration
	volume    float64
}

// tonesForEvent returns the cue for an event, or nil for a silent event.
func tonesForEvent(ev core.Event) []toneSpec {
	switch ev.Kind {
	case core.EventPieceLocked:
		return []toneSpec{{frequency: 220, duration: 70 * time.Millisecond, volume: 0.3}}
	case core.EventRowsCleared:
		return lineTones(ev.Rows)
	case core.EventLevelUp:
		return []toneSpec{
			{frequency: 523, duration: 60 * time.Millisecond, volume: 0.25},
			{frequency: 659, duration: 60 * time.Millisecond, volume: 0.25},
			{frequency: 784, duration: 60 * time.Millisecond, volume: 0.25},
			{frequency: 1047, duration: 120 * time.Millisecond, volume: 0.25},
		}
	case core.EventGameOver:
		return []toneSpec{
			{frequency: 330, duration: 120 * time.Millisecond, volume: 0.28},
			{frequency: 247, duration: 120 * time.Millisecond, volume: 0.28},
			{frequency: 180, duration: 220 * time.Millisecond, volume: 0.28},
		}
	case core.EventPauseEntered:
		return []toneSpec{{frequency: 392, duration: 40 * time.Millisecond, volume: 0.18}}
	case core.EventPauseExited:
		return []toneSpec{{frequency: 523, duration: 40 * time.Millisecond, volume: 0.18}}
	case core.EventMuteToggled:
		if ev.Muted {
			return nil
		}
		return []toneSpec{{frequency: 520, duration: 70 * time.Millisecond, volume: 0.2}}
	default:
		return nil
	}
}

func lineTones(rows int) []toneSpec {
	switch {
	case rows <= 0:
		return nil
	case rows == 1:
		return []toneSpec{{frequency: 440, duration: 90 * time.Millisecond, volume: 0.3}}
	case rows == 2:
		return []toneSpec{
			{frequency: 440, duration: 70 * time.Millisecond, volume: 0.3},
			{frequency: 660, duration: 90 * time.Millisecond, volume: 0.3},
		}
	case rows == 3:
		return []toneSpec{
			{frequency: 440, duration: 70 * time.Millisecond, volume: 0.3},
			{frequency: 660, duration: 70 * time.Millisecond, volume: 0.3},
			{frequency: 880, duration: 90 * time.Millisecond, volume: 0.3},
		}
	default:
		return []toneSpec{
			{frequency: 660, duration: 80 * time.Millisecond, volume: 0.3},
			{frequency: 880, duration: 80 * time.Millisecond, volume: 0.3},
			{frequency: 990, duration: 120 * time.Millisecond, volume: 0.3},
		}
	}
}

const (
	bytesPerFrame = 4 // two 16-bit channels
	toneGap       = 10 * time.Millisecond
)

func sampleCount(d time.Duration, rate int) int {
	return int(float64(rate) * d.Seconds())
}

// renderToneSequence renders the tones back to back, separated by short
// silences, as interleaved stereo signed 16-bit little-endian PCM.
func renderToneSequence(sequence []toneSpec, rate int, masterVolume float64) []byte {
	const baseVolume = 0.3
	gapSamples := sampleCount(toneGap, rate)

	total := 0
	for i, ts := range sequence {
		total += sampleCount(ts.duration, rate)
		if i < len(sequence)-1 {
			total += gapSamples
		}
	}

	buffer := make([]byte, total*bytesPerFrame)
	index := 0
	for i, ts := range sequence {
		volume := baseVolume
		if ts.volume > 0 {
			volume = ts.volume
		}
		volume *= clampVolume(masterVolume)
		renderTone(buffer, index, ts, rate, volume)
		index += sampleCount(ts.duration, rate) * bytesPerFrame
		if i < len(sequence)-1 {
			index += gapSamples * bytesPerFrame
		}
	}
	return buffer
}

// renderTone writes one sine tone at byte offset start with a 3ms fade at
// both ends to avoid clicks.
func renderTone(buffer []byte, start int, ts toneSpec, rate int, volume float64) {
	const maxInt16 = 1<<15 - 1
	samples := sampleCount(ts.duration, rate)
	fadeSamples := int(float64(rate) * 0.003)
	for i := 0; i < samples; i++ {
		env := 1.0
		if fadeSamples > 0 {
			if i < fadeSamples {
				env = float64(i) / float64(fadeSamples)
			} else if i > samples-fadeSamples {
				env = float64(samples-i) / float64(fadeSamples)
			}
			if env < 0 {
				env = 0
			}
		}
		sample := math.Sin(2 * math.Pi * ts.frequency * float64(i) / float64(rate))
		value := int16(sample * volume * env * maxInt16)
		off := start + i*bytesPerFrame
		buffer[off] = byte(value)
		buffer[off+1] = byte(value >> 8)
		buffer[off+2] = byte(value)
		buffer[off+3] = byte(value >> 8)
	}
}

func clampVolume(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
