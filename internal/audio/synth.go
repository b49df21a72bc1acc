// Package audio turns game feedback tones into sound through beep's speaker.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/brickstorm/internal/core"
)

// Envelope timing shared by every cue.
const (
	attack  = 2 * time.Millisecond
	release = 8 * time.Millisecond
)

// oscillator generates a fixed-length periodic wave.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     core.Waveform
	rate     beep.SampleRate
}

// NewOscillator creates a streamer that plays freq for duration.
func NewOscillator(freq float64, duration time.Duration, wave core.Waveform, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case core.WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case core.WaveTriangle:
			val = 1.0 - 4.0*math.Abs(o.phase-0.5)
		default:
			val = math.Sin(2 * math.Pi * o.phase)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in and out to avoid clicks.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := range n {
		vol := 1.0
		if e.attackSamples > 0 && e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; log2(0) is -Inf so 0 means silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// ToneStream builds the shaped streamer for a single tone.
func ToneStream(t core.Tone, volume float64, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(t.Frequency, t.Duration, t.Wave, rate)
	shaped := NewEnvelope(osc, t.Duration, attack, release, rate)
	return newVolume(shaped, volume)
}
