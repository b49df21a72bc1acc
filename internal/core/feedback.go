package core

import "time"

// Waveform is the oscillator shape of a feedback tone.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveTriangle
)

// String returns the name of the waveform.
func (w Waveform) String() string {
	switch w {
	case WaveSine:
		return "sine"
	case WaveSquare:
		return "square"
	case WaveTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// Tone is a short transient sound request.
type Tone struct {
	Frequency float64 // Hz
	Duration  time.Duration
	Wave      Waveform
}

// Feedback receives fire-and-forget tone requests from a game.
// Implementations must not block and swallow their own failures.
type Feedback interface {
	Play(t Tone)
}

// NopFeedback discards every tone.
type NopFeedback struct{}

// Play implements Feedback.
func (NopFeedback) Play(Tone) {}
