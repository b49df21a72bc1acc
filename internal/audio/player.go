package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/brickstorm/internal/core"
)

// Cap on tones mixed at once; extra requests are dropped.
const maxVoices = 8

// Config controls the player output.
type Config struct {
	Enabled    bool
	Volume     float64 // 0.0 - 1.0
	SampleRate int
}

// Player implements core.Feedback on top of beep's speaker.
// Play never blocks the caller and never reports errors.
type Player struct {
	mu          sync.Mutex
	cfg         Config
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
}

var _ core.Feedback = (*Player)(nil)

// NewPlayer creates a player. Call Init before the first tone is expected.
func NewPlayer(cfg Config) *Player {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = 44100
	}
	cfg.Volume = min(max(cfg.Volume, 0), 1)
	return &Player{
		cfg:   cfg,
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
	}
}

// Init opens the audio device. A disabled player never touches it.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues t on the mixer.
func (p *Player) Play(t core.Tone) {
	defer func() { _ = recover() }()

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || t.Frequency <= 0 || t.Duration <= 0 {
		return
	}

	s := ToneStream(t, p.cfg.Volume, p.rate)

	speaker.Lock()
	if p.mixer.Len() < maxVoices {
		p.mixer.Add(s)
	}
	speaker.Unlock()
}

// Close stops all sounds and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
