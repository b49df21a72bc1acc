package brickstorm

import (
	"time"

	"github.com/vovakirdan/brickstorm/internal/core"
)

// Cue names a moment that deserves a feedback tone.
type Cue int

const (
	CueWall Cue = iota
	CuePaddle
	CueBrick
	CuePowerUp
	CueLaser
	CueBoss
	CueShield
	CueLifeLost
	CueBulletHit
	CueLevel
)

// String returns the name of the cue.
func (c Cue) String() string {
	switch c {
	case CueWall:
		return "wall"
	case CuePaddle:
		return "paddle"
	case CueBrick:
		return "brick"
	case CuePowerUp:
		return "powerup"
	case CueLaser:
		return "laser"
	case CueBoss:
		return "boss"
	case CueShield:
		return "shield"
	case CueLifeLost:
		return "life_lost"
	case CueBulletHit:
		return "bullet_hit"
	case CueLevel:
		return "level"
	default:
		return "unknown"
	}
}

// Tone returns the sound played for the cue.
func (c Cue) Tone() core.Tone {
	switch c {
	case CueWall:
		return tone(400, 20, core.WaveSine)
	case CuePaddle:
		return tone(1200, 10, core.WaveSine)
	case CueBrick:
		return tone(700, 20, core.WaveSine)
	case CuePowerUp:
		return tone(880, 60, core.WaveSine)
	case CueLaser:
		return tone(1200, 40, core.WaveSquare)
	case CueBoss:
		return tone(150, 30, core.WaveTriangle)
	case CueShield:
		return tone(240, 60, core.WaveSine)
	case CueLifeLost:
		return tone(180, 80, core.WaveSine)
	case CueBulletHit:
		return tone(200, 60, core.WaveSine)
	case CueLevel:
		return tone(900, 120, core.WaveSine)
	default:
		return core.Tone{}
	}
}

func tone(freq float64, ms int, w core.Waveform) core.Tone {
	return core.Tone{Frequency: freq, Duration: time.Duration(ms) * time.Millisecond, Wave: w}
}

// cue forwards a tone to the feedback collaborator. A misbehaving
// collaborator must never take the simulation down with it.
func (s *Session) cue(c Cue) {
	if s.Feedback == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	s.Feedback.Play(c.Tone())
}

// Event is a notable state transition raised during Advance for drivers to
// log or react to.
type Event int

const (
	EventLevelAdvanced Event = iota
	EventBossDefeated
	EventShieldUsed
	EventLifeLost
	EventGameOver
	EventNewHighScore
)

// String returns the name of the event.
func (e Event) String() string {
	switch e {
	case EventLevelAdvanced:
		return "level_advanced"
	case EventBossDefeated:
		return "boss_defeated"
	case EventShieldUsed:
		return "shield_used"
	case EventLifeLost:
		return "life_lost"
	case EventGameOver:
		return "game_over"
	case EventNewHighScore:
		return "new_high_score"
	default:
		return "unknown"
	}
}
