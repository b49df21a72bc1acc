package brickstorm

import (
	"math"

	"github.com/vovakirdan/brickstorm/internal/core"
)

// PowerUpType represents the effect a pickup grants.
type PowerUpType int

const (
	PowerUpExpand    PowerUpType = iota // Wider paddle for a while
	PowerUpMultiball                    // Clone up to two balls
	PowerUpSlow                         // Slow every ball for a while
	PowerUpLaser                        // Paddle fires lasers for a while
	PowerUpShield                       // One extra absorb
)

// powerUpTypeCount is the size of the uniform draw in SpawnPowerUp.
const powerUpTypeCount = 5

// Effect tuning. Durations are ms.
const (
	expandFactor      = 1.5
	expandDuration    = 12000
	slowFactor        = 0.55
	slowDuration      = 9000
	laserDuration     = 12000
	multiballCloneCap = 2
)

// Glyph returns the display character for a power-up type.
func (p PowerUpType) Glyph() rune {
	switch p {
	case PowerUpExpand:
		return 'E'
	case PowerUpMultiball:
		return 'M'
	case PowerUpSlow:
		return 'S'
	case PowerUpLaser:
		return 'L'
	case PowerUpShield:
		return '♦'
	default:
		return '?'
	}
}

// String returns the name of the power-up type.
func (p PowerUpType) String() string {
	switch p {
	case PowerUpExpand:
		return "expand"
	case PowerUpMultiball:
		return "multiball"
	case PowerUpSlow:
		return "slow"
	case PowerUpLaser:
		return "laser"
	case PowerUpShield:
		return "shield"
	default:
		return "unknown"
	}
}

// ApplyPowerUp applies the effect of a caught pickup.
func (s *Session) ApplyPowerUp(t PowerUpType) {
	s.cue(CuePowerUp)

	p := &s.Paddle
	switch t {
	case PowerUpExpand:
		p.W = math.Min(s.Settings.PaddleMaxWidth, p.W*expandFactor)
		p.X = core.ClampF(p.X, 0, core.PlayfieldW-p.W)
		p.ExpandUntil = s.Time + expandDuration

	case PowerUpMultiball:
		n := min(multiballCloneCap, len(s.Balls))
		sources := make([]Ball, n)
		for i := range n {
			sources[i] = *s.Balls[i]
		}
		for _, b := range sources {
			dx := randRange(s.Rand, -0.8, 0.8)
			dy := -math.Abs(randRange(s.Rand, 0.4, 0.9))
			s.AddBall(b.X, b.Y, WithDirection(dx, dy), WithSpeed(b.Speed))
		}

	case PowerUpSlow:
		for _, b := range s.Balls {
			b.SlowUntil = s.Time + slowDuration
		}

	case PowerUpLaser:
		p.LaserUntil = s.Time + laserDuration
		p.LaserCooldown = 0

	case PowerUpShield:
		s.Shields = min(s.Settings.MaxShields, s.Shields+1)
	}
}
