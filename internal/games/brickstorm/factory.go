package brickstorm

import (
	"math"

	"github.com/vovakirdan/brickstorm/internal/core"
)

// Normal level layout.
const (
	brickH       = 20
	brickGap     = 8
	brickMarginX = 40
	brickTopY    = 90
)

// Boss level layout.
const (
	bossW        = 280
	bossH        = 60
	bossY        = 80
	bossRows     = 3
	bossCols     = 10
	bossBrickW   = 72
	bossBrickH   = 22
	bossBrickX   = 50
	bossBrickY   = 180
	bossBrickGap = 6
)

// Roll thresholds.
const (
	powerBrickChance     = 0.08
	sturdyBrickChance    = 0.15 // Cumulative with powerBrickChance
	bossPowerBrickChance = 0.12
)

// Particle counts per impact.
const (
	defaultParticles    = 14
	brickHitParticles   = 8
	bossHitParticles    = 12
	laserBrickParticles = 6
	laserBossParticles  = 8
)

type ballOptions struct {
	dx, dy   float64
	hasDir   bool
	speed    float64
	hasSpeed bool
}

// BallOption customizes AddBall.
type BallOption func(*ballOptions)

// WithDirection sets the direction components instead of a random launch.
func WithDirection(dx, dy float64) BallOption {
	return func(o *ballOptions) {
		o.dx, o.dy, o.hasDir = dx, dy, true
	}
}

// WithSpeed sets the speed instead of the level default.
func WithSpeed(v float64) BallOption {
	return func(o *ballOptions) {
		o.speed, o.hasSpeed = v, true
	}
}

// BaseBallSpeed returns the default ball speed for the current level.
func (s *Session) BaseBallSpeed() float64 {
	return s.Settings.BallBaseSpeed + float64(s.Level-1)*s.Settings.BallLevelStep
}

// AddBall appends a ball at (x, y). Without options it launches upward at a
// random angle with the level's base speed.
func (s *Session) AddBall(x, y float64, opts ...BallOption) *Ball {
	var o ballOptions
	for _, opt := range opts {
		opt(&o)
	}
	if !o.hasSpeed {
		o.speed = s.BaseBallSpeed()
	}
	if !o.hasDir {
		o.dx = randRange(s.Rand, -0.7, 0.7)
		o.dy = -math.Abs(randRange(s.Rand, 0.35, 0.8))
	}

	b := &Ball{X: x, Y: y, R: ballRadius, DX: o.dx, DY: o.dy, Speed: o.speed}
	s.Balls = append(s.Balls, b)
	return b
}

// spawnServeBall adds the ball that starts every level and replaces lost ones.
func (s *Session) spawnServeBall() *Ball {
	return s.AddBall(serveBallX, serveBallY, WithDirection(randRange(s.Rand, -0.5, 0.5), -0.7))
}

// GenerateLevel clears all transient entities and lays out bricks for the
// current level, plus a boss on boss levels.
func (s *Session) GenerateLevel() {
	s.Bricks = nil
	s.PowerUps = nil
	s.Lasers = nil
	s.Particles = nil
	s.Boss = nil

	if s.IsBossLevel() {
		s.generateBossLevel()
		return
	}

	level := s.Level
	rows := core.Clamp(4+(level-1)/2, 4, 9)
	cols := core.Clamp(7+(level-1)/3, 7, 12)
	w := math.Floor(float64(core.PlayfieldW-2*brickMarginX-(cols-1)*brickGap) / float64(cols))

	s.Bricks = make([]*Brick, 0, rows*cols)
	for r := range rows {
		for c := range cols {
			hits := 1 + r/2 + (level-1)/5

			var typ BrickType
			switch roll := s.Rand.Float64(); {
			case roll < powerBrickChance:
				typ = BrickPower
			case roll < sturdyBrickChance:
				typ = BrickSturdy
				hits++
			default:
				typ = BrickNormal
			}

			s.Bricks = append(s.Bricks, &Brick{
				X:     brickMarginX + float64(c)*(w+brickGap),
				Y:     brickTopY + float64(r)*(brickH+brickGap),
				W:     w,
				H:     brickH,
				Alive: true,
				Hits:  hits,
				Type:  typ,
			})
		}
	}
}

func (s *Session) generateBossLevel() {
	hp := 30 + s.Level*5
	s.Boss = &Boss{
		X:     core.PlayfieldW/2 - bossW/2,
		Y:     bossY,
		W:     bossW,
		H:     bossH,
		HP:    hp,
		MaxHP: hp,
		Dir:   1,
		Speed: float64(60 + s.Level*6),
	}

	s.Bricks = make([]*Brick, 0, bossRows*bossCols)
	for r := range bossRows {
		for c := range bossCols {
			typ := BrickNormal
			if s.Rand.Float64() < bossPowerBrickChance {
				typ = BrickPower
			}
			s.Bricks = append(s.Bricks, &Brick{
				X:     float64(bossBrickX + c*(bossBrickW+bossBrickGap)),
				Y:     float64(bossBrickY + r*(bossBrickH+bossBrickGap)),
				W:     bossBrickW,
				H:     bossBrickH,
				Alive: true,
				Hits:  1,
				Type:  typ,
			})
		}
	}
}

// SpawnPowerUp drops a pickup of uniformly random type centered on (x, y).
func (s *Session) SpawnPowerUp(x, y float64) *PowerUp {
	idx := int(s.Rand.Float64() * float64(powerUpTypeCount))
	if idx >= powerUpTypeCount {
		idx = powerUpTypeCount - 1
	}
	p := &PowerUp{
		X:    x,
		Y:    y,
		W:    powerUpSize,
		H:    powerUpSize,
		Type: PowerUpType(idx),
		VY:   powerUpFallVY,
	}
	s.PowerUps = append(s.PowerUps, p)
	return p
}

// SpawnParticles bursts count debris particles from (x, y).
// A non-positive count uses the default burst size.
func (s *Session) SpawnParticles(x, y float64, color core.Color, count int) {
	if count <= 0 {
		count = defaultParticles
	}
	for range count {
		s.Particles = append(s.Particles, &Particle{
			X:     x,
			Y:     y,
			VX:    randRange(s.Rand, -200, 200),
			VY:    randRange(s.Rand, -120, 80),
			Color: color,
			Life:  randRange(s.Rand, 0.4, 1.1),
		})
	}
}
