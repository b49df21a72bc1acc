package brickstorm

import (
	"math"

	"github.com/vovakirdan/brickstorm/internal/core"
)

// Physics and scoring tuning.
const (
	paddleMaxAngle   = math.Pi / 3 // 60 degrees from vertical
	paddleSpeedBump  = 1.01
	paddleLift       = 0.5
	bossBandAbove    = 40 // Vertical tolerance above the boss body
	powerUpCatchPad  = 6
	powerUpExitY     = core.PlayfieldH + 30
	laserSpeed       = -520
	laserCooldown    = 220 // ms
	laserLeftAt      = 0.22
	laserRightAt     = 0.78
	laserExitY       = -10
	laserBrickDamage = 2
	laserBossDamage  = 3
	particleGravity  = 160
	bossMargin       = 30
	bossBulletVY     = 120
	bossBulletLife   = 2 // seconds
	bossBulletInset  = 40
	bossShotBase     = 1400 // ms
	bossShotCut      = 900  // Largest level reduction of the shot interval
	bossShotPerLevel = 15

	brickKillDropChance = 0.06
	laserKillDropChance = 0.08

	scoreBrickKill    = 100
	scoreSturdyBonus  = 40
	scoreBrickHit     = 30
	scoreLaserKill    = 120
	scoreBossHit      = 200
	scoreBossDefeated = 2000
)

// Advance runs one frame: it clamps the delta, advances the session clock
// and steps the simulation when running and not paused. Events raised during
// the frame are left in s.Events and returned.
func (s *Session) Advance(frameDt float64, in Input) []Event {
	s.Events = nil

	dt := frameDt
	if !(dt > 0) {
		dt = 0
	}
	dt = math.Min(dt, MaxFrameDelta)

	if !s.Running || s.Paused {
		return s.Events
	}
	s.Time += dt * 1000
	s.Step(dt, in)
	return s.Events
}

// Step advances the simulation by dt seconds. Phases run in a fixed order;
// defeating the boss or ending the game returns early.
func (s *Session) Step(dt float64, in Input) {
	s.updatePaddle(dt, in)
	if s.updateBalls(dt) {
		return
	}
	if s.resolveBallLoss() {
		return
	}
	s.updatePowerUps(dt)
	if s.updateLasers(dt) {
		return
	}
	s.ageParticles(dt)
	s.updateBoss(dt)
	if s.updateBullets(dt) {
		return
	}
	if s.AliveBricks() == 0 && s.Boss == nil {
		s.AdvanceLevel()
	}
}

func (s *Session) updatePaddle(dt float64, in Input) {
	p := &s.Paddle

	if p.ExpandUntil > 0 && s.Time >= p.ExpandUntil {
		p.W = s.Settings.PaddleWidth
		p.ExpandUntil = 0
	}

	if in.HasPointer {
		p.X = in.PointerX - p.W/2
	}
	if in.Left {
		p.X -= p.Speed * dt
	}
	if in.Right {
		p.X += p.Speed * dt
	}
	p.X = core.ClampF(p.X, 0, core.PlayfieldW-p.W)

	if p.LaserCooldown > 0 && s.Time > p.LaserCooldown {
		p.LaserCooldown = 0
	}

	if in.Fire {
		s.fireLasers()
	}
}

// fireLasers spawns a pair of beams when laser mode is on and the cooldown
// has elapsed.
func (s *Session) fireLasers() {
	p := &s.Paddle
	if !p.LaserActive(s.Time) || p.LaserCooldown > s.Time {
		return
	}
	s.Lasers = append(s.Lasers,
		&Laser{X: p.X + p.W*laserLeftAt, Y: p.Y - 6, VY: laserSpeed},
		&Laser{X: p.X + p.W*laserRightAt, Y: p.Y - 6, VY: laserSpeed},
	)
	p.LaserCooldown = s.Time + laserCooldown
	s.cue(CueLaser)
}

// updateBalls moves every ball and resolves its collisions.
// Returns true when the boss was defeated and the step must end.
func (s *Session) updateBalls(dt float64) bool {
	for i := len(s.Balls) - 1; i >= 0; i-- {
		b := s.Balls[i]
		v := b.EffectiveSpeed(s.Time)
		b.X += b.DX * v * dt
		b.Y += b.DY * v * dt

		s.bounceWalls(b)

		if core.CircleIntersectsRect(b.Circle(), s.Paddle.Rect()) {
			s.bouncePaddle(b)
		}

		s.hitFirstBrick(b)

		if s.Boss != nil {
			inBand := s.ballInBossBand(b)
			entered := inBand && !b.InBossBand
			b.InBossBand = inBand
			if entered && s.hitBossWithBall(b) {
				return true
			}
		} else {
			b.InBossBand = false
		}

		if b.Y-b.R > core.PlayfieldH {
			s.Balls = append(s.Balls[:i], s.Balls[i+1:]...)
		}
	}
	return false
}

// bounceWalls reflects off the side and top walls, keeping the ball inside.
func (s *Session) bounceWalls(b *Ball) {
	if b.X-b.R <= 0 {
		b.X = b.R
		b.DX = math.Abs(b.DX)
		s.cue(CueWall)
	}
	if b.X+b.R >= core.PlayfieldW {
		b.X = core.PlayfieldW - b.R
		b.DX = -math.Abs(b.DX)
		s.cue(CueWall)
	}
	if b.Y-b.R <= 0 {
		b.Y = b.R
		b.DY = math.Abs(b.DY)
		s.cue(CueWall)
	}
}

// bouncePaddle sends the ball up at an angle set by where it struck.
func (s *Session) bouncePaddle(b *Ball) {
	p := &s.Paddle
	rel := core.ClampF((b.X-(p.X+p.W/2))/(p.W/2), -1, 1)
	angle := rel * paddleMaxAngle
	b.DX = math.Sin(angle)
	b.DY = -math.Cos(angle)
	b.Speed *= paddleSpeedBump
	b.Y = p.Y - b.R - paddleLift
	s.cue(CuePaddle)
}

// hitFirstBrick damages the first overlapping live brick in storage order.
func (s *Session) hitFirstBrick(b *Ball) {
	c := b.Circle()
	for _, br := range s.Bricks {
		if !br.Alive {
			continue
		}
		r := br.Rect()
		if !core.CircleIntersectsRect(c, r) {
			continue
		}

		nx, ny := r.NearestPoint(b.X, b.Y)
		if math.Abs(b.X-nx) > math.Abs(b.Y-ny) {
			b.DX = -b.DX
		} else {
			b.DY = -b.DY
		}

		br.Hits--
		s.SpawnParticles(b.X, b.Y, core.ColorBrightYellow, brickHitParticles)
		if br.Hits <= 0 {
			br.Hits = 0
			br.Alive = false
			s.Score += scoreBrickKill
			switch {
			case br.Type == BrickPower || s.Rand.Float64() < brickKillDropChance:
				s.SpawnPowerUp(br.X+br.W/2, br.Y+br.H/2)
			case br.Type == BrickSturdy:
				s.Score += scoreSturdyBonus
			}
		} else {
			s.Score += scoreBrickHit
		}
		s.cue(CueBrick)
		return
	}
}

func (s *Session) ballInBossBand(b *Ball) bool {
	bs := s.Boss
	return b.Y < bs.Y+bs.H && b.Y > bs.Y-bossBandAbove &&
		b.X > bs.X && b.X < bs.X+bs.W
}

// hitBossWithBall damages the boss and reverses the ball's vertical travel
// in place. The caller only invokes it when the ball enters the hit band,
// so one pass counts once. Returns true when the boss died.
func (s *Session) hitBossWithBall(b *Ball) bool {
	bs := s.Boss
	bs.HP--
	if b.DY < 0 {
		b.DY = math.Abs(b.DY)
	} else {
		b.DY = -math.Abs(b.DY)
	}
	s.SpawnParticles(b.X, b.Y, core.ColorBrightRed, bossHitParticles)
	s.Score += scoreBossHit
	s.cue(CueBoss)
	return s.checkBossDefeated()
}

// checkBossDefeated clears a dead boss and moves to the next level.
func (s *Session) checkBossDefeated() bool {
	if s.Boss == nil || s.Boss.HP > 0 {
		return false
	}
	s.Boss = nil
	s.Score += scoreBossDefeated
	s.emit(EventBossDefeated)
	s.AdvanceLevel()
	return true
}

// resolveBallLoss replaces the last lost ball, spending a shield before a
// life. Returns true when the game ended.
func (s *Session) resolveBallLoss() bool {
	if len(s.Balls) > 0 {
		return false
	}
	if s.Shields > 0 {
		s.absorbHit()
		s.spawnServeBall()
		s.cue(CueShield)
		return false
	}
	s.cue(CueLifeLost)
	if s.absorbHit() {
		return true
	}
	s.spawnServeBall()
	return false
}

func (s *Session) updatePowerUps(dt float64) {
	p := &s.Paddle
	for i := len(s.PowerUps) - 1; i >= 0; i-- {
		pu := s.PowerUps[i]
		pu.Y += pu.VY * dt
		if pu.Y > powerUpExitY {
			s.PowerUps = append(s.PowerUps[:i], s.PowerUps[i+1:]...)
			continue
		}
		if pu.X > p.X && pu.X < p.X+p.W &&
			pu.Y > p.Y-powerUpCatchPad && pu.Y < p.Y+p.H+powerUpCatchPad {
			s.PowerUps = append(s.PowerUps[:i], s.PowerUps[i+1:]...)
			s.ApplyPowerUp(pu.Type)
		}
	}
}

// updateLasers moves beams and resolves their hits.
// Returns true when the boss was defeated and the step must end.
func (s *Session) updateLasers(dt float64) bool {
	for i := len(s.Lasers) - 1; i >= 0; i-- {
		l := s.Lasers[i]
		l.Y += l.VY * dt

		if s.laserHitBrick(l) {
			s.Lasers = append(s.Lasers[:i], s.Lasers[i+1:]...)
			continue
		}

		if s.Boss != nil {
			bs := s.Boss
			if l.Y > bs.Y && l.Y < bs.Y+bs.H && l.X > bs.X && l.X < bs.X+bs.W {
				bs.HP -= laserBossDamage
				s.SpawnParticles(l.X, l.Y, core.ColorRed, laserBossParticles)
				s.Lasers = append(s.Lasers[:i], s.Lasers[i+1:]...)
				s.cue(CueBoss)
				if s.checkBossDefeated() {
					return true
				}
				continue
			}
		}

		if l.Y < laserExitY {
			s.Lasers = append(s.Lasers[:i], s.Lasers[i+1:]...)
		}
	}
	return false
}

// laserHitBrick damages the first live brick containing the beam tip.
func (s *Session) laserHitBrick(l *Laser) bool {
	for _, br := range s.Bricks {
		if !br.Alive || !br.Rect().ContainsPoint(l.X, l.Y) {
			continue
		}
		br.Hits = max(br.Hits-laserBrickDamage, 0)
		s.SpawnParticles(l.X, l.Y, core.ColorYellow, laserBrickParticles)
		if br.Hits == 0 {
			br.Alive = false
			s.Score += scoreLaserKill
			if br.Type == BrickPower || s.Rand.Float64() < laserKillDropChance {
				s.SpawnPowerUp(br.X+br.W/2, br.Y+br.H/2)
			}
		}
		s.cue(CueBrick)
		return true
	}
	return false
}

// ageParticles integrates every particle under gravity, bullets included,
// and drops those past their lifespan.
func (s *Session) ageParticles(dt float64) {
	for i := len(s.Particles) - 1; i >= 0; i-- {
		p := s.Particles[i]
		p.Age += dt
		p.VY += particleGravity * dt
		p.X += p.VX * dt
		p.Y += p.VY * dt
		if p.Age > p.Life {
			s.Particles = append(s.Particles[:i], s.Particles[i+1:]...)
		}
	}
}

func (s *Session) updateBoss(dt float64) {
	bs := s.Boss
	if bs == nil {
		return
	}

	bs.X += bs.Dir * bs.Speed * dt
	if bs.X < bossMargin {
		bs.X = bossMargin
		bs.Dir = -bs.Dir
	}
	if bs.X+bs.W > core.PlayfieldW-bossMargin {
		bs.X = core.PlayfieldW - bossMargin - bs.W
		bs.Dir = -bs.Dir
	}

	interval := float64(bossShotBase - min(bossShotCut, s.Level*bossShotPerLevel))
	if s.Time-bs.LastShot > interval {
		bs.LastShot = s.Time
		s.Particles = append(s.Particles, &Particle{
			X:      bs.X + randRange(s.Rand, bossBulletInset, bs.W-bossBulletInset),
			Y:      bs.Y + bs.H,
			VY:     bossBulletVY,
			Color:  core.ColorOrange,
			Life:   bossBulletLife,
			Bullet: true,
		})
	}
}

// updateBullets drives boss projectiles into the paddle.
// Returns true when a hit ended the game.
func (s *Session) updateBullets(dt float64) bool {
	p := &s.Paddle
	for i := len(s.Particles) - 1; i >= 0; i-- {
		b := s.Particles[i]
		if !b.Bullet {
			continue
		}
		b.Y += b.VY * dt
		if b.Y > core.PlayfieldH {
			s.Particles = append(s.Particles[:i], s.Particles[i+1:]...)
			continue
		}
		if b.Y > p.Y && b.X > p.X && b.X < p.X+p.W {
			s.Particles = append(s.Particles[:i], s.Particles[i+1:]...)
			s.cue(CueBulletHit)
			if s.absorbHit() {
				return true
			}
		}
	}
	return false
}
