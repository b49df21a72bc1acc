// Package brickstorm implements the brick breaker simulation: a single
// Session aggregate advanced once per frame, plus the registry adapter and
// terminal renderer that drive it.
package brickstorm

import (
	"github.com/vovakirdan/brickstorm/internal/core"
)

// HighScoreKey is the storage key for the best score.
const HighScoreKey = "adv_brick_highscore"

// MaxFrameDelta bounds a single step so long stalls do not tunnel balls.
const MaxFrameDelta = 1.0 / 30.0

// Fixed layout in logical units.
const (
	paddleH       = 14
	paddleBottom  = 70 // Distance from the paddle top to the playfield bottom
	ballRadius    = 8
	serveBallX    = core.PlayfieldW / 2
	serveBallY    = core.PlayfieldH - 100
	powerUpSize   = 18
	powerUpFallVY = 60
)

// BrickType tags a brick.
type BrickType int

const (
	BrickNormal BrickType = iota
	BrickSturdy
	BrickPower
)

// String returns the name of the brick type.
func (t BrickType) String() string {
	switch t {
	case BrickNormal:
		return "normal"
	case BrickSturdy:
		return "sturdy"
	case BrickPower:
		return "power"
	default:
		return "unknown"
	}
}

// Paddle is the player's bat. Timers are session times in ms; 0 is inactive.
type Paddle struct {
	X, Y, W, H    float64
	Speed         float64 // Units per second
	ExpandUntil   float64
	LaserUntil    float64
	LaserCooldown float64
}

// Rect returns the paddle bounds.
func (p *Paddle) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.W, p.H)
}

// LaserActive reports whether laser mode is on at time now.
func (p *Paddle) LaserActive(now float64) bool {
	return p.LaserUntil > now
}

// Ball is one ball in play. DX/DY carry the direction; Speed the magnitude.
type Ball struct {
	X, Y, R   float64
	DX, DY    float64
	Speed     float64
	SlowUntil float64

	// InBossBand is set while the ball overlaps the boss hit band.
	InBossBand bool
}

// Circle returns the ball as a collision circle.
func (b *Ball) Circle() core.Circle {
	return core.Circle{X: b.X, Y: b.Y, R: b.R}
}

// EffectiveSpeed returns the speed at time now, honoring the slow effect.
func (b *Ball) EffectiveSpeed(now float64) float64 {
	if b.SlowUntil > 0 && now < b.SlowUntil {
		return b.Speed * slowFactor
	}
	return b.Speed
}

// Brick is a destructible block. Dead bricks stay in the slice until the
// next layout but take no further part in play.
type Brick struct {
	X, Y, W, H float64
	Alive      bool
	Hits       int
	Type       BrickType
}

// Rect returns the brick bounds.
func (b *Brick) Rect() core.RectF {
	return core.NewRectF(b.X, b.Y, b.W, b.H)
}

// PowerUp is a falling pickup centered on (X, Y).
type PowerUp struct {
	X, Y, W, H float64
	Type       PowerUpType
	VY         float64
}

// Laser is a paddle shot travelling upward.
type Laser struct {
	X, Y, VY float64
}

// Particle is cosmetic debris, or a boss projectile when Bullet is set.
// Age and Life are seconds.
type Particle struct {
	X, Y, VX, VY float64
	Color        core.Color
	Age, Life    float64
	Bullet       bool
}

// Boss patrols the top of boss levels and fires bullets.
type Boss struct {
	X, Y, W, H float64
	HP, MaxHP  int
	Dir        float64 // +1 right, -1 left
	Speed      float64
	LastShot   float64
}

// Rect returns the boss bounds.
func (b *Boss) Rect() core.RectF {
	return core.NewRectF(b.X, b.Y, b.W, b.H)
}

// Input is the per-step player intent.
type Input struct {
	Left, Right, Fire bool
	PointerX          float64 // Logical units, valid when HasPointer
	HasPointer        bool
}

// InputFromFrame converts a platform input frame.
func InputFromFrame(f core.InputFrame) Input {
	return Input{
		Left:       f.Has(core.ActionLeft),
		Right:      f.Has(core.ActionRight),
		Fire:       f.Has(core.ActionFire),
		PointerX:   f.PointerX,
		HasPointer: f.HasPointer,
	}
}

// Settings holds the tunables a session is built from.
type Settings struct {
	Lives          int
	MaxLives       int
	MaxShields     int
	BossEvery      int
	StartLevel     int
	PaddleWidth    float64
	PaddleMaxWidth float64
	PaddleSpeed    float64
	BallBaseSpeed  float64
	BallLevelStep  float64
}

// DefaultSettings returns the classic tuning.
func DefaultSettings() Settings {
	return Settings{
		Lives:          3,
		MaxLives:       5,
		MaxShields:     3,
		BossEvery:      6,
		StartLevel:     1,
		PaddleWidth:    140,
		PaddleMaxWidth: 260,
		PaddleSpeed:    640,
		BallBaseSpeed:  220,
		BallLevelStep:  20,
	}
}

// normalized replaces unusable values with defaults.
func (s Settings) normalized() Settings {
	d := DefaultSettings()
	if s.Lives <= 0 {
		s.Lives = d.Lives
	}
	if s.MaxLives < s.Lives {
		s.MaxLives = max(d.MaxLives, s.Lives)
	}
	if s.MaxShields < 0 {
		s.MaxShields = 0
	}
	if s.BossEvery <= 0 {
		s.BossEvery = d.BossEvery
	}
	if s.StartLevel < 1 {
		s.StartLevel = 1
	}
	if s.PaddleWidth <= 0 {
		s.PaddleWidth = d.PaddleWidth
	}
	if s.PaddleMaxWidth < s.PaddleWidth {
		s.PaddleMaxWidth = s.PaddleWidth
	}
	if s.PaddleSpeed <= 0 {
		s.PaddleSpeed = d.PaddleSpeed
	}
	if s.BallBaseSpeed <= 0 {
		s.BallBaseSpeed = d.BallBaseSpeed
	}
	if s.BallLevelStep < 0 {
		s.BallLevelStep = 0
	}
	return s
}

// Session is the complete mutable state of one game attempt. It is not safe
// for concurrent use; a driver owns it and calls Advance once per frame.
type Session struct {
	Running  bool
	Paused   bool
	GameOver bool

	Score     int
	HighScore int
	Lives     int
	Shields   int
	Level     int
	Time      float64 // Elapsed simulation ms

	Paddle    Paddle
	Balls     []*Ball
	Bricks    []*Brick
	PowerUps  []*PowerUp
	Lasers    []*Laser
	Particles []*Particle
	Boss      *Boss

	// Events raised by the most recent Advance.
	Events []Event

	Settings   Settings
	Rand       Rand
	Feedback   core.Feedback
	HighScores core.HighScoreStore
}

// Option configures a new session.
type Option func(*Session)

// WithSettings sets the tuning.
func WithSettings(st Settings) Option {
	return func(s *Session) { s.Settings = st }
}

// WithRand sets the random source.
func WithRand(r Rand) Option {
	return func(s *Session) { s.Rand = r }
}

// WithFeedback sets the tone collaborator.
func WithFeedback(f core.Feedback) Option {
	return func(s *Session) { s.Feedback = f }
}

// WithHighScores sets the high-score collaborator.
func WithHighScores(h core.HighScoreStore) Option {
	return func(s *Session) { s.HighScores = h }
}

// NewSession builds a session at its start level with one serve ball.
// The session does not simulate until Start is called.
func NewSession(opts ...Option) *Session {
	s := &Session{
		Settings: DefaultSettings(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Settings = s.Settings.normalized()
	if s.Rand == nil {
		s.Rand = NewSimpleRNG(1)
	}
	if s.Feedback == nil {
		s.Feedback = core.NopFeedback{}
	}

	s.Lives = s.Settings.Lives
	s.Level = s.Settings.StartLevel
	s.Paddle = Paddle{
		X:     (core.PlayfieldW - s.Settings.PaddleWidth) / 2,
		Y:     core.PlayfieldH - paddleBottom,
		W:     s.Settings.PaddleWidth,
		H:     paddleH,
		Speed: s.Settings.PaddleSpeed,
	}

	if s.HighScores != nil {
		if hs, err := s.HighScores.HighScore(HighScoreKey); err == nil {
			s.HighScore = hs
		}
	}

	s.GenerateLevel()
	s.spawnServeBall()
	return s
}

// Start moves a fresh session into the running state.
func (s *Session) Start() {
	if s.GameOver {
		return
	}
	s.Running = true
	s.Paused = false
}

// TogglePause flips between running and paused. It has no effect on a
// session that is not running.
func (s *Session) TogglePause() {
	if !s.Running {
		return
	}
	s.Paused = !s.Paused
}

// IsBossLevel reports whether the current level spawns a boss.
func (s *Session) IsBossLevel() bool {
	return s.Level%s.Settings.BossEvery == 0
}

// AliveBricks counts bricks still in play.
func (s *Session) AliveBricks() int {
	n := 0
	for _, b := range s.Bricks {
		if b.Alive {
			n++
		}
	}
	return n
}

// Bullets counts boss projectiles in flight.
func (s *Session) Bullets() int {
	n := 0
	for _, p := range s.Particles {
		if p.Bullet {
			n++
		}
	}
	return n
}

func (s *Session) emit(e Event) {
	s.Events = append(s.Events, e)
}

// absorbHit consumes a shield, or a life when none is left.
// Returns true when the hit ended the game.
func (s *Session) absorbHit() bool {
	if s.Shields > 0 {
		s.Shields--
		s.emit(EventShieldUsed)
		return false
	}
	s.Lives = max(s.Lives-1, 0)
	s.emit(EventLifeLost)
	if s.Lives == 0 {
		s.endGame()
		return true
	}
	return false
}

// endGame stops the session and records a new best score.
func (s *Session) endGame() {
	s.Running = false
	s.Paused = false
	s.GameOver = true
	s.emit(EventGameOver)

	if s.Score <= s.HighScore {
		return
	}
	s.HighScore = s.Score
	s.emit(EventNewHighScore)
	if s.HighScores != nil {
		_ = s.HighScores.SetHighScore(HighScoreKey, s.Score)
	}
}
