package brickstorm

import (
	"math"
	"slices"
	"testing"

	"github.com/vovakirdan/brickstorm/internal/core"
)

const frame = 1.0 / 60.0

func TestAdvanceClock(t *testing.T) {
	tests := []struct {
		name    string
		dt      float64
		start   bool
		paused  bool
		elapsed float64
	}{
		{"normal frame", frame, true, false, 1000.0 / 60.0},
		{"long stall clamped", 1.5, true, false, 1000.0 / 30.0},
		{"negative delta", -0.2, true, false, 0},
		{"NaN delta", math.NaN(), true, false, 0},
		{"paused", frame, true, true, 0},
		{"not started", frame, false, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(WithRand(fixedRand(0.5)))
			keepLevelOpen(s)
			if tt.start {
				s.Start()
			}
			if tt.paused {
				s.TogglePause()
			}

			s.Advance(tt.dt, Input{})
			if math.Abs(s.Time-tt.elapsed) > 1e-9 {
				t.Errorf("Time = %v, expected %v", s.Time, tt.elapsed)
			}
		})
	}
}

func TestVerticalTravel(t *testing.T) {
	s := newTestSession(t, fixedRand(0.5))
	keepLevelOpen(s)
	s.Balls = nil
	s.AddBall(450, 520, WithDirection(0, -0.7))

	// 220 * 0.7 = 154 units/s; 430 units takes just under 168 frames.
	for range 168 {
		s.Advance(frame, Input{})
	}

	if len(s.Balls) != 1 {
		t.Fatalf("balls = %d, expected 1", len(s.Balls))
	}
	b := s.Balls[0]
	if b.Y > 90 {
		t.Errorf("Y = %v, expected <= 90 after 430 units of travel", b.Y)
	}
	if b.X != 450 {
		t.Errorf("X drifted to %v", b.X)
	}
}

func TestBallBrickScoring(t *testing.T) {
	tests := []struct {
		name     string
		typ      BrickType
		hits     int
		roll     float64
		score    int
		powerUps int
		alive    bool
	}{
		{"normal kill", BrickNormal, 1, 0.5, 100, 0, false},
		{"normal kill lucky drop", BrickNormal, 1, 0.01, 100, 1, false},
		{"sturdy kill bonus", BrickSturdy, 1, 0.5, 140, 0, false},
		{"power kill always drops", BrickPower, 1, 0.5, 100, 1, false},
		{"survived hit", BrickNormal, 3, 0.5, 30, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, fixedRand(tt.roll))
			target := &Brick{X: 400, Y: 300, W: 100, H: 20, Alive: true, Hits: tt.hits, Type: tt.typ}
			keepLevelOpen(s)
			s.Bricks = append([]*Brick{target}, s.Bricks...)
			s.Balls = []*Ball{{X: 450, Y: 329, R: 8, DX: 0, DY: -1, Speed: 220}}

			s.Step(frame, Input{})

			if s.Score != tt.score {
				t.Errorf("score = %d, expected %d", s.Score, tt.score)
			}
			if target.Alive != tt.alive {
				t.Errorf("alive = %v, expected %v", target.Alive, tt.alive)
			}
			if target.Hits != tt.hits-1 {
				t.Errorf("hits = %d, expected %d", target.Hits, tt.hits-1)
			}
			if len(s.PowerUps) != tt.powerUps {
				t.Errorf("power-ups = %d, expected %d", len(s.PowerUps), tt.powerUps)
			}
			if s.Balls[0].DY <= 0 {
				t.Errorf("ball should bounce down off the brick bottom, DY = %v", s.Balls[0].DY)
			}
			if len(s.Particles) != 8 {
				t.Errorf("particles = %d, expected 8", len(s.Particles))
			}
		})
	}
}

func TestDeadBrickIgnored(t *testing.T) {
	s := newTestSession(t, fixedRand(0.5))
	dead := &Brick{X: 400, Y: 300, W: 100, H: 20, Alive: false, Hits: 0}
	live := &Brick{X: 400, Y: 300, W: 100, H: 20, Alive: true, Hits: 2}
	s.Bricks = []*Brick{dead, live}
	s.Balls = []*Ball{{X: 450, Y: 325, R: 8, DX: 0, DY: -1, Speed: 220}}

	s.Step(0, Input{})

	if dead.Hits != 0 || dead.Alive {
		t.Error("dead brick must not take damage")
	}
	if live.Hits != 1 {
		t.Errorf("live brick hits = %d, expected 1", live.Hits)
	}
}

func TestOnlyFirstOverlappingBrickIsHit(t *testing.T) {
	s := newTestSession(t, fixedRand(0.5))
	first := &Brick{X: 400, Y: 300, W: 100, H: 20, Alive: true, Hits: 2}
	second := &Brick{X: 440, Y: 310, W: 100, H: 20, Alive: true, Hits: 2}
	s.Bricks = []*Brick{first, second}
	s.Balls = []*Ball{{X: 450, Y: 325, R: 8, DX: 0, DY: -1, Speed: 220}}

	s.Step(0, Input{})

	if first.Hits != 1 {
		t.Errorf("first brick hits = %d, expected 1", first.Hits)
	}
	if second.Hits != 2 {
		t.Errorf("second brick hits = %d, expected untouched 2", second.Hits)
	}
	if s.Score != 30 {
		t.Errorf("score = %d, expected 30", s.Score)
	}
}

func TestDominantAxisFlip(t *testing.T) {
	s := newTestSession(t, fixedRand(0.5))
	keepLevelOpen(s)
	brick := &Brick{X: 400, Y: 300, W: 100, H: 20, Alive: true, Hits: 5}
	s.Bricks = append(s.Bricks, brick)

	// Approaching the left face: horizontal penetration dominates.
	s.Balls = []*Ball{{X: 394, Y: 310, R: 8, DX: 1, DY: -0.2, Speed: 220}}
	s.Step(0, Input{})
	if b := s.Balls[0]; b.DX != -1 || b.DY != -0.2 {
		t.Errorf("side hit should flip DX only, got DX=%v DY=%v", b.DX, b.DY)
	}
}

func TestWallReflections(t *testing.T) {
	tests := []struct {
		name   string
		ball   Ball
		wantX  float64
		wantY  float64
		wantDX float64
		wantDY float64
	}{
		{"left", Ball{X: 5, Y: 300, R: 8, DX: -1, DY: 0, Speed: 220}, 8, 300, 1, 0},
		{"right", Ball{X: 895, Y: 300, R: 8, DX: 1, DY: 0, Speed: 220}, 892, 300, -1, 0},
		{"top", Ball{X: 450, Y: 5, R: 8, DX: 0, DY: -1, Speed: 220}, 450, 8, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := &recordingFeedback{}
			s := newTestSession(t, fixedRand(0.5), WithFeedback(fb))
			keepLevelOpen(s)
			b := tt.ball
			s.Balls = []*Ball{&b}

			s.Step(frame, Input{})

			if b.X != tt.wantX || b.Y != tt.wantY {
				t.Errorf("position = (%v, %v), expected (%v, %v)", b.X, b.Y, tt.wantX, tt.wantY)
			}
			if b.DX != tt.wantDX || b.DY != tt.wantDY {
				t.Errorf("direction = (%v, %v), expected (%v, %v)", b.DX, b.DY, tt.wantDX, tt.wantDY)
			}
			if b.X < 0 || b.X > core.PlayfieldW || b.Y < 0 {
				t.Errorf("ball escaped the playfield at (%v, %v)", b.X, b.Y)
			}
			if !fb.played(CueWall) {
				t.Error("expected the wall cue")
			}
		})
	}
}

func TestPaddleBounce(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		wantDX float64
		wantDY float64
	}{
		{"center goes straight up", 450, 0, -1},
		{"right edge leans 60 degrees", 520, math.Sin(math.Pi / 3), -math.Cos(math.Pi / 3)},
		{"left edge leans 60 degrees", 380, -math.Sin(math.Pi / 3), -math.Cos(math.Pi / 3)},
		{"past the edge is clamped", 525, math.Sin(math.Pi / 3), -math.Cos(math.Pi / 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, fixedRand(0.5))
			keepLevelOpen(s)
			b := &Ball{X: tt.x, Y: 545, R: 8, DX: 0, DY: 1, Speed: 200}
			s.Balls = []*Ball{b}

			s.Step(0, Input{})

			if math.Abs(b.DX-tt.wantDX) > 1e-9 || math.Abs(b.DY-tt.wantDY) > 1e-9 {
				t.Errorf("direction = (%v, %v), expected (%v, %v)", b.DX, b.DY, tt.wantDX, tt.wantDY)
			}
			if math.Abs(b.Speed-202) > 1e-9 {
				t.Errorf("speed = %v, expected 202", b.Speed)
			}
			if b.Y != 541.5 {
				t.Errorf("Y = %v, expected 541.5 above the paddle", b.Y)
			}
		})
	}
}

func TestPaddleStaysInPlayfield(t *testing.T) {
	tests := []struct {
		name  string
		in    Input
		wantX float64
	}{
		{"hold left", Input{Left: true}, 0},
		{"hold right", Input{Right: true}, 760},
		{"pointer far left", Input{HasPointer: true, PointerX: -500}, 0},
		{"pointer far right", Input{HasPointer: true, PointerX: 5000}, 760},
		{"pointer centers paddle", Input{HasPointer: true, PointerX: 300}, 230},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, fixedRand(0.5))
			for range 120 {
				s.Advance(frame, tt.in)
				if s.Paddle.X < 0 || s.Paddle.X > core.PlayfieldW-s.Paddle.W {
					t.Fatalf("paddle out of bounds at %v", s.Paddle.X)
				}
				if s.GameOver {
					break
				}
			}
			if s.Paddle.X != tt.wantX {
				t.Errorf("X = %v, expected %v", s.Paddle.X, tt.wantX)
			}
		})
	}
}

func TestBallLossSpendsShieldBeforeLife(t *testing.T) {
	fb := &recordingFeedback{}
	s := newTestSession(t, fixedRand(0.5), WithFeedback(fb))
	keepLevelOpen(s)
	s.Shields = 1

	s.Balls[0].Y = 700
	events := s.Advance(frame, Input{})
	if s.Shields != 0 || s.Lives != 3 {
		t.Errorf("shields=%d lives=%d, expected the shield spent first", s.Shields, s.Lives)
	}
	if !slices.Equal(events, []Event{EventShieldUsed}) {
		t.Errorf("events = %v", events)
	}
	if len(s.Balls) != 1 || s.Balls[0].Y != 520 {
		t.Error("a fresh serve ball should replace the lost one")
	}
	if !fb.played(CueShield) {
		t.Error("expected the shield cue")
	}

	s.Balls[0].Y = 700
	events = s.Advance(frame, Input{})
	if s.Shields != 0 || s.Lives != 2 {
		t.Errorf("shields=%d lives=%d, expected a life lost", s.Shields, s.Lives)
	}
	if !slices.Equal(events, []Event{EventLifeLost}) {
		t.Errorf("events = %v", events)
	}
	if len(s.Balls) != 1 {
		t.Errorf("balls = %d, expected a fresh serve ball", len(s.Balls))
	}
}

func TestGameOverHighScore(t *testing.T) {
	tests := []struct {
		name      string
		stored    int
		score     int
		wantStore int
		newBest   bool
	}{
		{"beats the record", 50, 120, 120, true},
		{"falls short", 500, 120, 500, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			store.scores[HighScoreKey] = tt.stored
			s := newTestSession(t, fixedRand(0.5), WithHighScores(store))
			keepLevelOpen(s)
			s.Lives = 1
			s.Score = tt.score

			s.Balls[0].Y = 700
			events := s.Advance(frame, Input{})

			if !s.GameOver || s.Running || s.Lives != 0 {
				t.Fatalf("expected game over, got running=%v lives=%d", s.Running, s.Lives)
			}
			if len(s.Balls) != 0 {
				t.Errorf("no ball should be served after the last life")
			}
			if got := slices.Contains(events, EventNewHighScore); got != tt.newBest {
				t.Errorf("new high score event = %v, expected %v", got, tt.newBest)
			}
			if !slices.Contains(events, EventGameOver) {
				t.Error("expected the game over event")
			}
			if store.scores[HighScoreKey] != tt.wantStore {
				t.Errorf("stored = %d, expected %d", store.scores[HighScoreKey], tt.wantStore)
			}

			before := s.Time
			s.Advance(frame, Input{})
			if s.Time != before {
				t.Error("a finished session must not advance")
			}
		})
	}
}

func TestBossBullets(t *testing.T) {
	bullet := func(x, y, vy float64) *Particle {
		return &Particle{X: x, Y: y, VY: vy, Life: 2, Bullet: true, Color: core.ColorOrange}
	}

	t.Run("shield absorbs", func(t *testing.T) {
		s := newTestSession(t, fixedRand(0.5))
		keepLevelOpen(s)
		s.Shields = 2
		s.Particles = []*Particle{bullet(450, 555, 0)}

		events := s.Advance(frame, Input{})
		if s.Shields != 1 || s.Lives != 3 {
			t.Errorf("shields=%d lives=%d", s.Shields, s.Lives)
		}
		if s.Bullets() != 0 {
			t.Error("bullet should be consumed")
		}
		if !slices.Equal(events, []Event{EventShieldUsed}) {
			t.Errorf("events = %v", events)
		}
	})

	t.Run("costs a life", func(t *testing.T) {
		s := newTestSession(t, fixedRand(0.5))
		keepLevelOpen(s)
		s.Particles = []*Particle{bullet(450, 555, 0)}

		s.Advance(frame, Input{})
		if s.Lives != 2 {
			t.Errorf("lives = %d, expected 2", s.Lives)
		}
	})

	t.Run("last life ends the game", func(t *testing.T) {
		s := newTestSession(t, fixedRand(0.5))
		keepLevelOpen(s)
		s.Lives = 1
		s.Particles = []*Particle{bullet(450, 555, 0)}

		s.Advance(frame, Input{})
		if !s.GameOver || s.Lives != 0 {
			t.Errorf("expected game over, lives = %d", s.Lives)
		}
	})

	t.Run("missed bullet leaves the field", func(t *testing.T) {
		s := newTestSession(t, fixedRand(0.5))
		keepLevelOpen(s)
		s.Particles = []*Particle{bullet(450, 619, 200)}

		s.Advance(frame, Input{})
		if s.Lives != 3 || s.Bullets() != 0 {
			t.Errorf("lives=%d bullets=%d, expected a harmless exit", s.Lives, s.Bullets())
		}
	})

	t.Run("outside the paddle span", func(t *testing.T) {
		s := newTestSession(t, fixedRand(0.5))
		keepLevelOpen(s)
		s.Particles = []*Particle{bullet(100, 555, 0)}

		s.Advance(frame, Input{})
		if s.Lives != 3 || s.Bullets() != 1 {
			t.Errorf("lives=%d bullets=%d, expected a miss", s.Lives, s.Bullets())
		}
	})
}

func TestExpandCaughtAtRightWall(t *testing.T) {
	s := newTestSession(t, fixedRand(0.5))
	keepLevelOpen(s)
	s.Paddle.X = 760
	s.PowerUps = []*PowerUp{{X: 880, Y: 548, W: 18, H: 18, Type: PowerUpExpand, VY: 60}}

	s.Advance(frame, Input{})

	if len(s.PowerUps) != 0 || s.Paddle.W != 210 {
		t.Fatalf("powerups=%d width=%v, expected the expand caught", len(s.PowerUps), s.Paddle.W)
	}
	if s.Paddle.X < 0 || s.Paddle.X+s.Paddle.W > core.PlayfieldW {
		t.Errorf("paddle spans %v..%v, outside the playfield", s.Paddle.X, s.Paddle.X+s.Paddle.W)
	}
}

func TestPowerUpCatch(t *testing.T) {
	tests := []struct {
		name   string
		pu     PowerUp
		caught bool
		kept   bool
	}{
		{"on the paddle", PowerUp{X: 450, Y: 548, W: 18, H: 18, Type: PowerUpShield, VY: 60}, true, false},
		{"beside the paddle", PowerUp{X: 200, Y: 548, W: 18, H: 18, Type: PowerUpShield, VY: 60}, false, true},
		{"on the paddle edge", PowerUp{X: 380, Y: 548, W: 18, H: 18, Type: PowerUpShield, VY: 60}, false, true},
		{"past the bottom", PowerUp{X: 200, Y: 650, W: 18, H: 18, Type: PowerUpShield, VY: 60}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, fixedRand(0.5))
			keepLevelOpen(s)
			pu := tt.pu
			s.PowerUps = []*PowerUp{&pu}

			s.Step(frame, Input{})

			if caught := s.Shields == 1; caught != tt.caught {
				t.Errorf("caught = %v, expected %v", caught, tt.caught)
			}
			if kept := len(s.PowerUps) == 1; kept != tt.kept {
				t.Errorf("kept = %v, expected %v", kept, tt.kept)
			}
		})
	}
}

func TestLasers(t *testing.T) {
	t.Run("fire needs laser mode", func(t *testing.T) {
		s := newTestSession(t, fixedRand(0.5))
		keepLevelOpen(s)
		s.Step(0, Input{Fire: true})
		if len(s.Lasers) != 0 {
			t.Errorf("lasers = %d, expected none without the power-up", len(s.Lasers))
		}
	})

	t.Run("twin beams with cooldown", func(t *testing.T) {
		fb := &recordingFeedback{}
		s := newTestSession(t, fixedRand(0.5), WithFeedback(fb))
		keepLevelOpen(s)
		s.ApplyPowerUp(PowerUpLaser)

		s.Step(0, Input{Fire: true})
		if len(s.Lasers) != 2 {
			t.Fatalf("lasers = %d, expected 2", len(s.Lasers))
		}
		l, r := s.Lasers[0], s.Lasers[1]
		if math.Abs(l.X-410.8) > 1e-9 || math.Abs(r.X-489.2) > 1e-9 || l.Y != 544 || l.VY != -520 {
			t.Errorf("unexpected beams %+v %+v", *l, *r)
		}
		if s.Paddle.LaserCooldown != 220 {
			t.Errorf("cooldown = %v, expected 220", s.Paddle.LaserCooldown)
		}
		if !fb.played(CueLaser) {
			t.Error("expected the laser cue")
		}

		s.Step(0, Input{Fire: true})
		if len(s.Lasers) != 2 {
			t.Errorf("lasers = %d, cooldown should block a second volley", len(s.Lasers))
		}

		s.Time = 221
		s.Step(0, Input{Fire: true})
		if len(s.Lasers) != 4 {
			t.Errorf("lasers = %d, expected a second volley after the cooldown", len(s.Lasers))
		}

		s.Lasers = nil
		s.Time = 12001
		s.Step(0, Input{Fire: true})
		if len(s.Lasers) != 0 {
			t.Error("laser mode should lapse after 12000 ms")
		}
	})

	t.Run("brick damage", func(t *testing.T) {
		s := newTestSession(t, fixedRand(0.5))
		keepLevelOpen(s)
		brick := &Brick{X: 400, Y: 300, W: 100, H: 20, Alive: true, Hits: 3}
		s.Bricks = append(s.Bricks, brick)

		s.Lasers = []*Laser{{X: 450, Y: 310, VY: -520}}
		s.Step(0, Input{})
		if brick.Hits != 1 || !brick.Alive || s.Score != 0 || len(s.Lasers) != 0 {
			t.Errorf("after one beam: hits=%d alive=%v score=%d lasers=%d", brick.Hits, brick.Alive, s.Score, len(s.Lasers))
		}

		s.Lasers = []*Laser{{X: 450, Y: 310, VY: -520}}
		s.Step(0, Input{})
		if brick.Alive || brick.Hits != 0 || s.Score != 120 {
			t.Errorf("after two beams: hits=%d alive=%v score=%d", brick.Hits, brick.Alive, s.Score)
		}
	})

	t.Run("boss damage", func(t *testing.T) {
		s := newTestSession(t, fixedRand(0.5))
		s.Level = 6
		s.GenerateLevel()

		s.Lasers = []*Laser{{X: 450, Y: 100, VY: -520}}
		s.Step(0, Input{})
		if s.Boss.HP != 57 {
			t.Errorf("boss hp = %d, expected 57", s.Boss.HP)
		}
		if len(s.Lasers) != 0 {
			t.Error("beam should be spent on the boss")
		}
	})

	t.Run("boss kill", func(t *testing.T) {
		s := newTestSession(t, fixedRand(0.5))
		s.Level = 6
		s.GenerateLevel()
		s.Boss.HP = 2

		s.Lasers = []*Laser{{X: 450, Y: 100, VY: -520}}
		events := s.Advance(0, Input{})
		if s.Boss != nil || s.Level != 7 || s.Score != 2000 {
			t.Errorf("boss=%v level=%d score=%d", s.Boss, s.Level, s.Score)
		}
		if !slices.Equal(events, []Event{EventBossDefeated, EventLevelAdvanced}) {
			t.Errorf("events = %v", events)
		}
	})

	t.Run("leaves the top", func(t *testing.T) {
		s := newTestSession(t, fixedRand(0.5))
		keepLevelOpen(s)
		s.Lasers = []*Laser{{X: 100, Y: -5, VY: -520}}
		s.Step(frame, Input{})
		if len(s.Lasers) != 0 {
			t.Error("beam above -10 should be removed")
		}
	})
}

func TestBossDefeatByBall(t *testing.T) {
	s := newTestSession(t, fixedRand(0.5))
	s.Level = 6
	s.GenerateLevel()
	if s.Boss.HP != 60 || len(s.Bricks) != 30 {
		t.Fatalf("level 6: boss hp %d with %d bricks", s.Boss.HP, len(s.Bricks))
	}
	s.Boss.HP = 1
	s.Balls = []*Ball{{X: 450, Y: 135, R: 8, DX: 0, DY: -1, Speed: 220}}

	events := s.Advance(frame, Input{})

	if s.Score != 2200 {
		t.Errorf("score = %d, expected 200 for the hit plus the 2000 bonus", s.Score)
	}
	if s.Boss != nil || s.Level != 7 {
		t.Errorf("boss=%v level=%d, expected the next level", s.Boss, s.Level)
	}
	if len(s.Balls) != 1 {
		t.Errorf("balls = %d, expected 1", len(s.Balls))
	}
	if !slices.Equal(events, []Event{EventBossDefeated, EventLevelAdvanced}) {
		t.Errorf("events = %v", events)
	}
}

func TestBossHitCountsOncePerPass(t *testing.T) {
	s := newTestSession(t, fixedRand(0.5))
	s.Level = 6
	s.GenerateLevel()
	s.Boss.Speed = 0
	s.Balls = []*Ball{{X: 450, Y: 135, R: 8, DX: 0, DY: -1, Speed: 220}}

	s.Advance(frame, Input{})
	if s.Boss.HP != 59 || s.Score != 200 {
		t.Fatalf("hp=%d score=%d after the first contact", s.Boss.HP, s.Score)
	}
	b := s.Balls[0]
	if b.DY <= 0 {
		t.Errorf("ball should turn downward, DY=%v", b.DY)
	}
	if want := 135 - 220*frame; math.Abs(b.Y-want) > 1e-9 {
		t.Errorf("Y = %v, expected %v with no jump out of the band", b.Y, want)
	}

	for range 5 {
		s.Advance(frame, Input{})
	}
	if s.Boss.HP != 59 {
		t.Errorf("hp = %d, a single pass must count once", s.Boss.HP)
	}
	if b.InBossBand {
		t.Errorf("ball at Y=%v should have left the band", b.Y)
	}
}

func TestBossHitFromTheSideReflectsInPlace(t *testing.T) {
	s := newTestSession(t, fixedRand(0.5))
	s.Level = 6
	s.GenerateLevel()
	s.Boss.Speed = 0
	s.Balls = []*Ball{{X: 302, Y: 110, R: 8, DX: 1, DY: 0.5, Speed: 220}}
	b := s.Balls[0]

	for range 2 {
		s.Advance(frame, Input{})
	}
	if s.Boss.HP != 60 {
		t.Fatalf("hp = %d before the ball reaches the boss at X=%v", s.Boss.HP, b.X)
	}

	s.Advance(frame, Input{})
	if s.Boss.HP != 59 {
		t.Fatalf("hp = %d, expected a hit once X=%v passed the boss edge", s.Boss.HP, b.X)
	}
	if want := 110 + 3*0.5*220*frame; math.Abs(b.Y-want) > 1e-9 {
		t.Errorf("Y = %v, expected %v: a hit must not move the ball", b.Y, want)
	}
	if b.DY >= 0 {
		t.Errorf("DY = %v, expected upward travel after a downward hit", b.DY)
	}

	for range 20 {
		s.Advance(frame, Input{})
	}
	if s.Boss.HP != 59 {
		t.Errorf("hp = %d while the ball crossed the band once", s.Boss.HP)
	}
}

func TestBossPatrolAndShots(t *testing.T) {
	t.Run("bounces at the margins", func(t *testing.T) {
		s := newTestSession(t, fixedRand(0.5))
		s.Level = 6
		s.GenerateLevel()

		s.Boss.X, s.Boss.Dir = 31, -1
		s.Step(frame, Input{})
		if s.Boss.X != 30 || s.Boss.Dir != 1 {
			t.Errorf("left margin: X=%v Dir=%v", s.Boss.X, s.Boss.Dir)
		}

		s.Boss.X, s.Boss.Dir = 589.5, 1
		s.Step(frame, Input{})
		if s.Boss.X != 590 || s.Boss.Dir != -1 {
			t.Errorf("right margin: X=%v Dir=%v", s.Boss.X, s.Boss.Dir)
		}
	})

	t.Run("fires on interval", func(t *testing.T) {
		s := newTestSession(t, fixedRand(0.5))
		s.Level = 6
		s.GenerateLevel()

		// Interval at level 6 is 1400 - 90 = 1310 ms.
		s.Time = 1310
		s.Step(0, Input{})
		if s.Bullets() != 0 {
			t.Fatal("fired before the interval elapsed")
		}

		s.Time = 1311
		s.Step(0, Input{})
		if s.Bullets() != 1 {
			t.Fatalf("bullets = %d, expected 1", s.Bullets())
		}
		var b *Particle
		for _, p := range s.Particles {
			if p.Bullet {
				b = p
			}
		}
		if b.X != 450 || b.Y != 140 || b.VY != 120 || b.Life != 2 {
			t.Errorf("unexpected bullet %+v", *b)
		}
		if s.Boss.LastShot != 1311 {
			t.Errorf("LastShot = %v", s.Boss.LastShot)
		}

		s.Step(0, Input{})
		if s.Bullets() != 1 {
			t.Error("fired twice in one interval")
		}
	})
}

func TestLevelClearAdvances(t *testing.T) {
	s := newTestSession(t, fixedRand(0.5))
	for _, b := range s.Bricks {
		b.Alive = false
	}

	events := s.Advance(frame, Input{})
	if s.Level != 2 {
		t.Errorf("level = %d, expected 2", s.Level)
	}
	if !slices.Equal(events, []Event{EventLevelAdvanced}) {
		t.Errorf("events = %v", events)
	}
	if s.AliveBricks() == 0 {
		t.Error("the new level should have bricks")
	}
}

func TestParticlesAgeOut(t *testing.T) {
	s := newTestSession(t, fixedRand(0.5))
	keepLevelOpen(s)
	s.Particles = []*Particle{
		{X: 100, Y: 100, VX: 10, VY: 0, Life: 0.01},
		{X: 100, Y: 100, VX: 10, VY: 0, Life: 1},
	}

	s.Step(frame, Input{})

	if len(s.Particles) != 1 {
		t.Fatalf("particles = %d, expected the short-lived one gone", len(s.Particles))
	}
	p := s.Particles[0]
	if p.VY <= 0 || p.Y <= 100 || p.X <= 100 {
		t.Errorf("particle should drift and fall, got %+v", *p)
	}
}

func TestFeedbackPanicIsContained(t *testing.T) {
	s := newTestSession(t, fixedRand(0.5), WithFeedback(panicFeedback{}))
	keepLevelOpen(s)
	s.Balls = []*Ball{{X: 5, Y: 300, R: 8, DX: -1, DY: 0, Speed: 220}}

	s.Step(frame, Input{})

	if s.Balls[0].DX != 1 {
		t.Error("step should finish despite the failing collaborator")
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		s := newTestSession(t, NewSimpleRNG(12345))
		for i := range 3000 {
			in := Input{Fire: i%7 == 0}
			switch {
			case i%90 < 30:
				in.Left = true
			case i%90 < 60:
				in.Right = true
			default:
				in.HasPointer = true
				in.PointerX = float64(i % 900)
			}
			s.Advance(frame, in)
			if s.GameOver {
				break
			}
		}
		return s.Snapshot()
	}

	a, b := run(), run()
	if a.Hash() != b.Hash() {
		t.Errorf("hashes differ: %d vs %d", a.Hash(), b.Hash())
	}
	if a.Score != b.Score || a.Time != b.Time {
		t.Errorf("runs diverged: score %d/%d time %d/%d", a.Score, b.Score, a.Time, b.Time)
	}
}

func TestInvariantsHoldUnderPlay(t *testing.T) {
	for seed := int64(1); seed <= 4; seed++ {
		s := newTestSession(t, NewSimpleRNG(seed))
		hits := make(map[*Brick]int)
		alive := make(map[*Brick]bool)
		score := 0

		for i := range 6000 {
			s.Advance(frame, Autopilot(s))

			if s.Score < score {
				t.Fatalf("seed %d frame %d: score fell from %d to %d", seed, i, score, s.Score)
			}
			score = s.Score

			if s.Lives < 0 || s.Shields < 0 || s.Shields > 3 || s.Lives > 5 {
				t.Fatalf("seed %d frame %d: lives=%d shields=%d", seed, i, s.Lives, s.Shields)
			}
			if s.Paddle.X < 0 || s.Paddle.X > core.PlayfieldW-s.Paddle.W {
				t.Fatalf("seed %d frame %d: paddle at %v", seed, i, s.Paddle.X)
			}
			for _, b := range s.Balls {
				if b.X < 0 || b.X > core.PlayfieldW || b.Y < 0 {
					t.Fatalf("seed %d frame %d: ball at (%v, %v)", seed, i, b.X, b.Y)
				}
			}
			for _, b := range s.Bricks {
				if prev, ok := hits[b]; ok {
					if b.Hits > prev {
						t.Fatalf("seed %d frame %d: brick hits rose from %d to %d", seed, i, prev, b.Hits)
					}
					if !alive[b] && b.Alive {
						t.Fatalf("seed %d frame %d: dead brick came back", seed, i)
					}
				}
				hits[b] = b.Hits
				alive[b] = b.Alive
			}

			if s.GameOver {
				if s.Lives != 0 {
					t.Fatalf("seed %d: game over with %d lives", seed, s.Lives)
				}
				break
			}
		}
	}
}

func TestAutopilotTracksLowestBall(t *testing.T) {
	s := newTestSession(t, NewSimpleRNG(1))
	s.Balls[0].X, s.Balls[0].Y = 200, 300
	s.AddBall(640, 500)

	in := Autopilot(s)
	if !in.HasPointer || in.PointerX != 640 || !in.Fire {
		t.Errorf("Autopilot = %+v, expected pointer on the lower ball at 640", in)
	}

	s.Balls = nil
	if in := Autopilot(s); in.HasPointer {
		t.Error("no balls should mean no pointer")
	}
}
