package brickstorm

import (
	"math"
)

// Snapshot is a flat copy of the session used for determinism checks and
// soak-test reporting. Positions are rounded to thousandths of a unit.
type Snapshot struct {
	Time     int64 // ms
	Score    int
	Lives    int
	Shields  int
	Level    int
	GameOver bool

	PaddleX int64
	PaddleW int64

	// Each ball is 4 values: X, Y, DX, DY
	BallData []int64

	// Each brick is 2 values: Alive, Hits
	BrickData []int64

	PowerUps  int
	Lasers    int
	Particles int
	BossHP    int // -1 when there is no boss
}

func milli(v float64) int64 {
	return int64(math.Round(v * 1000))
}

// Snapshot returns the current state as a Snapshot.
func (s *Session) Snapshot() Snapshot {
	balls := make([]int64, 0, len(s.Balls)*4)
	for _, b := range s.Balls {
		balls = append(balls, milli(b.X), milli(b.Y), milli(b.DX), milli(b.DY))
	}

	bricks := make([]int64, 0, len(s.Bricks)*2)
	for _, b := range s.Bricks {
		alive := int64(0)
		if b.Alive {
			alive = 1
		}
		bricks = append(bricks, alive, int64(b.Hits))
	}

	bossHP := -1
	if s.Boss != nil {
		bossHP = s.Boss.HP
	}

	return Snapshot{
		Time:      int64(math.Round(s.Time)),
		Score:     s.Score,
		Lives:     s.Lives,
		Shields:   s.Shields,
		Level:     s.Level,
		GameOver:  s.GameOver,
		PaddleX:   milli(s.Paddle.X),
		PaddleW:   milli(s.Paddle.W),
		BallData:  balls,
		BrickData: bricks,
		PowerUps:  len(s.PowerUps),
		Lasers:    len(s.Lasers),
		Particles: len(s.Particles),
		BossHP:    bossHP,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Time)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Shields)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleX)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleW)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PowerUps)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lasers)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Particles) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BossHP+1)  //#nosec G115 -- hash computation
	if snap.GameOver {
		h = h*31 + 1
	}

	for _, v := range snap.BallData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
