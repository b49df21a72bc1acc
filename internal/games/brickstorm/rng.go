package brickstorm

// Rand is the random source a session draws from.
type Rand interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// SimpleRNG is a deterministic pseudo-random number generator.
// Uses a simple LCG (Linear Congruential Generator).
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Float64 returns a random float64 in [0, 1) built from the top 53 bits.
func (r *SimpleRNG) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// State exposes the generator state for snapshots.
func (r *SimpleRNG) State() uint64 {
	return r.state
}

// randRange returns a value in [lo, hi).
func randRange(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
