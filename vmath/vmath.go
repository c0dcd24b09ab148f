package vmath

import "math"

// Epsilon is the tolerance for every float equality check in the simulation
// Exact comparison leaves agents oscillating around "almost arrived" positions
const Epsilon = 1e-3

// FloatEqual reports whether a and b differ by less than Epsilon
func FloatEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// --- Randomness ---

// FastRand is a xorshift64 generator
// Not safe for concurrent use; the simulation owns one instance per game
type FastRand struct {
	state uint64
}

// NewFastRand seeds a generator, zero seed is replaced with 1 (xorshift fixed point)
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a uniform value in [0, 1) built from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Centered returns a uniform value in [-0.5, 0.5)
func (r *FastRand) Centered() float64 {
	return r.Float64() - 0.5
}

// Symmetric returns a uniform value in [-1, 1)
func (r *FastRand) Symmetric() float64 {
	return r.Float64()*2 - 1
}

// Between returns a uniform value in [lo, hi)
func (r *FastRand) Between(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}
