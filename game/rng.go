package game

import "math/rand"

// RNG is a seedable pseudo-random source, owned by the spawner
type RNG struct {
	seed int64
	r    *rand.Rand
}

// NewRNG creates a generator with a fixed seed
func NewRNG(seed int64) *RNG {
	return &RNG{
		seed: seed,
		r:    rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the generator was created with
func (g *RNG) Seed() int64 {
	return g.seed
}

// Range returns a uniform float in [lo, hi)
func (g *RNG) Range(lo, hi float64) float64 {
	return lo + g.r.Float64()*(hi-lo)
}

// Intn returns a uniform int in [0, n)
func (g *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return g.r.Intn(n)
}
