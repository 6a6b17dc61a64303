package core

import "pgregory.net/rand"

// Sampler provides random samples for rendering algorithms.
// Can be swapped out for deterministic sequences in tests.
// Implementations are not safe for concurrent use; each render
// worker owns an independent sampler so Monte Carlo noise stays
// uncorrelated across threads.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler draws samples from a PCG generator
type RandomSampler struct {
	rng *rand.Rand
}

// NewRandomSampler creates a sampler seeded from the given words.
// Distinct seeds produce independent streams.
func NewRandomSampler(seed ...uint64) *RandomSampler {
	return &RandomSampler{rng: rand.New(seed...)}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.rng.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.rng.Float64(), r.rng.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.rng.Float64(), r.rng.Float64(), r.rng.Float64())
}
