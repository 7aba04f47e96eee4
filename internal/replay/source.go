package replay

import "math/rand"

// SeededSource is an engine.Source that remembers its seed so a run can be
// reproduced later. Reseed it whenever a new run starts.
type SeededSource struct {
	rng  *rand.Rand
	seed int64
}

// NewSeededSource creates a source seeded with seed.
func NewSeededSource(seed int64) *SeededSource {
	return &SeededSource{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Float64 returns a value in [0, 1).
func (s *SeededSource) Float64() float64 {
	return s.rng.Float64()
}

// Seed returns the seed of the current sequence.
func (s *SeededSource) Seed() int64 {
	return s.seed
}

// Reseed restarts the sequence from seed.
func (s *SeededSource) Reseed(seed int64) {
	s.rng.Seed(seed)
	s.seed = seed
}
