// internal/utils/prng.go
package utils

import (
	"time"

	"golang.org/x/exp/rand"
)

// PRNGService wraps a seeded PCG generator so a run can be replayed from its
// seed. It is not safe for concurrent use; the simulation only draws from it
// during init on the driver goroutine.
type PRNGService struct {
	seed uint64
	rng  *rand.Rand
}

// NewPRNGService creates a generator with the given seed.
// A zero seed is replaced by the current time.
func NewPRNGService(seed uint64) *PRNGService {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &PRNGService{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed actually in use.
func (s *PRNGService) Seed() uint64 {
	return s.seed
}

// Float32 returns a number in [0.0, 1.0).
func (s *PRNGService) Float32() float32 {
	return s.rng.Float32()
}
