package rng

import (
	"math/rand"
	"sync"
)

// Seeded wraps math/rand with a fixed seed so a run can be replayed
type Seeded struct {
	mu   sync.Mutex
	rand *rand.Rand
}

// NewSeeded returns a generator seeded with seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		rand: rand.New(rand.NewSource(seed)), // nolint:gosec
	}
}

// Intn returns a random number from 0 <= x < n
func (s *Seeded) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rand.Intn(n)
}

// FromSeed returns a Seeded generator for a non-zero seed and Crypto otherwise
func FromSeed(seed int64) Generator {
	if seed == 0 {
		return Crypto{}
	}

	return NewSeeded(seed)
}
