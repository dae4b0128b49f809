package rng

import (
	"sync"
)

// Sequence replays a fixed list of values and then repeats from the start
// Values are reduced modulo n, so a sequence can be reused for any range
type Sequence struct {
	mu     sync.Mutex
	values []int
	index  int
}

// NewSequence returns a generator that returns values in order
func NewSequence(values ...int) *Sequence {
	if len(values) == 0 {
		panic("sequence requires at least one value")
	}

	return &Sequence{values: values}
}

// Intn returns the next value in the sequence
func (s *Sequence) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.values[s.index%len(s.values)]
	s.index++

	return v % n
}
