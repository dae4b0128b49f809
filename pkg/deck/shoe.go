package deck

import (
	"blackjack-server/internal/rng"
)

// Shoe is an infinite shoe
// Every draw is an independent uniform pick over the thirteen ranks, so it never runs out and never
// needs shuffling
type Shoe struct {
	rng rng.Generator
}

// NewShoe returns a shoe that draws using the provided generator
func NewShoe(gen rng.Generator) *Shoe {
	if gen == nil {
		gen = rng.Crypto{}
	}

	return &Shoe{rng: gen}
}

// Draw returns the next card
func (s *Shoe) Draw() *Card {
	return NewCard(Rank(s.rng.Intn(RankCount) + 1))
}
