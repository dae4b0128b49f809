package deck

// Blackjack is the best possible total
const Blackjack = 21

// totals returns the sum of the non-ace cards and the number of aces
func (h Hand) totals() (base, aces int) {
	for _, card := range h {
		if card.IsAce() {
			aces++
			continue
		}

		base += card.Value()
	}

	return base, aces
}

// soft is the total with a single ace counted as 11
func soft(base, aces int) int {
	return base + 11 + (aces - 1)
}

// Score returns the blackjack total of the hand
// One ace counts as 11 if that keeps the total at or under 21, otherwise every ace counts as 1
func (h Hand) Score() int {
	base, aces := h.totals()
	if aces == 0 {
		return base
	}

	if s := soft(base, aces); s <= Blackjack {
		return s
	}

	return base + aces
}

// IsSoft returns true if an ace is currently being counted as 11
func (h Hand) IsSoft() bool {
	base, aces := h.totals()
	if aces == 0 {
		return false
	}

	s := soft(base, aces)
	return s <= Blackjack && s != base+aces
}

// IsBust returns true if the hand is over 21
func (h Hand) IsBust() bool {
	return h.Score() > Blackjack
}

// IsBlackjack returns true if the hand is exactly two cards totalling 21
func (h Hand) IsBlackjack() bool {
	return len(h) == 2 && h.Score() == Blackjack
}
