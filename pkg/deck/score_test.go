package deck

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func hand(s string) Hand {
	return Hand(CardsFromString(s))
}

func TestHand_Score(t *testing.T) {
	test := func(t *testing.T, cards string, score int, isSoft bool) {
		t.Helper()

		h := hand(cards)
		assert.Equal(t, score, h.Score(), cards)
		assert.Equal(t, isSoft, h.IsSoft(), cards)
	}

	test(t, "", 0, false)
	test(t, "2,3", 5, false)
	test(t, "K,Q", 20, false)
	test(t, "10,J,2", 22, false)
	test(t, "A", 11, true)
	test(t, "A,9", 20, true)
	test(t, "A,A", 12, true)
	test(t, "A,A,9", 21, true)
	test(t, "A,A,A,8", 21, true)
	test(t, "A,A,A,8,K", 21, false)
	test(t, "A,K", 21, true)
	test(t, "A,6,K", 17, false)
	test(t, "A,5,5", 21, true)
	test(t, "A,A,K,K", 22, false)
}

func TestHand_Score_noAces(t *testing.T) {
	a := assert.New(t)
	for r1 := Two; r1 <= King; r1++ {
		for r2 := Two; r2 <= King; r2++ {
			for r3 := Two; r3 <= King; r3++ {
				h := Hand{NewCard(r1), NewCard(r2), NewCard(r3)}
				a.Equal(NewCard(r1).Value()+NewCard(r2).Value()+NewCard(r3).Value(), h.Score())
				a.False(h.IsSoft())
			}
		}
	}
}

func TestHand_IsBust(t *testing.T) {
	a := assert.New(t)
	a.False(hand("K,Q,A").IsBust())
	a.True(hand("K,Q,2").IsBust())
	a.False(hand("A,A,A,A,A,A,A,A,A,A,A").IsBust())
	a.True(hand("A,A,A,A,A,A,A,A,A,A,A,A,A,A,A,A,A,A,A,A,A,A").IsBust())
}

func TestHand_IsBlackjack(t *testing.T) {
	a := assert.New(t)
	a.True(hand("A,K").IsBlackjack())
	a.True(hand("10,A").IsBlackjack())
	a.False(hand("A,5,5").IsBlackjack())
	a.False(hand("K,Q").IsBlackjack())
	a.False(hand("A").IsBlackjack())
}
