package room

import (
	"blackjack-server/pkg/deck"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNewSession(t *testing.T) {
	a := assert.New(t)

	s := NewSession(1000, 2)
	a.NotEmpty(s.ID)
	a.NotEmpty(s.ConnID)
	a.Equal(1000, s.balance)
	a.Contains(s.String(), s.ID+":")

	a.Panics(func() {
		NewSessionWithID("x", -1, 1)
	})
}

func TestSession_Send(t *testing.T) {
	a := assert.New(t)

	s := NewSessionWithID("alice", 1000, 2)
	a.True(s.Send("one"))
	a.True(s.Send("two"))
	a.False(s.Send("three"))

	a.Equal("one", <-s.SendChan())
	a.Equal("two", <-s.SendChan())
}

func TestSession_balance(t *testing.T) {
	a := assert.New(t)

	s := NewSessionWithID("alice", 100, 1)
	s.decreaseBalance(40)
	a.Equal(60, s.balance)
	s.increaseBalance(15)
	a.Equal(75, s.balance)

	a.Panics(func() {
		s.decreaseBalance(76)
	})
	a.Equal(75, s.balance)
}

func TestSession_resetRound(t *testing.T) {
	a := assert.New(t)

	s := NewSessionWithID("alice", 100, 1)
	s.currentBet = 50
	s.betPlaced = true
	s.surrendered = true
	s.addCard(deck.NewCard(deck.Ace))
	s.addCard(deck.NewCard(deck.King))
	a.Equal(21, s.score())

	s.resetRound()
	a.Equal(0, s.currentBet)
	a.False(s.betPlaced)
	a.False(s.surrendered)
	a.True(s.inRound)
	a.Equal(0, s.hand.Len())
	a.Equal(0, s.score())
	a.Equal(100, s.balance)
}
