package room

import (
	"blackjack-server/internal/util"
	"blackjack-server/pkg/deck"
	"fmt"
)

// Session is a player connected to the room
// The transport owns the connection and drains SendChan; everything else is owned by the room and
// must only be touched from the room's run loop
type Session struct {
	// ID is the label other players see
	ID string
	// ConnID identifies the connection in logs
	ConnID string

	// send is a channel for sending lines to the connection
	send chan string

	balance     int
	currentBet  int
	hand        deck.Hand
	betPlaced   bool
	surrendered bool
	// inRound is false for sessions that joined after the current round started
	inRound bool
}

// NewSession returns a new session with a random label
func NewSession(balance, buffer int) *Session {
	return NewSessionWithID(util.GetRandomName(), balance, buffer)
}

// NewSessionWithID returns a new session with the provided label
func NewSessionWithID(id string, balance, buffer int) *Session {
	if balance < 0 {
		panic("balance cannot be negative")
	}

	return &Session{
		ID:      id,
		ConnID:  util.NewConnectionID(),
		send:    make(chan string, buffer),
		balance: balance,
		hand:    deck.Hand{},
	}
}

// Send queues a line for the connection
// If the buffer is full the line is dropped and false is returned
func (s *Session) Send(msg string) bool {
	select {
	case s.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel of outbound lines
func (s *Session) SendChan() <-chan string {
	return s.send
}

// String returns a traceable identifier for the session
func (s *Session) String() string {
	return fmt.Sprintf("%s:%s", s.ID, s.ConnID)
}

func (s *Session) increaseBalance(amount int) {
	s.balance += amount
}

// decreaseBalance panics if it would take the balance below zero; callers check first
func (s *Session) decreaseBalance(amount int) {
	if amount > s.balance {
		panic(fmt.Sprintf("cannot take %d from a balance of %d", amount, s.balance))
	}

	s.balance -= amount
}

func (s *Session) addCard(card *deck.Card) {
	s.hand.AddCard(card)
}

func (s *Session) score() int {
	return s.hand.Score()
}

// resetRound clears everything tied to a round and enrolls the session in the next one
func (s *Session) resetRound() {
	s.currentBet = 0
	s.hand.Reset()
	s.betPlaced = false
	s.surrendered = false
	s.inRound = true
}
