package room

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the kind for input that cannot be understood (a bad bet amount, an unknown action)
var ErrInvalidArgument = errors.New("invalid argument")

// ErrWrongPhase is the kind for an operation attempted outside the phase that allows it
var ErrWrongPhase = errors.New("wrong phase")

// ErrNotYourTurn is the kind for an action from anyone other than the current turn holder
var ErrNotYourTurn = errors.New("not your turn")

// ErrInsufficientBalance is the kind for a bet or double down larger than the balance
var ErrInsufficientBalance = errors.New("insufficient balance")

// ErrDuplicateBet is the kind for a second bet in the same round
var ErrDuplicateBet = errors.New("duplicate bet")

// ErrNoPlayers is the kind for starting a round in an empty room
var ErrNoPlayers = errors.New("no players")

// ErrRoomClosed is returned for operations submitted after the room was shut down
var ErrRoomClosed = errors.New("room is closed")

// RuleError is a game rule violation
// Message is safe to send to the player; Kind is one of the sentinel errors above
type RuleError struct {
	Kind    error
	Message string
}

func newRuleError(kind error, format string, a ...interface{}) *RuleError {
	return &RuleError{
		Kind:    kind,
		Message: fmt.Sprintf(format, a...),
	}
}

func (r *RuleError) Error() string {
	return r.Message
}

// Unwrap allows errors.Is to match on the kind
func (r *RuleError) Unwrap() error {
	return r.Kind
}
