package protocol

import (
	"blackjack-server/pkg/room"
	"fmt"
	"strconv"
	"strings"
)

// Command is the part of an inbound line before the first colon
type Command string

// Command constants
const (
	CommandStart        Command = "START"
	CommandPlaceBet     Command = "PLACE_BET"
	CommandPlayerAction Command = "PLAYER_ACTION"
	CommandBalance      Command = "BALANCE"
)

// Request is a parsed inbound line
type Request struct {
	Command Command
	// Amount is set for PLACE_BET
	Amount int
	// Action is set for PLAYER_ACTION
	Action room.Action
}

func (r Request) String() string {
	switch r.Command {
	case CommandPlaceBet:
		return fmt.Sprintf("%s:%d", r.Command, r.Amount)
	case CommandPlayerAction:
		return fmt.Sprintf("%s:%s", r.Command, r.Action)
	}

	return string(r.Command)
}

// Parse decodes one line of the form COMMAND[:ARG]
// A blank line returns a nil request and no error
func Parse(line string) (*Request, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}

	command, arg := line, ""
	if i := strings.IndexByte(line, ':'); i >= 0 {
		command, arg = line[:i], line[i+1:]
	}

	req := &Request{Command: Command(strings.TrimSpace(command))}
	switch req.Command {
	case CommandStart, CommandBalance:
		return req, nil
	case CommandPlaceBet:
		amount, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			return nil, invalidArgument("Invalid bet amount.")
		}

		req.Amount = amount
		return req, nil
	case CommandPlayerAction:
		action, err := room.ActionFromString(arg)
		if err != nil {
			return nil, err
		}

		req.Action = action
		return req, nil
	}

	return nil, invalidArgument("Unknown command: %s", command)
}

func invalidArgument(format string, a ...interface{}) error {
	return &room.RuleError{
		Kind:    room.ErrInvalidArgument,
		Message: fmt.Sprintf(format, a...),
	}
}
