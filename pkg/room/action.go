package room

import (
	"fmt"
	"strings"
)

// Action is a move the player whose turn it is can make
type Action int

// Action constants
const (
	ActionHit Action = iota
	ActionStand
	ActionDoubleDown
	ActionSurrender
)

func (a Action) String() string {
	switch a {
	case ActionHit:
		return "Hit"
	case ActionStand:
		return "Stand"
	case ActionDoubleDown:
		return "DoubleDown"
	case ActionSurrender:
		return "Surrender"
	}

	panic(fmt.Sprintf("invalid action: %d", int(a)))
}

// ActionFromString returns an action from its name, ignoring case
func ActionFromString(action string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(action)) {
	case "hit":
		return ActionHit, nil
	case "stand":
		return ActionStand, nil
	case "doubledown":
		return ActionDoubleDown, nil
	case "surrender":
		return ActionSurrender, nil
	}

	return -1, newRuleError(ErrInvalidArgument, "Unknown action: %s", action)
}
