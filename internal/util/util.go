package util

import (
	"github.com/google/uuid"
)

// NewConnectionID returns a unique id for a connection
// It only shows up in logs; players are addressed by their label
func NewConnectionID() string {
	return uuid.New().String()
}
