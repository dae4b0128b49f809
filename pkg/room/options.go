package room

import (
	"blackjack-server/internal/rng"
	"time"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"
)

// Options contains options for creating a room
type Options struct {
	// StartingBalance is what every new session starts with
	StartingBalance int
	// DealerStandsOn is the total at which the dealer stops drawing
	DealerStandsOn int
	// DealerDelay paces dealer draws. Zero plays the dealer out immediately
	DealerDelay time.Duration
	// SendBuffer is the number of outbound lines a session can queue before lines are dropped
	SendBuffer int

	Generator rng.Generator
	Clock     quartz.Clock
	Logger    logrus.FieldLogger
}

// DefaultOptions returns the default set of options
func DefaultOptions() Options {
	return Options{
		StartingBalance: 1000,
		DealerStandsOn:  17,
		DealerDelay:     time.Second,
		SendBuffer:      256,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.StartingBalance <= 0 {
		o.StartingBalance = def.StartingBalance
	}

	if o.DealerStandsOn <= 0 {
		o.DealerStandsOn = def.DealerStandsOn
	}

	if o.SendBuffer <= 0 {
		o.SendBuffer = def.SendBuffer
	}

	if o.Generator == nil {
		o.Generator = rng.Crypto{}
	}

	if o.Clock == nil {
		o.Clock = quartz.NewReal()
	}

	if o.Logger == nil {
		o.Logger = logrus.StandardLogger()
	}

	return o
}
