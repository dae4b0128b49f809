package protocol

import (
	"blackjack-server/pkg/room"
	"errors"

	"github.com/sirupsen/logrus"
)

// Room is the set of room operations a line can trigger
type Room interface {
	StartGame(s *room.Session) error
	PlaceBet(s *room.Session, amount int) error
	Act(s *room.Session, action room.Action) error
	SendBalance(s *room.Session) error
}

// Dispatcher turns inbound lines into room operations
type Dispatcher struct {
	room   Room
	logger logrus.FieldLogger
}

// NewDispatcher returns a dispatcher for the room
func NewDispatcher(r Room, logger logrus.FieldLogger) *Dispatcher {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Dispatcher{
		room:   r,
		logger: logger,
	}
}

// Dispatch handles one line from the session
// Failures are reported to the session as an ERROR line. The only error returned is room.ErrRoomClosed,
// after which the connection should be closed
func (d *Dispatcher) Dispatch(s *room.Session, line string) error {
	req, err := Parse(line)
	if err == nil && req == nil {
		return nil
	}

	if err == nil {
		err = d.do(s, req)
	}

	if err == nil {
		return nil
	}

	if errors.Is(err, room.ErrRoomClosed) {
		return err
	}

	log := d.logger.WithField("player", s.String()).WithField("line", line)
	var ruleErr *room.RuleError
	if errors.As(err, &ruleErr) {
		log.WithField("reason", ruleErr.Kind).Debug("rejected request")
	} else {
		log.WithError(err).Error("could not handle request")
	}

	if !s.Send(room.ErrorLine(err)) {
		log.Warn("send buffer full, dropping error")
	}

	return nil
}

func (d *Dispatcher) do(s *room.Session, req *Request) error {
	switch req.Command {
	case CommandStart:
		return d.room.StartGame(s)
	case CommandPlaceBet:
		return d.room.PlaceBet(s, req.Amount)
	case CommandPlayerAction:
		return d.room.Act(s, req.Action)
	case CommandBalance:
		return d.room.SendBalance(s)
	}

	// Parse only returns known commands
	panic("unhandled command: " + string(req.Command))
}
