package room

import (
	"blackjack-server/pkg/deck"
	"sync"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"
)

// Room is the single blackjack table every connection plays at
// All state is owned by one run loop goroutine; the exported methods hand work to the loop and
// wait for it to finish, so operations from different connections never interleave
type Room struct {
	options Options
	shoe    *deck.Shoe
	clock   quartz.Clock
	logger  logrus.FieldLogger

	// everything below must only be touched from the run loop
	sessions    []*Session
	dealerHand  deck.Hand
	phase       Phase
	turnIndex   int
	roundID     string
	logMessages []string

	execInRunLoop chan func()
	close         chan struct{}
	done          chan struct{}
	closeOnce     sync.Once
}

// NewRoom creates a new room
// The room does nothing until StartShift is called
func NewRoom(options Options) *Room {
	options = options.withDefaults()

	return &Room{
		options:       options,
		shoe:          deck.NewShoe(options.Generator),
		clock:         options.Clock,
		logger:        options.Logger,
		dealerHand:    deck.Hand{},
		phase:         PhaseIdle,
		execInRunLoop: make(chan func(), 256),
		close:         make(chan struct{}),
		done:          make(chan struct{}),
	}
}

// Options returns the options the room was created with
func (r *Room) Options() Options {
	return r.options
}

// NewSession returns a session with the room's starting balance and buffer size
func (r *Room) NewSession() *Session {
	return NewSession(r.options.StartingBalance, r.options.SendBuffer)
}

// StartShift starts the run loop
func (r *Room) StartShift() {
	go r.runLoop()
}

// EndShift stops the run loop
// Operations submitted afterwards return ErrRoomClosed
func (r *Room) EndShift() {
	r.closeOnce.Do(func() {
		close(r.close)
	})
	<-r.done
}

func (r *Room) runLoop() {
	r.logger.Debug("starting room run loop")
	defer close(r.done)

	for {
		select {
		case fn := <-r.execInRunLoop:
			fn()
		case <-r.close:
			r.logger.Debug("terminating room run loop")
			return
		}
	}
}

// post queues fn on the run loop without waiting for it
func (r *Room) post(fn func()) bool {
	select {
	case r.execInRunLoop <- fn:
		return true
	case <-r.close:
		return false
	}
}

// exec runs fn on the run loop and waits for its result
func (r *Room) exec(fn func() error) error {
	result := make(chan error, 1)
	if !r.post(func() { result <- fn() }) {
		return ErrRoomClosed
	}

	select {
	case err := <-result:
		return err
	case <-r.done:
		select {
		case err := <-result:
			return err
		default:
			return ErrRoomClosed
		}
	}
}

// Join adds a session to the room
// A session joining mid-round sits out until the next StartGame
func (r *Room) Join(s *Session) error {
	return r.exec(func() error {
		r.join(s)
		return nil
	})
}

// Leave removes a session from the room
// If it held the turn, play moves on to the next player
func (r *Room) Leave(s *Session) error {
	return r.exec(func() error {
		r.leave(s)
		return nil
	})
}

// StartGame opens the betting window for everyone in the room
func (r *Room) StartGame(s *Session) error {
	return r.exec(func() error {
		return r.startGame(s)
	})
}

// PlaceBet places the session's bet for the round
// Once every player in the round has bet, cards are dealt
func (r *Room) PlaceBet(s *Session, amount int) error {
	return r.exec(func() error {
		return r.placeBet(s, amount)
	})
}

// Act performs action for the session whose turn it is
func (r *Room) Act(s *Session, action Action) error {
	return r.exec(func() error {
		return r.handlePlayerAction(s, action)
	})
}

// SendBalance sends the session its current balance
func (r *Room) SendBalance(s *Session) error {
	return r.exec(func() error {
		r.unicast(s, msgCurrentBalance(s))
		return nil
	})
}

// Phase returns the current phase
func (r *Room) Phase() Phase {
	var phase Phase
	_ = r.exec(func() error {
		phase = r.phase
		return nil
	})

	return phase
}

// Balance returns the session's balance
func (r *Room) Balance(s *Session) int {
	var balance int
	_ = r.exec(func() error {
		balance = s.balance
		return nil
	})

	return balance
}

// NOTE: must only be called from the run loop
func (r *Room) broadcast(msg string) {
	r.addLogMessage(msg)
	for _, s := range r.sessions {
		r.unicast(s, msg)
	}
}

// NOTE: must only be called from the run loop
func (r *Room) unicast(s *Session, msg string) {
	if !s.Send(msg) {
		r.logger.WithField("player", s.String()).WithField("msg", msg).Warn("send buffer full, dropping message")
	}
}

func (r *Room) indexOf(s *Session) int {
	for i, session := range r.sessions {
		if session == s {
			return i
		}
	}

	return -1
}

func (r *Room) roundLogger() logrus.FieldLogger {
	return r.logger.WithField("round", r.roundID)
}
