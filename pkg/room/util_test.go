package room

import (
	"blackjack-server/internal/rng"
	"blackjack-server/pkg/deck"
	"testing"

	"github.com/sirupsen/logrus"
)

// sequence returns a generator that makes the shoe deal the given cards in order
func sequence(cards string) *rng.Sequence {
	c := deck.CardsFromString(cards)
	values := make([]int, len(c))
	for i, card := range c {
		values[i] = int(card.Rank) - 1
	}

	return rng.NewSequence(values...)
}

func testOptions(cards string) Options {
	opts := DefaultOptions()
	opts.DealerDelay = 0
	opts.Generator = sequence(cards)
	opts.Logger = logrus.StandardLogger()

	return opts
}

func createTestRoom(t *testing.T, cards string) *Room {
	t.Helper()

	r := NewRoom(testOptions(cards))
	r.StartShift()
	t.Cleanup(r.EndShift)

	return r
}

// createTestPlayers joins one session per id with the default balance
func createTestPlayers(t *testing.T, r *Room, ids ...string) []*Session {
	t.Helper()

	sessions := make([]*Session, len(ids))
	for i, id := range ids {
		sessions[i] = NewSessionWithID(id, 1000, 256)
		if err := r.Join(sessions[i]); err != nil {
			t.Fatal(err)
		}
	}

	for _, s := range sessions {
		drain(s)
	}

	return sessions
}

// drain returns every line queued for the session
func drain(s *Session) []string {
	msgs := make([]string, 0)
	for {
		select {
		case msg := <-s.send:
			msgs = append(msgs, msg)
		default:
			return msgs
		}
	}
}
