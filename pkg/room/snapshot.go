package room

import (
	"blackjack-server/pkg/deck"
)

// Snapshot is a point-in-time view of the room
type Snapshot struct {
	Phase       Phase            `json:"phase"`
	RoundID     string           `json:"roundId"`
	CurrentTurn string           `json:"currentTurn,omitempty"`
	Dealer      HandSnapshot     `json:"dealer"`
	Players     []PlayerSnapshot `json:"players"`
	Log         []string         `json:"log"`
}

// HandSnapshot is a hand and its derived totals
type HandSnapshot struct {
	Cards       deck.Hand `json:"cards"`
	Score       int       `json:"score"`
	IsSoft      bool      `json:"isSoft"`
	IsBust      bool      `json:"isBust"`
	IsBlackjack bool      `json:"isBlackjack"`
}

// PlayerSnapshot is a session as seen from outside the room
type PlayerSnapshot struct {
	ID          string       `json:"id"`
	Balance     int          `json:"balance"`
	CurrentBet  int          `json:"currentBet"`
	Hand        HandSnapshot `json:"hand"`
	BetPlaced   bool         `json:"betPlaced"`
	Surrendered bool         `json:"surrendered"`
	InRound     bool         `json:"inRound"`
}

func newHandSnapshot(h deck.Hand) HandSnapshot {
	return HandSnapshot{
		Cards:       h.Clone(),
		Score:       h.Score(),
		IsSoft:      h.IsSoft(),
		IsBust:      h.IsBust(),
		IsBlackjack: h.IsBlackjack(),
	}
}

// Snapshot returns the current state of the room
func (r *Room) Snapshot() (*Snapshot, error) {
	var snap *Snapshot
	err := r.exec(func() error {
		snap = r.snapshot()
		return nil
	})

	return snap, err
}

// NOTE: must only be called from the run loop
func (r *Room) snapshot() *Snapshot {
	players := make([]PlayerSnapshot, len(r.sessions))
	for i, s := range r.sessions {
		players[i] = PlayerSnapshot{
			ID:          s.ID,
			Balance:     s.balance,
			CurrentBet:  s.currentBet,
			Hand:        newHandSnapshot(s.hand),
			BetPlaced:   s.betPlaced,
			Surrendered: s.surrendered,
			InRound:     s.inRound,
		}
	}

	var currentTurn string
	if r.phase == PhasePlaying {
		if s := r.currentTurn(); s != nil {
			currentTurn = s.ID
		}
	}

	log := make([]string, len(r.logMessages))
	copy(log, r.logMessages)

	return &Snapshot{
		Phase:       r.phase,
		RoundID:     r.roundID,
		CurrentTurn: currentTurn,
		Dealer:      newHandSnapshot(r.dealerHand),
		Players:     players,
		Log:         log,
	}
}
