package room

import (
	"github.com/sirupsen/logrus"
)

// playDealerTurn starts the dealer's auto-play once every player has acted
// NOTE: must only be called from the run loop
func (r *Room) playDealerTurn() {
	r.setPhase(PhaseDealerPlay)
	r.broadcast(msgDealerTurn(r.dealerHand.Score()))
	r.afterDealerDelay(r.dealerStep)
}

// dealerStep draws one card while the dealer is under the threshold, then settles
func (r *Room) dealerStep() {
	if r.phase != PhaseDealerPlay {
		return
	}

	if r.dealerHand.Score() >= r.options.DealerStandsOn {
		r.settle()
		return
	}

	card := r.shoe.Draw()
	r.dealerHand.AddCard(card)
	r.broadcast(msgDealerDraw(card, r.dealerHand.Score()))
	r.afterDealerDelay(r.dealerStep)
}

// afterDealerDelay runs fn on the run loop once the pacing delay has passed
// The run loop stays free in the meantime, so other connections are not blocked
func (r *Room) afterDealerDelay(fn func()) {
	if r.options.DealerDelay <= 0 {
		fn()
		return
	}

	roundID := r.roundID
	r.clock.AfterFunc(r.options.DealerDelay, func() {
		r.post(func() {
			// the round may have been abandoned while we waited
			if r.roundID != roundID {
				return
			}

			fn()
		})
	}, "room", "dealer")
}

// settle pays out every hand in the round and returns the room to Idle
func (r *Room) settle() {
	r.setPhase(PhaseSettlement)

	dealerScore := r.dealerHand.Score()
	log := r.roundLogger().WithField("dealerScore", dealerScore)

	r.broadcast(msgFinalResults)
	r.broadcast(msgDealerFinal(dealerScore))

	for _, s := range r.sessions {
		if !s.inRound || !s.betPlaced {
			continue
		}

		result := Settle(s.hand, s.currentBet, s.surrendered, r.dealerHand)
		s.increaseBalance(result.Payout)

		log.WithFields(logrus.Fields{
			"player":  s.String(),
			"score":   s.score(),
			"bet":     s.currentBet,
			"outcome": result.Outcome,
			"payout":  result.Payout,
			"balance": s.balance,
		}).Info("hand settled")

		r.broadcast(msgSettled(s, result))
		r.unicast(s, msgBalanceAfterSettlement(s))
		r.unicast(s, msgGameResult(result.Outcome))
	}

	r.endRound()
}
