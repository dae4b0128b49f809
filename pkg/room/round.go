package room

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func (r *Room) join(s *Session) {
	if r.indexOf(s) >= 0 {
		return
	}

	s.inRound = false
	r.sessions = append(r.sessions, s)
	r.logger.WithField("player", s.String()).WithField("phase", r.phase).Info("player joined")

	r.broadcast(msgJoined(s, len(r.sessions)))
	r.unicast(s, msgWelcome(s))
}

func (r *Room) leave(s *Session) {
	idx := r.indexOf(s)
	if idx < 0 {
		return
	}

	r.sessions = append(r.sessions[:idx], r.sessions[idx+1:]...)
	r.logger.WithField("player", s.String()).WithField("phase", r.phase).Info("player left")
	r.broadcast(msgLeft(s))

	if len(r.sessions) == 0 {
		if r.phase != PhaseIdle {
			r.roundLogger().Info("room is empty, abandoning round")
			r.endRound()
		}

		return
	}

	switch r.phase {
	case PhaseBetting:
		if s.inRound {
			r.checkAllBets()
		}
	case PhasePlaying:
		switch {
		case idx < r.turnIndex:
			r.turnIndex--
		case idx == r.turnIndex:
			// the next player slid into the departed player's slot
			r.nextTurnFrom(r.turnIndex)
		}
	}
}

func (r *Room) startGame(s *Session) error {
	if r.phase != PhaseIdle {
		return newRuleError(ErrWrongPhase, "A round is already in progress.")
	}

	if len(r.sessions) == 0 {
		return newRuleError(ErrNoPlayers, "There are no players in the room.")
	}

	r.roundID = uuid.New().String()
	r.dealerHand.Reset()
	for _, session := range r.sessions {
		session.resetRound()
	}

	r.setPhase(PhaseBetting)
	r.roundLogger().WithFields(logrus.Fields{
		"startedBy": s.String(),
		"players":   len(r.sessions),
	}).Info("betting phase started")

	r.broadcast(msgSeparator)
	r.broadcast(msgBettingPhase)
	for _, session := range r.sessions {
		r.unicast(session, msgYourBalance(session))
		r.unicast(session, msgBetPrompt)
	}
	r.broadcast(msgSeparator)

	return nil
}

func (r *Room) placeBet(s *Session, amount int) error {
	if r.phase != PhaseBetting {
		return newRuleError(ErrWrongPhase, "It is not betting time.")
	}

	if !s.inRound {
		return newRuleError(ErrWrongPhase, "You joined mid-round. Wait for the next round.")
	}

	if s.betPlaced {
		return newRuleError(ErrDuplicateBet, "You have already placed a bet.")
	}

	if amount <= 0 {
		return newRuleError(ErrInvalidArgument, "Bet must be greater than zero.")
	}

	if amount > s.balance {
		return newRuleError(ErrInsufficientBalance, "Insufficient balance.")
	}

	s.decreaseBalance(amount)
	s.currentBet = amount
	s.betPlaced = true

	r.roundLogger().WithField("player", s.String()).WithField("amount", amount).Debug("bet placed")
	r.broadcast(msgBetPlaced(s, amount))
	r.checkAllBets()

	return nil
}

// checkAllBets deals the round once everybody in it has bet
func (r *Room) checkAllBets() {
	players := 0
	for _, s := range r.sessions {
		if !s.inRound {
			continue
		}

		if !s.betPlaced {
			return
		}

		players++
	}

	if players == 0 {
		r.roundLogger().Info("nobody left in the round, abandoning")
		r.endRound()
		return
	}

	r.startRound()
}

func (r *Room) startRound() {
	r.setPhase(PhasePlaying)
	r.turnIndex = 0
	r.dealerHand.Reset()

	r.broadcast(msgSeparator)
	r.broadcast(msgRoundStart)

	dealerCard := r.shoe.Draw()
	r.dealerHand.AddCard(dealerCard)
	r.broadcast(msgDealerOpenCard(dealerCard, r.dealerHand.Score()))

	for _, s := range r.sessions {
		if !s.inRound {
			continue
		}

		s.hand.Reset()
		s.addCard(r.shoe.Draw())
		s.addCard(r.shoe.Draw())

		r.unicast(s, msgInitialDeal(dealerCard, s))
		if s.hand.IsBlackjack() {
			r.unicast(s, msgBlackjack)
		} else if s.hand.IsSoft() {
			r.unicast(s, msgSoftHand)
		}
	}

	r.broadcast(msgSeparator)
	r.nextTurnFrom(0)
}

func (r *Room) handlePlayerAction(s *Session, action Action) error {
	if r.phase != PhasePlaying {
		return newRuleError(ErrWrongPhase, "Game is not in progress.")
	}

	current := r.currentTurn()
	if current == nil {
		// cannot happen while Playing; the cursor is revalidated on every removal
		r.roundLogger().WithField("turnIndex", r.turnIndex).Error("turn cursor out of range")
		return newRuleError(ErrWrongPhase, "Game is not in progress.")
	}

	if s != current {
		return newRuleError(ErrNotYourTurn, "It is not your turn. (Current turn: %s)", current.ID)
	}

	log := r.roundLogger().WithField("player", s.String()).WithField("action", action)

	switch action {
	case ActionHit:
		card := r.shoe.Draw()
		s.addCard(card)
		r.broadcast(msgHit(s, card))
		log.WithField("score", s.score()).Debug("player hit")

		if s.hand.IsBust() {
			r.broadcast(msgBust(s))
			r.nextTurnFrom(r.turnIndex + 1)
			return nil
		}

		if s.hand.IsSoft() {
			r.unicast(s, msgSoftHandHit)
		}
		r.unicast(s, msgYourTurn)
	case ActionStand:
		r.broadcast(msgStand(s))
		log.WithField("score", s.score()).Debug("player stood")
		r.nextTurnFrom(r.turnIndex + 1)
	case ActionDoubleDown:
		if s.balance < s.currentBet {
			return newRuleError(ErrInsufficientBalance, "Insufficient balance for Double Down.")
		}

		s.decreaseBalance(s.currentBet)
		s.currentBet *= 2

		card := r.shoe.Draw()
		s.addCard(card)
		r.broadcast(msgDoubleDown(s, card))
		log.WithField("score", s.score()).WithField("bet", s.currentBet).Debug("player doubled down")

		if s.hand.IsBust() {
			r.broadcast(msgDoubleDownBust(s))
		}
		r.nextTurnFrom(r.turnIndex + 1)
	case ActionSurrender:
		s.surrendered = true
		r.broadcast(msgSurrender(s))
		log.Debug("player surrendered")
		r.nextTurnFrom(r.turnIndex + 1)
	default:
		return newRuleError(ErrInvalidArgument, "Unknown action: %d", int(action))
	}

	return nil
}

// currentTurn returns the turn holder, or nil if the cursor is out of range
func (r *Room) currentTurn() *Session {
	if r.turnIndex < 0 || r.turnIndex >= len(r.sessions) {
		return nil
	}

	return r.sessions[r.turnIndex]
}

// nextTurnFrom hands the turn to the first player in the round at or after index
// Running off the end of the table moves play to the dealer
func (r *Room) nextTurnFrom(index int) {
	for i := index; i < len(r.sessions); i++ {
		s := r.sessions[i]
		if !s.inRound {
			continue
		}

		r.turnIndex = i
		r.broadcast(msgTurn(s))
		r.unicast(s, msgYourTurn)
		return
	}

	r.turnIndex = len(r.sessions)
	r.playDealerTurn()
}

func (r *Room) setPhase(phase Phase) {
	r.roundLogger().WithField("from", r.phase).WithField("to", phase).Debug("phase changed")
	r.phase = phase
}

// endRound returns the room to Idle
func (r *Room) endRound() {
	r.setPhase(PhaseIdle)
	r.turnIndex = 0
	r.broadcast(msgGameEnd)
}
