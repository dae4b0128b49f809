package room

import (
	"blackjack-server/pkg/deck"
	"fmt"
)

// Lines sent to clients. Brackets, commas and colons are part of the wire format
const (
	msgSeparator     = "------------------------------------------------"
	msgBettingPhase  = "GAME_PHASE: Betting Phase Started!"
	msgBetPrompt     = "INFO: Please place your bet. (e.g., BET 100)"
	msgRoundStart    = "ROUND_START: Betting closed! The game begins."
	msgBlackjack     = "INFO: Blackjack! (21 points)"
	msgSoftHand      = "INFO: Soft Hand (Ace can be 11)"
	msgSoftHandHit   = "INFO: Soft Hand - You can hit safely!"
	msgYourTurn      = "YOUR_TURN: Choose action (HIT, STAND, DOUBLEDOWN, SURRENDER)."
	msgFinalResults  = "--- [Final Results] ---"
	msgGameEnd       = "GAME_END: Round ended. Type START to play again."
	gameResultPrefix = "GAME_RESULT:"
)

func msgJoined(s *Session, total int) string {
	return fmt.Sprintf("SERVER_MSG: Player [%s] joined. (Total: %d)", s.ID, total)
}

func msgWelcome(s *Session) string {
	return fmt.Sprintf("WELCOME: Welcome to the Blackjack Server! (ID: %s, Balance: %d)", s.ID, s.balance)
}

func msgLeft(s *Session) string {
	return fmt.Sprintf("SERVER_MSG: Player [%s] left.", s.ID)
}

func msgYourBalance(s *Session) string {
	return fmt.Sprintf("INFO: Your current balance is [%d].", s.balance)
}

func msgCurrentBalance(s *Session) string {
	return fmt.Sprintf("INFO: Current Balance is [%d].", s.balance)
}

func msgBetPlaced(s *Session, amount int) string {
	return fmt.Sprintf("SERVER_MSG: [%s] placed a bet of %d.", s.ID, amount)
}

func msgDealerOpenCard(card *deck.Card, score int) string {
	return fmt.Sprintf("INFO: Dealer's open card: [%s] (Score: %d)", card, score)
}

func msgInitialDeal(dealerCard *deck.Card, s *Session) string {
	return fmt.Sprintf("INITIAL_DEAL: Dealer=[%s], Cards=[%s], Total=[%d]", dealerCard, s.hand, s.score())
}

func msgTurn(s *Session) string {
	return fmt.Sprintf("TURN: It is [%s]'s turn.", s.ID)
}

func msgHit(s *Session, card *deck.Card) string {
	return fmt.Sprintf("ACTION: [%s] Hit! (Draw: %s, Score: %d)", s.ID, card, s.score())
}

func msgBust(s *Session) string {
	return fmt.Sprintf("RESULT: [%s] BUST! (Over 21)", s.ID)
}

func msgStand(s *Session) string {
	return fmt.Sprintf("ACTION: [%s] Stand. (Final Score: %d)", s.ID, s.score())
}

func msgDoubleDown(s *Session, card *deck.Card) string {
	return fmt.Sprintf("ACTION: [%s] Double Down! (Draw: %s, Final Score: %d)", s.ID, card, s.score())
}

func msgDoubleDownBust(s *Session) string {
	return fmt.Sprintf("RESULT: [%s] BUST! (Lost)", s.ID)
}

func msgSurrender(s *Session) string {
	return fmt.Sprintf("ACTION: [%s] Surrender. (Given up)", s.ID)
}

func msgDealerTurn(score int) string {
	return fmt.Sprintf("DEALER_TURN: All player turns ended. Dealer draws cards. (Current: %d)", score)
}

func msgDealerDraw(card *deck.Card, score int) string {
	return fmt.Sprintf("DEALER_DRAW: Dealer drew [%s]. (Dealer Score: %d)", card, score)
}

func msgDealerFinal(score int) string {
	return fmt.Sprintf("Dealer Final Score: %d", score)
}

func msgSettled(s *Session, result Result) string {
	return fmt.Sprintf("%s: %s", s.ID, result.Message)
}

func msgBalanceAfterSettlement(s *Session) string {
	return fmt.Sprintf("INFO: Balance after settlement: [%d]", s.balance)
}

func msgGameResult(outcome Outcome) string {
	return gameResultPrefix + string(outcome)
}

// ErrorLine formats an error for the wire
func ErrorLine(err error) string {
	return "ERROR: " + err.Error()
}
