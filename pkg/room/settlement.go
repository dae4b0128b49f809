package room

import (
	"blackjack-server/pkg/deck"
	"fmt"
)

// Outcome is the machine-readable result of a hand
type Outcome string

// Outcome constants
const (
	OutcomeWin  Outcome = "WIN"
	OutcomeLose Outcome = "LOSE"
	OutcomeTie  Outcome = "TIE"
)

// Result is how a hand settled against the dealer
type Result struct {
	Outcome Outcome `json:"outcome"`
	// Payout is what goes back to the balance. The bet was already taken when it was placed
	Payout  int    `json:"payout"`
	Message string `json:"message"`
}

// Settle resolves a hand against the dealer's final hand
// Rules are checked in order: surrender, player bust, dealer bust, blackjack, higher total, push
func Settle(hand deck.Hand, bet int, surrendered bool, dealer deck.Hand) Result {
	score := hand.Score()
	dealerScore := dealer.Score()

	switch {
	case surrendered:
		payout := bet / 2
		return Result{
			Outcome: OutcomeLose,
			Payout:  payout,
			Message: fmt.Sprintf("Surrender (Given up: %d returned)", payout),
		}
	case hand.IsBust():
		return Result{
			Outcome: OutcomeLose,
			Message: "Lose (Bust)",
		}
	case dealerScore > deck.Blackjack:
		payout := bet * 2
		return Result{
			Outcome: OutcomeWin,
			Payout:  payout,
			Message: fmt.Sprintf("Win! (Dealer Bust) - Prize: %d", payout),
		}
	case hand.IsBlackjack() && dealerScore != deck.Blackjack:
		// 2.5x, truncated
		payout := bet * 5 / 2
		return Result{
			Outcome: OutcomeWin,
			Payout:  payout,
			Message: fmt.Sprintf("Blackjack Win! (%d vs %d) - Prize: %d", score, dealerScore, payout),
		}
	case score > dealerScore:
		payout := bet * 2
		return Result{
			Outcome: OutcomeWin,
			Payout:  payout,
			Message: fmt.Sprintf("Win! (%d vs %d) - Prize: %d", score, dealerScore, payout),
		}
	case score == dealerScore:
		return Result{
			Outcome: OutcomeTie,
			Payout:  bet,
			Message: "Tie (Push)",
		}
	}

	return Result{
		Outcome: OutcomeLose,
		Message: fmt.Sprintf("Lose (%d vs %d) - Bet lost.", score, dealerScore),
	}
}
