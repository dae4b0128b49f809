package deck

import (
	"fmt"
	"strconv"
	"strings"
)

// Rank is the rank of a playing card
// Suits have no meaning in blackjack, so a card is identified by its rank alone
type Rank int

// rank constants
const (
	Ace   Rank = 1
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

// RankCount is the number of distinct ranks
const RankCount = 13

// Card is an individual playing card
type Card struct {
	Rank Rank `json:"rank"`
}

// NewCard returns a card of the given rank
func NewCard(rank Rank) *Card {
	if rank < Ace || rank > King {
		panic(fmt.Sprintf("invalid rank: %d", rank))
	}

	return &Card{Rank: rank}
}

func (c *Card) String() string {
	switch c.Rank {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}

	return strconv.Itoa(int(c.Rank))
}

// MarshalText renders the card as its display symbol
func (c *Card) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// IsAce returns true if the card is an ace
func (c *Card) IsAce() bool {
	return c.Rank == Ace
}

// Value is the base value of the card. Aces count as 1 and face cards as 10
func (c *Card) Value() int {
	if c.Rank >= Ten {
		return 10
	}

	return int(c.Rank)
}

// CardFromString returns a Card from its display symbol (A, 2-10, J, Q, K)
func CardFromString(s string) *Card {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return nil
	case "A":
		return NewCard(Ace)
	case "J":
		return NewCard(Jack)
	case "Q":
		return NewCard(Queen)
	case "K":
		return NewCard(King)
	}

	rank, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || rank < int(Two) || rank > int(Ten) {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	return NewCard(Rank(rank))
}

// CardsFromString will return a slice of cards from a string like A,10,K
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardsToString will convert a slice of cards to a string in the format of A,10,K
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = card.String()
	}

	return strings.Join(c, ",")
}
