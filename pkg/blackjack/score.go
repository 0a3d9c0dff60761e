package blackjack

import "blackjack/pkg/deck"

const (
	blackjackTotal  = 21
	dealerStandsOn  = 17
	softAceValue    = 11
	faceCardValue   = 10
	aceHardDiscount = softAceValue - 1
)

// CardValue returns the value of a card before any ace adjustment
func CardValue(card *deck.Card) int {
	switch {
	case card.Rank == deck.Ace:
		return softAceValue
	case card.Rank >= deck.Jack:
		return faceCardValue
	}

	return card.Rank
}

// Total returns the blackjack total of the hand.
// Every ace starts at 11. Then, walking the aces in hand order, each ace drops
// to 1 if the running total is still over 21 when it is reached.
// Totals over 21 are returned as-is.
func Total(hand deck.Hand) int {
	total := 0
	for _, card := range hand {
		total += CardValue(card)
	}

	for _, card := range hand {
		if card.Rank == deck.Ace && total > blackjackTotal {
			total -= aceHardDiscount
		}
	}

	return total
}
