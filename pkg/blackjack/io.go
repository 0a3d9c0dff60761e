package blackjack

import (
	"fmt"

	"blackjack/pkg/deck"
)

// Input is a line-based prompt/response boundary
type Input interface {
	// Prompt displays message and returns the next line of input, trimmed.
	// An error is only returned when no more input can be read.
	Prompt(message string) (string, error)
}

// Display renders the table. Nothing it does feeds back into the game.
type Display interface {
	// ClearScreen starts a fresh screen with the banner
	ClearScreen()

	// Dealer renders the dealer's seat. If masked, the whole hand is shown as a single face-down card
	Dealer(name string, hand deck.Hand, total int, masked bool)

	// Player renders the player's seat. Amounts are in cents.
	Player(name string, bankroll, bet int, hand deck.Hand, total int)

	// Outcome announces how the round ended
	Outcome(outcome Outcome)

	// Payout announces the amount, in cents, returned to the player
	Payout(amount, multiplier int)

	// Separator ends a round
	Separator()
}

// Shoe holds the undealt cards for a round
type Shoe interface {
	Build()
	Shuffle()
	DrawRandom() (*deck.Card, error)
	CardsLeft() int
	HashCode() string
}

// FormatMoney formats an amount in cents as dollars, without the currency sign
func FormatMoney(cents int) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
