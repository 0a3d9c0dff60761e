package blackjack

import (
	"fmt"
)

// Outcome is how a round ended
type Outcome int

// Outcome constants, in the order they are checked
const (
	OutcomeNone Outcome = iota
	OutcomeDealerBlackjack
	OutcomePlayerBust
	OutcomePush
	OutcomePlayerBlackjack
	OutcomeDealerBust
	OutcomePlayerWins
	OutcomeDealerWins
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeDealerBlackjack:
		return "dealer-blackjack"
	case OutcomePlayerBust:
		return "player-bust"
	case OutcomePush:
		return "push"
	case OutcomePlayerBlackjack:
		return "player-blackjack"
	case OutcomeDealerBust:
		return "dealer-bust"
	case OutcomePlayerWins:
		return "player-wins"
	case OutcomeDealerWins:
		return "dealer-wins"
	}

	panic(fmt.Sprintf("unknown outcome: %d", o))
}

// Message is the line announced to the player
func (o Outcome) Message() string {
	switch o {
	case OutcomeDealerBlackjack:
		return "Dealer has blackjack :("
	case OutcomePlayerBust:
		return "Bust :("
	case OutcomePush:
		return "Game is a draw :|"
	case OutcomePlayerBlackjack:
		return "Blackjack!"
	case OutcomeDealerBust:
		return "Dealer busts :)"
	case OutcomePlayerWins:
		return "Player wins :)"
	case OutcomeDealerWins:
		return "Dealer wins :("
	}

	return ""
}

// Multiplier is how many times the bet is paid back. Zero means the bet is lost.
func (o Outcome) Multiplier() int {
	switch o {
	case OutcomePush:
		return 1
	case OutcomeDealerBust, OutcomePlayerWins:
		return 2
	case OutcomePlayerBlackjack:
		return 3
	}

	return 0
}

// IsWin returns true if the player came out ahead
func (o Outcome) IsWin() bool {
	return o.Multiplier() > 1
}

// ResolveOutcome decides the round from the final totals. The first matching rule wins.
func ResolveOutcome(playerTotal, dealerTotal int) (Outcome, error) {
	switch {
	case dealerTotal == blackjackTotal && playerTotal < blackjackTotal:
		return OutcomeDealerBlackjack, nil
	case playerTotal > blackjackTotal:
		return OutcomePlayerBust, nil
	case dealerTotal == playerTotal:
		return OutcomePush, nil
	case playerTotal == blackjackTotal:
		return OutcomePlayerBlackjack, nil
	case dealerTotal > blackjackTotal:
		return OutcomeDealerBust, nil
	case playerTotal < blackjackTotal && dealerTotal < playerTotal:
		return OutcomePlayerWins, nil
	case dealerTotal > playerTotal:
		return OutcomeDealerWins, nil
	}

	return OutcomeNone, fmt.Errorf("player %d, dealer %d: %w", playerTotal, dealerTotal, ErrNoOutcome)
}
