package blackjack

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Player is the human seat. Decisions come from an Input.
type Player struct {
	seat
	bankroll int // cents
	bet      int // cents
	input    Input
}

// NewPlayer returns a player with no name and no money
func NewPlayer(input Input) *Player {
	p := &Player{input: input}
	p.Reset()
	return p
}

// Bankroll returns the cash not currently wagered, in cents
func (p *Player) Bankroll() int {
	return p.bankroll
}

// Bet returns the current wager, in cents
func (p *Player) Bet() int {
	return p.bet
}

// AskName prompts until a non-empty name is given
func (p *Player) AskName() error {
	p.name = ""
	for p.name == "" {
		name, err := p.input.Prompt("What's your name?")
		if err != nil {
			return err
		}

		p.name = name
	}

	return nil
}

// AskBankroll prompts until a positive starting bankroll is given
func (p *Player) AskBankroll() error {
	p.bankroll = 0
	msg := fmt.Sprintf("Hello, %s! How much would you like to play with today? (e.g. 500)", p.name)
	for p.bankroll <= 0 {
		line, err := p.input.Prompt(msg)
		if err != nil {
			return err
		}

		if amount, ok := parseAmount(line); ok {
			p.bankroll = amount
		}
	}

	return nil
}

// PlaceBet prompts until 0 < bet <= bankroll, then takes the bet out of the bankroll
func (p *Player) PlaceBet() error {
	p.bet = 0
	msg := fmt.Sprintf("How much would you like to bet this hand? [Cash: $%s]", FormatMoney(p.bankroll))
	for {
		line, err := p.input.Prompt(msg)
		if err != nil {
			return err
		}

		if bet, ok := parseAmount(line); ok && bet <= p.bankroll {
			p.bet = bet
			p.bankroll -= bet
			return nil
		}
	}
}

// Payout returns bet * multiplier to the bankroll and returns the amount paid
func (p *Player) Payout(multiplier int) int {
	amount := p.bet * multiplier
	p.bankroll += amount
	return amount
}

// Display renders the player's seat. The player's hand is never masked.
func (p *Player) Display(d Display, _ bool) {
	d.Player(p.name, p.bankroll, p.bet, p.hand, p.Total())
}

// TakeTurn asks hit or stay until the player stays or reaches 21
func (p *Player) TakeTurn(r *Round) error {
	for p.Total() < blackjackTotal {
		hit, err := p.askHit()
		if err != nil {
			return err
		}

		if !hit {
			break
		}

		if err := r.deal(p); err != nil {
			return err
		}

		r.display.ClearScreen()
		r.ShowTable(true)
	}

	r.log.WithField("playerTotal", p.Total()).Debug("player stands")
	return nil
}

func (p *Player) askHit() (bool, error) {
	for {
		line, err := p.input.Prompt("Hit or Stay? (h/s)")
		if err != nil {
			return false, err
		}

		switch strings.ToLower(line) {
		case "h":
			return true, nil
		case "s":
			return false, nil
		}
	}
}

// maxAmount caps input so the cents always fit in an int, even after a 3x payout
const maxAmount = 1e12

// parseAmount parses a dollar amount, optionally prefixed with $, into cents.
// Amounts that round to zero cents or less are rejected.
func parseAmount(s string) (int, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "$")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || f > maxAmount {
		return 0, false
	}

	cents := math.Round(f * 100)
	if cents <= 0 {
		return 0, false
	}

	return int(cents), true
}
