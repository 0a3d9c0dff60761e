package blackjack

import (
	"fmt"
	"io"

	"blackjack/pkg/deck"
)

type scriptedInput struct {
	lines   []string
	prompts []string
}

func newScriptedInput(lines ...string) *scriptedInput {
	return &scriptedInput{lines: lines}
}

func (s *scriptedInput) Prompt(message string) (string, error) {
	s.prompts = append(s.prompts, message)
	if len(s.lines) == 0 {
		return "", io.EOF
	}

	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

type recordingDisplay struct {
	clears   int
	events   []string
	outcomes []Outcome
	payouts  []int
}

func (r *recordingDisplay) ClearScreen() {
	r.clears++
	r.events = append(r.events, "clear")
}

func (r *recordingDisplay) Dealer(name string, hand deck.Hand, total int, masked bool) {
	if masked {
		r.events = append(r.events, fmt.Sprintf("%s masked", name))
		return
	}

	r.events = append(r.events, fmt.Sprintf("%s %s %d", name, hand, total))
}

func (r *recordingDisplay) Player(name string, bankroll, bet int, hand deck.Hand, total int) {
	r.events = append(r.events, fmt.Sprintf("%s $%s $%s %s %d", name, FormatMoney(bankroll), FormatMoney(bet), hand, total))
}

func (r *recordingDisplay) Outcome(outcome Outcome) {
	r.outcomes = append(r.outcomes, outcome)
	r.events = append(r.events, outcome.Message())
}

func (r *recordingDisplay) Payout(amount, multiplier int) {
	r.payouts = append(r.payouts, amount)
	r.events = append(r.events, fmt.Sprintf("payout %s %dx", FormatMoney(amount), multiplier))
}

func (r *recordingDisplay) Separator() {
	r.events = append(r.events, "---")
}

// stackedShoe deals a fixed sequence of cards per round, in order
type stackedShoe struct {
	rounds []string
	cards  []*deck.Card
	builds int
}

func newStackedShoe(rounds ...string) *stackedShoe {
	return &stackedShoe{rounds: rounds}
}

func (s *stackedShoe) Build() {
	s.cards = nil
	if s.builds < len(s.rounds) {
		s.cards = deck.CardsFromString(s.rounds[s.builds])
	}

	s.builds++
}

func (s *stackedShoe) Shuffle() {}

func (s *stackedShoe) DrawRandom() (*deck.Card, error) {
	if len(s.cards) == 0 {
		return nil, deck.ErrEndOfDeck
	}

	card := s.cards[0]
	s.cards = s.cards[1:]
	return card, nil
}

func (s *stackedShoe) CardsLeft() int {
	return len(s.cards)
}

func (s *stackedShoe) HashCode() string {
	return deck.Hand(s.cards).String()
}
