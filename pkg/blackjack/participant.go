package blackjack

import (
	"fmt"

	"blackjack/pkg/deck"
)

// Participant is a seat at the table
type Participant interface {
	Name() string
	Reset()
	Deal(shoe Shoe) error
	Hand() deck.Hand
	Total() int
	Display(d Display, masked bool)
	TakeTurn(r *Round) error
}

var (
	_ Participant = (*Player)(nil)
	_ Participant = (*Dealer)(nil)
)

// seat is the state shared by both participants
type seat struct {
	name string
	hand deck.Hand
}

// Name returns the participant's name
func (s *seat) Name() string {
	return s.name
}

// Reset empties the hand
func (s *seat) Reset() {
	s.hand = make(deck.Hand, 0, 5)
}

// Deal draws a random card from the shoe into the hand
func (s *seat) Deal(shoe Shoe) error {
	card, err := shoe.DrawRandom()
	if err != nil {
		return fmt.Errorf("could not deal to %s: %w", s.name, err)
	}

	s.hand.AddCard(card)
	return nil
}

// Hand returns the cards held, in the order they were dealt
func (s *seat) Hand() deck.Hand {
	return s.hand
}

// Total returns the blackjack total of the hand
func (s *seat) Total() int {
	return Total(s.hand)
}
