package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"

	"blackjack/internal/rng"
)

// ErrEndOfDeck is an error when a draw is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck is the shoe of undealt cards for a round
type Deck struct {
	Cards []*Card `json:"cards"`
	rng   rng.Generator
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
// If g is nil, crypto/rand is used.
func New(g rng.Generator) *Deck {
	if g == nil {
		g = rng.Crypto{}
	}

	d := &Deck{rng: g}
	d.Build()
	return d
}

// Build discards any remaining cards and fills the deck with one card per suit and rank
func (d *Deck) Build() {
	cards := make([]*Card, 0, 52)
	for _, suit := range Suits() {
		for _, rank := range Ranks() {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Shuffle will shuffle the remaining cards in place
func (d *Deck) Shuffle() {
	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// DrawRandom removes and returns a card picked uniformly from the remaining cards
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) DrawRandom() (*Card, error) {
	n := len(d.Cards)
	if n <= 0 {
		return nil, ErrEndOfDeck
	}

	i := d.rng.Intn(n)
	card := d.Cards[i]

	cards := make([]*Card, 0, n-1)
	cards = append(cards, d.Cards[:i]...)
	d.Cards = append(cards, d.Cards[i+1:]...)

	return card, nil
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
