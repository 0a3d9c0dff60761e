package deck

// Hand represents an ordered collection of cards
type Hand []*Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// LastCard returns the last card in the hand or nil if the cards are empty
func (h Hand) LastCard() *Card {
	n := len(h)
	if n == 0 {
		return nil
	}

	return h[n-1]
}

func (h Hand) String() string {
	return CardsToString(h)
}
