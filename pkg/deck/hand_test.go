package deck

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestHand_AddCard(t *testing.T) {
	a := assert.New(t)
	h := make(Hand, 0)
	a.Nil(h.LastCard())

	h.AddCard(CardFromString("14s"))
	h.AddCard(CardFromString("3c"))
	a.Equal("14s,3c", h.String())
	a.Equal("3c", CardToString(h.LastCard()))
}
