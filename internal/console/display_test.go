package console

import (
	"blackjack/pkg/blackjack"
	"blackjack/pkg/deck"
	"blackjack/pkg/snapshot"
	"bytes"
	"github.com/stretchr/testify/assert"
	"os"
	"strings"
	"testing"
)

func TestRenderHand(t *testing.T) {
	a := assert.New(t)
	hand := deck.Hand(deck.CardsFromString("14s,10c"))

	a.Equal([]string{
		"╔═════╗╔═════╗",
		"║A   ♠║║10  ♣║",
		"║     ║║     ║\tTotal: 21",
		"║♠   A║║♣  10║",
		"╚═════╝╚═════╝",
	}, RenderHand(hand, 21, false))
}

func TestRenderHand_masked(t *testing.T) {
	hand := deck.Hand(deck.CardsFromString("14s,10c,5d"))

	assert.Equal(t, []string{
		"╔═════╗",
		"║▒▒▒▒▒║",
		"║▒▒▒▒▒║",
		"║▒▒▒▒▒║",
		"╚═════╝",
	}, RenderHand(hand, 20, true))
}

func TestRenderHand_redSuit(t *testing.T) {
	lines := RenderHand(deck.Hand(deck.CardsFromString("12h")), 10, false)
	assert.Equal(t, 5, len(lines))
	assert.Contains(t, lines[1], "Q")
	assert.Contains(t, lines[1], "♥")
	assert.Contains(t, lines[2], "Total: 10")
}

func TestDisplay_seats(t *testing.T) {
	a := assert.New(t)
	out := &bytes.Buffer{}
	d := NewDisplay(out, Options{})

	d.Dealer("Dealer", deck.Hand(deck.CardsFromString("10c,7s")), 17, true)
	a.Equal("Dealer\n╔═════╗\n║▒▒▒▒▒║\n║▒▒▒▒▒║\n║▒▒▒▒▒║\n╚═════╝\n\n", out.String())
	a.NotContains(out.String(), "Total")

	out.Reset()
	d.Dealer("Dealer", deck.Hand(deck.CardsFromString("10c,7s")), 17, false)
	a.Contains(out.String(), "Total: 17")

	out.Reset()
	d.Player("Sam", 90000, 10000, deck.Hand(deck.CardsFromString("9c,9s")), 18)
	a.True(strings.HasPrefix(out.String(), "Sam\t\tCash: $900.00\t\tBet: $100.00\n"))
	a.Contains(out.String(), "Total: 18")
}

func TestDisplay_outcome(t *testing.T) {
	a := assert.New(t)
	out := &bytes.Buffer{}
	d := NewDisplay(out, Options{})

	d.Outcome(blackjack.OutcomePlayerBlackjack)
	d.Payout(30000, 3)
	d.Separator()

	a.Contains(out.String(), "Blackjack!")
	a.Contains(out.String(), "Payout: $300.00 (3x)\n")
	a.True(strings.HasSuffix(out.String(), separator+"\n\n"))
}

func TestDisplay_ClearScreen(t *testing.T) {
	a := assert.New(t)
	out := &bytes.Buffer{}

	NewDisplay(out, Options{ClearScreen: true}).ClearScreen()
	a.True(strings.HasPrefix(out.String(), clearSequence))
	a.Contains(out.String(), Banner)

	out.Reset()
	NewDisplay(out, Options{}).ClearScreen()
	a.NotContains(out.String(), clearSequence)
	a.Contains(out.String(), Banner)
}

func TestDisplay_banner(t *testing.T) {
	out := &bytes.Buffer{}
	NewDisplay(out, Options{}).ClearScreen()
	snapshot.ValidateSnapshot(t, out.String(), 0)
}

func TestIsTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	assert.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTerminal(f))
}

func TestDisplay_table(t *testing.T) {
	out := &bytes.Buffer{}
	d := NewDisplay(out, Options{})

	d.Dealer("Dealer", deck.Hand(deck.CardsFromString("10c,7s")), 17, true)
	d.Player("Sam", 90000, 10000, deck.Hand(deck.CardsFromString("14s,13c")), 21)
	snapshot.ValidateSnapshot(t, out.String(), 0)

	out.Reset()
	d.Dealer("Dealer", deck.Hand(deck.CardsFromString("10c,7s")), 17, false)
	d.Player("Sam", 90000, 10000, deck.Hand(deck.CardsFromString("14s,13c")), 21)
	snapshot.ValidateSnapshot(t, out.String(), 0)
}
