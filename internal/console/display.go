package console

import (
	"fmt"
	"io"
	"strings"

	"blackjack/pkg/blackjack"
	"blackjack/pkg/deck"

	"github.com/pterm/pterm"
)

// Banner is shown at the top of every fresh screen
const Banner = "Let's Play Blackjack!"

// bannerBox frames the banner with 10 columns either side of the text
var bannerBox = pterm.DefaultBox.
	WithVerticalString("│").
	WithHorizontalString("─").
	WithBottomRightCornerString("┌").
	WithBottomLeftCornerString("┐").
	WithTopRightCornerString("└").
	WithTopLeftCornerString("┘").
	WithLeftPadding(10).
	WithRightPadding(10).
	WithTopPadding(0).
	WithBottomPadding(0).
	WithBoxStyle(pterm.NewStyle()).
	WithTextStyle(pterm.NewStyle())

const (
	cardTop    = "╔═════╗"
	cardBlank  = "║     ║"
	cardBottom = "╚═════╝"
	cardBack   = "║▒▒▒▒▒║"
	separator  = "───────────────────────────────────────────"
)

// Options control how the table is drawn
type Options struct {
	// ClearScreen emits the terminal clear sequence before each banner
	ClearScreen bool
}

var _ blackjack.Display = (*Display)(nil)

// Display draws the table as text
type Display struct {
	out     io.Writer
	options Options
}

// NewDisplay returns a Display writing to out
func NewDisplay(out io.Writer, options Options) *Display {
	return &Display{
		out:     out,
		options: options,
	}
}

// ClearScreen clears the terminal (if enabled) and draws the banner
func (d *Display) ClearScreen() {
	if d.options.ClearScreen {
		d.print(clearSequence)
	}

	d.print(bannerBox.Sprint(Banner), "\n\n")
}

// Dealer draws the dealer's name and hand, followed by a blank line
func (d *Display) Dealer(name string, hand deck.Hand, total int, masked bool) {
	d.println(name)
	d.printLines(RenderHand(hand, total, masked))
	d.println()
}

// Player draws the player's name, cash, bet and hand
func (d *Display) Player(name string, bankroll, bet int, hand deck.Hand, total int) {
	d.println(fmt.Sprintf("%s\t\tCash: $%s\t\tBet: $%s", name, blackjack.FormatMoney(bankroll), blackjack.FormatMoney(bet)))
	d.printLines(RenderHand(hand, total, false))
}

// Outcome announces the result of the round
func (d *Display) Outcome(outcome blackjack.Outcome) {
	style := pterm.FgRed
	switch {
	case outcome.IsWin():
		style = pterm.FgGreen
	case outcome == blackjack.OutcomePush:
		style = pterm.FgYellow
	}

	d.println(style.Sprint(outcome.Message()))
}

// Payout announces the amount, in cents, returned to the player
func (d *Display) Payout(amount, multiplier int) {
	d.println(fmt.Sprintf("Payout: $%s (%dx)", blackjack.FormatMoney(amount), multiplier))
}

// Separator marks the end of a round
func (d *Display) Separator() {
	d.print("\n", separator, "\n\n")
}

func (d *Display) print(a ...string) {
	_, _ = io.WriteString(d.out, strings.Join(a, ""))
}

func (d *Display) println(a ...string) {
	d.print(append(a, "\n")...)
}

func (d *Display) printLines(lines []string) {
	for _, line := range lines {
		d.println(line)
	}
}

// RenderHand returns the five text lines of a hand, cards side by side.
// A masked hand is drawn as a single face-down card without a total.
func RenderHand(hand deck.Hand, total int, masked bool) []string {
	if masked {
		return []string{cardTop, cardBack, cardBack, cardBack, cardBottom}
	}

	lines := make([]string, 5)
	for _, card := range hand {
		for i, line := range renderCard(card) {
			lines[i] += line
		}
	}

	lines[2] += fmt.Sprintf("\tTotal: %d", total)
	return lines
}

func renderCard(card *deck.Card) [5]string {
	symbol := card.Symbol()
	glyph := card.Suit.Glyph()
	if card.Suit.IsRed() {
		glyph = pterm.FgRed.Sprint(glyph)
	}

	spacer := " "
	if len(symbol) == 2 {
		spacer = ""
	}

	return [5]string{
		cardTop,
		fmt.Sprintf("║%s %s %s║", symbol, spacer, glyph),
		cardBlank,
		fmt.Sprintf("║%s %s %s║", glyph, spacer, symbol),
		cardBottom,
	}
}
