package blackjack

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Game runs rounds of blackjack until the player is out of money
type Game struct {
	shoe    Shoe
	display Display
	log     logrus.FieldLogger

	player *Player
	dealer *Dealer
}

// NewGame returns a new game. If logger is nil, the standard logger is used.
func NewGame(shoe Shoe, input Input, display Display, logger logrus.FieldLogger) *Game {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Game{
		shoe:    shoe,
		display: display,
		log:     logger,
		player:  NewPlayer(input),
		dealer:  NewDealer(),
	}
}

// Player returns the human seat
func (g *Game) Player() *Player {
	return g.player
}

// Dealer returns the dealer seat
func (g *Game) Dealer() *Dealer {
	return g.dealer
}

// Run asks for the player's name and bankroll, then plays rounds until the bankroll is gone
func (g *Game) Run() error {
	g.display.ClearScreen()
	if err := g.player.AskName(); err != nil {
		return err
	}

	g.display.ClearScreen()
	if err := g.player.AskBankroll(); err != nil {
		return err
	}

	g.display.ClearScreen()
	g.log.WithFields(logrus.Fields{
		"player":   g.player.Name(),
		"bankroll": g.player.Bankroll(),
	}).Info("game started")

	rounds := 0
	for g.player.Bankroll() > 0 {
		if _, err := g.PlayRound(); err != nil {
			return err
		}

		rounds++
	}

	g.log.WithField("rounds", rounds).Info("bankroll exhausted")
	return nil
}

// PlayRound plays a single round: bet, deal, both turns, then outcome and payout
func (g *Game) PlayRound() (*Round, error) {
	g.shoe.Build()
	g.shoe.Shuffle()

	if err := g.player.PlaceBet(); err != nil {
		return nil, err
	}

	g.display.ClearScreen()

	r := g.newRound()
	r.log.WithFields(logrus.Fields{
		"bet":      g.player.Bet(),
		"bankroll": g.player.Bankroll(),
		"shoe":     g.shoe.HashCode(),
	}).Debug("round started")

	g.player.Reset()
	g.dealer.Reset()
	for i := 0; i < 2; i++ {
		if err := r.deal(g.player); err != nil {
			return nil, err
		}

		if err := r.deal(g.dealer); err != nil {
			return nil, err
		}
	}

	r.ShowTable(true)

	if err := g.player.TakeTurn(r); err != nil {
		return nil, err
	}

	if err := g.dealer.TakeTurn(r); err != nil {
		return nil, err
	}

	g.display.ClearScreen()
	if err := r.resolve(); err != nil {
		return nil, err
	}

	r.ShowTable(false)
	return r, nil
}

// Round is a single hand, from the shuffle to the payout
type Round struct {
	ID          string
	Outcome     Outcome
	Payout      int // cents
	PlayerTotal int
	DealerTotal int

	shoe    Shoe
	display Display
	log     logrus.FieldLogger
	player  *Player
	dealer  *Dealer
}

func (g *Game) newRound() *Round {
	id := uuid.New().String()
	return &Round{
		ID:      id,
		shoe:    g.shoe,
		display: g.display,
		log:     g.log.WithField("round", id),
		player:  g.player,
		dealer:  g.dealer,
	}
}

// ShowTable renders the dealer then the player
func (r *Round) ShowTable(masked bool) {
	r.dealer.Display(r.display, masked)
	r.player.Display(r.display, false)
}

func (r *Round) deal(p Participant) error {
	if err := p.Deal(r.shoe); err != nil {
		return err
	}

	r.log.WithFields(logrus.Fields{
		"participant": p.Name(),
		"card":        p.Hand().LastCard().String(),
	}).Debug("card dealt")
	return nil
}

func (r *Round) resolve() error {
	r.PlayerTotal = r.player.Total()
	r.DealerTotal = r.dealer.Total()

	outcome, err := ResolveOutcome(r.PlayerTotal, r.DealerTotal)
	if err != nil {
		return fmt.Errorf("round %s: %w", r.ID, err)
	}

	r.Outcome = outcome
	r.display.Outcome(outcome)
	if m := outcome.Multiplier(); m > 0 {
		r.Payout = r.player.Payout(m)
		r.display.Payout(r.Payout, m)
	}

	r.display.Separator()

	r.log.WithFields(logrus.Fields{
		"playerTotal": r.PlayerTotal,
		"dealerTotal": r.DealerTotal,
		"outcome":     outcome.String(),
		"payout":      r.Payout,
		"bankroll":    r.player.Bankroll(),
		"cardsLeft":   r.shoe.CardsLeft(),
	}).Info("round resolved")
	return nil
}
