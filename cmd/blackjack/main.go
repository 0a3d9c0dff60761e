package main

import (
	"errors"
	"io"
	"os"
	"strings"

	"blackjack/internal/config"
	"blackjack/internal/console"
	"blackjack/internal/rng"
	"blackjack/pkg/blackjack"
	"blackjack/pkg/deck"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Instance()
	setupLogger(cfg)

	if !cfg.Display.Color {
		pterm.DisableColor()
	}

	display := console.NewDisplay(os.Stdout, console.Options{
		ClearScreen: cfg.Display.ClearScreen && console.IsTerminal(os.Stdout),
	})

	if cfg.ShuffleSeed != 0 {
		logrus.WithField("seed", cfg.ShuffleSeed).Warn("using a seeded shoe")
	}

	shoe := deck.New(rng.New(cfg.ShuffleSeed))
	game := blackjack.NewGame(shoe, console.NewInput(os.Stdin, os.Stdout), display, logrus.StandardLogger())
	if err := game.Run(); err != nil {
		if errors.Is(err, io.EOF) {
			logrus.Debug("input closed")
			return
		}

		logrus.WithError(err).Fatal("game aborted")
	}
}

func setupLogger(cfg config.Config) {
	logrus.SetOutput(os.Stderr)

	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(cfg.Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
