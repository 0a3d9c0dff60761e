package config

import (
	"errors"
	"os"

	"blackjack/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the blackjack console.
// None of these settings affect the rules of the game.
type Config struct {
	loaded bool
	Log    struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
	} `yaml:"log"`
	Display struct {
		Color       bool `yaml:"color" envconfig:"color"`
		ClearScreen bool `yaml:"clearScreen" envconfig:"clear_screen"`
	} `yaml:"display"`
	// ShuffleSeed makes the shoe reproducible when non-zero
	ShuffleSeed int64 `yaml:"shuffleSeed" envconfig:"shuffle_seed"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	cfg := Config{}
	cfg.Log.Level = "warn"
	cfg.Log.Format = "text"
	cfg.Display.Color = true
	cfg.Display.ClearScreen = true

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error, the defaults are used instead.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("BLACKJACK_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return err
	default:
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("blackjack", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
