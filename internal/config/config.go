package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/tatianab/munchkin/internal/dice"
	"github.com/tatianab/munchkin/internal/session"
)

// Config holds the application configuration.
type Config struct {
	Players     int    `env:"MUNCHKIN_PLAYERS" envDefault:"4"`
	Seed        int64  `env:"MUNCHKIN_SEED"` // 0 picks a fresh seed
	CatalogPath string `env:"MUNCHKIN_CATALOG"`
	SaveDir     string `env:"MUNCHKIN_SAVE_DIR" envDefault:".saves"`
	LogLevel    string `env:"MUNCHKIN_LOG_LEVEL" envDefault:"info"`
	LogFile     string `env:"MUNCHKIN_LOG_FILE" envDefault:"munchkin.log"`
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Players < session.MinPlayers || cfg.Players > session.MaxPlayers {
		return nil, fmt.Errorf("MUNCHKIN_PLAYERS must be between %d and %d, got %d", session.MinPlayers, session.MaxPlayers, cfg.Players)
	}
	if cfg.Seed == 0 {
		seed, err := dice.NewSeed()
		if err != nil {
			return nil, err
		}
		cfg.Seed = seed
	}
	return &cfg, nil
}
