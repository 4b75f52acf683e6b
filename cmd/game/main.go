package main

import (
	"fmt"
	"os"

	"github.com/tatianab/munchkin/internal/config"
	"github.com/tatianab/munchkin/internal/session"
	"github.com/tatianab/munchkin/internal/tui"
	"go.uber.org/zap"
)

// Usage: game [save name]. A name that has been saved before is resumed.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		fmt.Printf("Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	name := tui.DefaultSaveName
	if len(os.Args) > 1 {
		name = os.Args[1]
	}

	s, err := openSession(cfg, name, logger)
	if err != nil {
		fmt.Printf("Error starting game: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(s, cfg.SaveDir, name); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

func openSession(cfg *config.Config, name string, logger *zap.Logger) (*session.Session, error) {
	saved, err := session.List(cfg.SaveDir)
	if err != nil {
		return nil, err
	}
	for _, n := range saved {
		if n == name {
			logger.Info("resuming session", zap.String("name", name))
			return session.Load(cfg.SaveDir, name, logger)
		}
	}
	return tui.NewSession(cfg, logger)
}
