package session

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tatianab/munchkin/internal/dice"
	"github.com/tatianab/munchkin/internal/engine"
	"github.com/tatianab/munchkin/internal/models"
	"github.com/tatianab/munchkin/internal/piles"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type meta struct {
	Seed    int64 `yaml:"seed"`
	Players int   `yaml:"players"`
}

// Save writes the session to dir/name as players.yaml, piles.yaml and
// session.yaml. session.yaml is written last and marks a complete save.
func (s *Session) Save(dir, name string) error {
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(path, 0755); err != nil {
		return err
	}

	files := []struct {
		name string
		v    any
	}{
		{"players.yaml", s.Players},
		{"piles.yaml", s.Piles().Snapshot()},
		{"session.yaml", meta{Seed: s.Seed, Players: len(s.Players)}},
	}
	for _, f := range files {
		data, err := yaml.Marshal(f.v)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", f.name, err)
		}
		if err := os.WriteFile(filepath.Join(path, f.name), data, 0644); err != nil {
			return err
		}
	}
	s.logger.Info("session saved", zap.String("path", path))
	return nil
}

// Load restores a saved session. The random source is reseeded from the
// saved seed, so rolls after a load do not continue the original sequence.
func Load(dir, name string, logger *zap.Logger) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	path := filepath.Join(dir, name)

	var m meta
	if err := readYAML(filepath.Join(path, "session.yaml"), &m); err != nil {
		return nil, err
	}
	var players []*models.Player
	if err := readYAML(filepath.Join(path, "players.yaml"), &players); err != nil {
		return nil, err
	}
	if len(players) != m.Players {
		return nil, fmt.Errorf("session %s: expected %d players, found %d", name, m.Players, len(players))
	}
	var state piles.State
	if err := readYAML(filepath.Join(path, "piles.yaml"), &state); err != nil {
		return nil, err
	}

	src := dice.NewSource(m.Seed)
	pm, err := piles.Restore(state, src, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("session loaded", zap.String("path", path))
	return &Session{
		Seed:    m.Seed,
		Players: players,
		Engine:  engine.New(pm, dice.NewRoller(src), logger),
		logger:  logger,
	}, nil
}

func readYAML(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

// List returns the names of the sessions saved under dir.
func List(dir string) ([]string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return []string{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var sessions []string
	for _, entry := range entries {
		if entry.IsDir() {
			if _, err := os.Stat(filepath.Join(dir, entry.Name(), "session.yaml")); err == nil {
				sessions = append(sessions, entry.Name())
			}
		}
	}
	return sessions, nil
}
