// Package session wires players, piles and the effect engine into one game.
package session

import (
	"fmt"

	"github.com/tatianab/munchkin/internal/catalog"
	"github.com/tatianab/munchkin/internal/dice"
	"github.com/tatianab/munchkin/internal/engine"
	"github.com/tatianab/munchkin/internal/models"
	"github.com/tatianab/munchkin/internal/piles"
	"go.uber.org/zap"
)

const (
	MinPlayers = 1
	MaxPlayers = 6

	// Cards of each kind dealt to every player at setup.
	StartingCards = 4
)

// Options configures a new session.
type Options struct {
	Players int
	Seed    int64
	Catalog *catalog.Catalog // nil means the default catalog
	Logger  *zap.Logger
}

// Session is one game in progress.
type Session struct {
	Seed    int64
	Players []*models.Player
	Engine  *engine.Engine
	logger  *zap.Logger
}

// New sets up a game: builds the decks, shuffles them with a source seeded
// by opts.Seed and deals the starting hands.
func New(opts Options) (*Session, error) {
	if opts.Players < MinPlayers || opts.Players > MaxPlayers {
		return nil, fmt.Errorf("players must be between %d and %d, got %d", MinPlayers, MaxPlayers, opts.Players)
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	cat := opts.Catalog
	if cat == nil {
		var err error
		if cat, err = catalog.Default(); err != nil {
			return nil, err
		}
	}

	src := dice.NewSource(opts.Seed)
	door, treasure := cat.Build()
	pm, err := piles.NewManager(door, treasure, src, logger)
	if err != nil {
		return nil, fmt.Errorf("build piles: %w", err)
	}

	s := &Session{
		Seed:   opts.Seed,
		Engine: engine.New(pm, dice.NewRoller(src), logger),
		logger: logger,
	}
	for i := 1; i <= opts.Players; i++ {
		sex := models.Male
		if i%2 == 0 {
			sex = models.Female
		}
		s.Players = append(s.Players, models.NewPlayer(i, sex))
	}
	if err := s.deal(); err != nil {
		return nil, err
	}
	logger.Info("session created",
		zap.Int64("seed", opts.Seed),
		zap.Int("players", opts.Players),
		zap.Int("door", pm.Size(models.Door)),
		zap.Int("treasure", pm.Size(models.Treasure)))
	return s, nil
}

func (s *Session) deal() error {
	for _, kind := range []models.Affinity{models.Door, models.Treasure} {
		for n := 0; n < StartingCards; n++ {
			for _, p := range s.Players {
				if _, err := s.Engine.DrawToHand(p, kind); err != nil {
					return fmt.Errorf("deal to player %d: %w", p.TurnNumber, err)
				}
			}
		}
	}
	return nil
}

// Player returns the player with the given turn number.
func (s *Session) Player(turn int) (*models.Player, error) {
	if turn < 1 || turn > len(s.Players) {
		return nil, &models.OutOfRangeError{Position: turn, Size: len(s.Players)}
	}
	return s.Players[turn-1], nil
}

func (s *Session) Piles() *piles.Manager { return s.Engine.Piles() }
