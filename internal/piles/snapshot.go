package piles

import (
	"fmt"

	"github.com/tatianab/munchkin/internal/models"
	"go.uber.org/zap"
)

// State is the serializable content of a Manager, bottom of each pile first.
type State struct {
	Door             []*models.Card `yaml:"door"`
	DoorDiscards     []*models.Card `yaml:"door_discards"`
	Treasure         []*models.Card `yaml:"treasure"`
	TreasureDiscards []*models.Card `yaml:"treasure_discards"`
}

func (m *Manager) Snapshot() State {
	return State{
		Door:             append([]*models.Card(nil), m.draw[models.Door].cards...),
		DoorDiscards:     m.Discards(models.Door),
		Treasure:         append([]*models.Card(nil), m.draw[models.Treasure].cards...),
		TreasureDiscards: m.Discards(models.Treasure),
	}
}

// Restore rebuilds a Manager from a snapshot without shuffling.
func Restore(s State, shuffler Shuffler, logger *zap.Logger) (*Manager, error) {
	m := newManager(shuffler, logger)
	load := []struct {
		kind  models.Affinity
		pile  *Pile
		cards []*models.Card
	}{
		{models.Door, m.draw[models.Door], s.Door},
		{models.Door, m.discards[models.Door], s.DoorDiscards},
		{models.Treasure, m.draw[models.Treasure], s.Treasure},
		{models.Treasure, m.discards[models.Treasure], s.TreasureDiscards},
	}
	for _, l := range load {
		for _, c := range l.cards {
			if c.Affinity != l.kind {
				return nil, fmt.Errorf("restore %s in %s pile: %w", c.Name, l.kind, models.ErrWrongPile)
			}
			l.pile.push(c)
		}
	}
	return m, nil
}
