// Package piles manages the door and treasure draw piles and their discards.
package piles

import (
	"fmt"

	"github.com/tatianab/munchkin/internal/models"
	"go.uber.org/zap"
)

// Shuffler permutes n elements uniformly. dice.Source satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Pile is an ordered stack of cards. The end of the slice is the top.
type Pile struct {
	cards []*models.Card
}

func (p *Pile) Len() int { return len(p.cards) }

func (p *Pile) push(c *models.Card) {
	p.cards = append(p.cards, c)
}

func (p *Pile) pop() *models.Card {
	n := len(p.cards)
	c := p.cards[n-1]
	p.cards[n-1] = nil
	p.cards = p.cards[:n-1]
	return c
}

// Manager owns both draw piles and both discards. It is not safe for
// concurrent use; a single caller drives the game.
type Manager struct {
	draw     map[models.Affinity]*Pile
	discards map[models.Affinity]*Pile
	shuffler Shuffler
	logger   *zap.Logger
}

// NewManager builds the piles from the catalog lists and shuffles both.
// Every card must carry the affinity of the list it is in.
func NewManager(door, treasure []*models.Card, shuffler Shuffler, logger *zap.Logger) (*Manager, error) {
	m := newManager(shuffler, logger)
	for _, kind := range []models.Affinity{models.Door, models.Treasure} {
		cards := door
		if kind == models.Treasure {
			cards = treasure
		}
		for _, c := range cards {
			if c.Affinity != kind {
				return nil, fmt.Errorf("%s in %s pile: %w", c.Name, kind, models.ErrWrongPile)
			}
			m.draw[kind].push(c)
		}
		m.shuffle(kind)
	}
	return m, nil
}

func newManager(shuffler Shuffler, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		draw:     map[models.Affinity]*Pile{models.Door: {}, models.Treasure: {}},
		discards: map[models.Affinity]*Pile{models.Door: {}, models.Treasure: {}},
		shuffler: shuffler,
		logger:   logger,
	}
}

func (m *Manager) piles(kind models.Affinity) (*Pile, *Pile, error) {
	if !kind.Valid() {
		return nil, nil, fmt.Errorf("%q: %w", kind, models.ErrUnknownPile)
	}
	return m.draw[kind], m.discards[kind], nil
}

// Draw removes the top card of the pile. An empty pile is first refilled
// from its discards and reshuffled.
func (m *Manager) Draw(kind models.Affinity) (*models.Card, error) {
	pile, discards, err := m.piles(kind)
	if err != nil {
		return nil, err
	}
	if pile.Len() == 0 {
		if discards.Len() == 0 {
			return nil, &models.EmptyPileError{Kind: kind}
		}
		m.logger.Info("reshuffling discards into pile",
			zap.String("pile", string(kind)),
			zap.Int("cards", discards.Len()))
		pile.cards = append(pile.cards, discards.cards...)
		discards.cards = nil
		m.shuffle(kind)
	}
	c := pile.pop()
	m.logger.Debug("drew card", zap.String("pile", string(kind)), zap.String("card", c.Name))
	return c, nil
}

// Discard resets c and places it on top of the matching discard.
func (m *Manager) Discard(kind models.Affinity, c *models.Card) error {
	_, discards, err := m.piles(kind)
	if err != nil {
		return err
	}
	if c.Affinity != kind {
		return fmt.Errorf("%s to %s discards: %w", c.Name, kind, models.ErrWrongPile)
	}
	c.Reset()
	discards.push(c)
	m.logger.Debug("discarded card", zap.String("pile", string(kind)), zap.String("card", c.Name))
	return nil
}

// TakeFromDiscards removes and returns the most recently discarded card
// matching pred, scanning toward the earliest discard. ok is false when no
// card matches.
func (m *Manager) TakeFromDiscards(kind models.Affinity, pred func(*models.Card) bool) (c *models.Card, ok bool, err error) {
	_, discards, err := m.piles(kind)
	if err != nil {
		return nil, false, err
	}
	for i := discards.Len() - 1; i >= 0; i-- {
		if pred(discards.cards[i]) {
			c = discards.cards[i]
			discards.cards = append(discards.cards[:i], discards.cards[i+1:]...)
			return c, true, nil
		}
	}
	return nil, false, nil
}

// Shuffle permutes the draw pile of kind.
func (m *Manager) Shuffle(kind models.Affinity) error {
	if _, _, err := m.piles(kind); err != nil {
		return err
	}
	m.shuffle(kind)
	return nil
}

func (m *Manager) shuffle(kind models.Affinity) {
	cards := m.draw[kind].cards
	m.shuffler.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}

// Size returns the number of cards left to draw.
func (m *Manager) Size(kind models.Affinity) int {
	if !kind.Valid() {
		return 0
	}
	return m.draw[kind].Len()
}

// DiscardSize returns the number of cards in the discards of kind.
func (m *Manager) DiscardSize(kind models.Affinity) int {
	if !kind.Valid() {
		return 0
	}
	return m.discards[kind].Len()
}

// Discards returns a copy of the discards of kind, earliest first.
func (m *Manager) Discards(kind models.Affinity) []*models.Card {
	if !kind.Valid() {
		return nil
	}
	return append([]*models.Card(nil), m.discards[kind].cards...)
}

// Peek returns the top card of the draw pile without removing it.
func (m *Manager) Peek(kind models.Affinity) (*models.Card, bool) {
	if !kind.Valid() || m.draw[kind].Len() == 0 {
		return nil, false
	}
	cards := m.draw[kind].cards
	return cards[len(cards)-1], true
}
