package piles

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tatianab/munchkin/internal/dice"
	"github.com/tatianab/munchkin/internal/models"
)

// keepOrder leaves piles in the order they were built.
type keepOrder struct{}

func (keepOrder) Shuffle(int, func(i, j int)) {}

func doorCards(n int) []*models.Card {
	cards := make([]*models.Card, n)
	for i := range cards {
		cards[i] = models.NewMonster(fmt.Sprintf("Monster %d", i+1), i+1, 1, 1, false)
	}
	return cards
}

func treasureCards(n int) []*models.Card {
	cards := make([]*models.Card, n)
	for i := range cards {
		cards[i] = models.NewOneShotTreasure(fmt.Sprintf("Potion %d", i+1), 2, 100, true)
	}
	return cards
}

func TestDrawTakesTop(t *testing.T) {
	m, err := NewManager(doorCards(3), treasureCards(2), keepOrder{}, nil)
	require.NoError(t, err)

	c, err := m.Draw(models.Door)
	require.NoError(t, err)
	assert.Equal(t, "Monster 3", c.Name)
	assert.Equal(t, 2, m.Size(models.Door))

	c, err = m.Draw(models.Treasure)
	require.NoError(t, err)
	assert.Equal(t, "Potion 2", c.Name)
}

func TestNewManagerRejectsWrongAffinity(t *testing.T) {
	_, err := NewManager(treasureCards(1), nil, keepOrder{}, nil)
	assert.ErrorIs(t, err, models.ErrWrongPile)
}

func TestDrawRefillsFromDiscards(t *testing.T) {
	m, err := NewManager(doorCards(2), nil, dice.NewSource(1), nil)
	require.NoError(t, err)

	a, err := m.Draw(models.Door)
	require.NoError(t, err)
	b, err := m.Draw(models.Door)
	require.NoError(t, err)
	require.NoError(t, m.Discard(models.Door, a))
	require.NoError(t, m.Discard(models.Door, b))
	require.Equal(t, 0, m.Size(models.Door))

	c, err := m.Draw(models.Door)
	require.NoError(t, err)
	assert.NotNil(t, c)
	assert.Equal(t, 0, m.DiscardSize(models.Door))
	assert.Equal(t, 1, m.Size(models.Door))
}

func TestDrawBothEmpty(t *testing.T) {
	m, err := NewManager(nil, nil, keepOrder{}, nil)
	require.NoError(t, err)

	_, err = m.Draw(models.Treasure)
	var empty *models.EmptyPileError
	require.True(t, errors.As(err, &empty))
	assert.Equal(t, models.Treasure, empty.Kind)
}

func TestUnknownPile(t *testing.T) {
	m, err := NewManager(nil, nil, keepOrder{}, nil)
	require.NoError(t, err)

	_, err = m.Draw("spell")
	assert.ErrorIs(t, err, models.ErrUnknownPile)
	assert.ErrorIs(t, m.Discard("spell", models.NewRace("Elf")), models.ErrUnknownPile)
	_, _, err = m.TakeFromDiscards("spell", func(*models.Card) bool { return true })
	assert.ErrorIs(t, err, models.ErrUnknownPile)
}

func TestDiscardWrongPile(t *testing.T) {
	m, err := NewManager(nil, nil, keepOrder{}, nil)
	require.NoError(t, err)
	assert.ErrorIs(t, m.Discard(models.Treasure, models.NewRace("Elf")), models.ErrWrongPile)
}

func TestDiscardResetsMonster(t *testing.T) {
	m, err := NewManager(nil, nil, keepOrder{}, nil)
	require.NoError(t, err)

	c := models.NewMonster("Net Troll", 10, 3, 1, false)
	c.Monster.ModifyLevel(10)
	c.Monster.ModifyTreasureReward(2)
	require.NoError(t, m.Discard(models.Door, c))
	assert.Equal(t, 10, c.Monster.CurrentLevel)
	assert.Equal(t, 3, c.Monster.CurrentTreasureReward)
}

func TestTakeFromDiscardsMostRecentFirst(t *testing.T) {
	m, err := NewManager(nil, nil, keepOrder{}, nil)
	require.NoError(t, err)

	for _, c := range []*models.Card{
		models.NewClass("Cleric"),
		models.NewRace("Elf"),
		models.NewClass("Wizard"),
		models.NewCurse("Curse! Change Sex"),
	} {
		require.NoError(t, m.Discard(models.Door, c))
	}

	isClass := func(c *models.Card) bool { return c.Is(models.CategoryClass) }
	c, ok, err := m.TakeFromDiscards(models.Door, isClass)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Wizard", c.Name)

	c, ok, err = m.TakeFromDiscards(models.Door, isClass)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Cleric", c.Name)

	_, ok, err = m.TakeFromDiscards(models.Door, isClass)
	require.NoError(t, err)
	assert.False(t, ok)

	names := []string{}
	for _, c := range m.Discards(models.Door) {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Elf", "Curse! Change Sex"}, names)
}

func TestPileTotalsInvariant(t *testing.T) {
	const doorTotal, treasureTotal = 12, 9
	m, err := NewManager(doorCards(doorTotal), treasureCards(treasureTotal), dice.NewSource(2024), nil)
	require.NoError(t, err)

	src := dice.NewSource(5)
	var held []*models.Card
	for step := 0; step < 500; step++ {
		kind := models.Door
		if src.IntN(2) == 1 {
			kind = models.Treasure
		}
		if len(held) > 0 && src.IntN(3) == 0 {
			i := src.IntN(len(held))
			c := held[i]
			held = append(held[:i], held[i+1:]...)
			require.NoError(t, m.Discard(c.Affinity, c))
		} else if c, err := m.Draw(kind); err == nil {
			held = append(held, c)
		} else {
			var empty *models.EmptyPileError
			require.True(t, errors.As(err, &empty))
		}

		heldDoor, heldTreasure := 0, 0
		for _, c := range held {
			if c.Affinity == models.Door {
				heldDoor++
			} else {
				heldTreasure++
			}
		}
		require.Equal(t, doorTotal, m.Size(models.Door)+m.DiscardSize(models.Door)+heldDoor)
		require.Equal(t, treasureTotal, m.Size(models.Treasure)+m.DiscardSize(models.Treasure)+heldTreasure)
	}
}

func TestSnapshotRestore(t *testing.T) {
	m, err := NewManager(doorCards(4), treasureCards(3), keepOrder{}, nil)
	require.NoError(t, err)
	c, err := m.Draw(models.Door)
	require.NoError(t, err)
	require.NoError(t, m.Discard(models.Door, c))

	r, err := Restore(m.Snapshot(), keepOrder{}, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, r.Size(models.Door))
	assert.Equal(t, 1, r.DiscardSize(models.Door))
	assert.Equal(t, 3, r.Size(models.Treasure))

	top, ok := r.Peek(models.Door)
	require.True(t, ok)
	assert.Equal(t, "Monster 3", top.Name)
}
