package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tatianab/munchkin/internal/engine"
	"github.com/tatianab/munchkin/internal/models"
)

func TestNewDealsStartingHands(t *testing.T) {
	s, err := New(Options{Players: 4, Seed: 11})
	require.NoError(t, err)
	require.Len(t, s.Players, 4)

	for i, p := range s.Players {
		assert.Equal(t, i+1, p.TurnNumber)
		assert.Equal(t, 2*StartingCards, p.Hand.Len())
		assert.Equal(t, 1, p.Level)
	}
	assert.Equal(t, models.Male, s.Players[0].Sex)
	assert.Equal(t, models.Female, s.Players[1].Sex)
	assert.Equal(t, 94-4*StartingCards, s.Piles().Size(models.Door))
	assert.Equal(t, 74-4*StartingCards, s.Piles().Size(models.Treasure))
}

func TestNewIsReproducible(t *testing.T) {
	a, err := New(Options{Players: 3, Seed: 2024})
	require.NoError(t, err)
	b, err := New(Options{Players: 3, Seed: 2024})
	require.NoError(t, err)

	for i := range a.Players {
		ha, hb := a.Players[i].Hand.Cards(), b.Players[i].Hand.Cards()
		require.Len(t, hb, len(ha))
		for j := range ha {
			assert.Equal(t, ha[j].Name, hb[j].Name)
		}
	}
}

func TestNewRejectsPlayerCount(t *testing.T) {
	_, err := New(Options{Players: 0})
	assert.Error(t, err)
	_, err = New(Options{Players: MaxPlayers + 1})
	assert.Error(t, err)
}

func TestPlayerLookup(t *testing.T) {
	s, err := New(Options{Players: 2, Seed: 1})
	require.NoError(t, err)

	p, err := s.Player(2)
	require.NoError(t, err)
	assert.Equal(t, 2, p.TurnNumber)

	_, err = s.Player(3)
	var oor *models.OutOfRangeError
	assert.True(t, errors.As(err, &oor))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := New(Options{Players: 2, Seed: 5})
	require.NoError(t, err)

	p := s.Players[0]
	p.SetLevel(4)
	_, err = s.Engine.Resolve(engine.ChickenOnHead, p)
	require.NoError(t, err)
	_, err = s.Engine.DiscardFromHand(p, 1)
	require.NoError(t, err)
	require.NoError(t, s.Save(dir, "game1"))

	names, err := List(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"game1"}, names)

	loaded, err := Load(dir, "game1", nil)
	require.NoError(t, err)
	require.Len(t, loaded.Players, 2)
	assert.Equal(t, int64(5), loaded.Seed)

	lp := loaded.Players[0]
	assert.Equal(t, 4, lp.Level)
	assert.True(t, lp.ChickenOnHead)
	assert.Equal(t, p.Hand.Len(), lp.Hand.Len())
	for _, kind := range []models.Affinity{models.Door, models.Treasure} {
		assert.Equal(t, s.Piles().Size(kind), loaded.Piles().Size(kind))
		assert.Equal(t, s.Piles().DiscardSize(kind), loaded.Piles().DiscardSize(kind))
	}
}

func TestListMissingDir(t *testing.T) {
	names, err := List(t.TempDir() + "/nope")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(t.TempDir(), "nope", nil)
	assert.Error(t, err)
}
