package tui

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tatianab/munchkin/internal/engine"
	"github.com/tatianab/munchkin/internal/models"
	"github.com/tatianab/munchkin/internal/session"
)

func newSessionForTest(t *testing.T) *session.Session {
	t.Helper()
	s, err := session.New(session.Options{Players: 3, Seed: 11})
	require.NoError(t, err)
	return s
}

func TestExecuteRoll(t *testing.T) {
	s := newSessionForTest(t)
	out, err := execute(s, "roll 1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "player 1 rolled "), out)
}

func TestExecuteDrawAndDiscard(t *testing.T) {
	s := newSessionForTest(t)
	p := s.Players[0]
	before := p.Hand.Len()

	out, err := execute(s, "draw 1 Door")
	require.NoError(t, err)
	assert.Contains(t, out, "drew ")
	assert.Equal(t, before+1, p.Hand.Len())

	_, err = execute(s, "discard 1 1")
	require.NoError(t, err)
	assert.Equal(t, before, p.Hand.Len())
}

func TestExecuteCurse(t *testing.T) {
	s := newSessionForTest(t)
	require.Equal(t, models.Female, s.Players[1].Sex)

	out, err := execute(s, "curse 2 curse! change sex")
	require.NoError(t, err)
	assert.Contains(t, out, "Applied")
	assert.Equal(t, models.Male, s.Players[1].Sex)

	out, err = execute(s, "curse 1 Curse! Income Tax")
	require.NoError(t, err)
	assert.Contains(t, out, engine.StatusRequiresChoice.String())

	out, err = execute(s, "curse 1 Curse! Turn Into A Newt")
	require.NoError(t, err)
	assert.Contains(t, out, engine.StatusUnhandled.String())
}

func TestExecutePlay(t *testing.T) {
	s := newSessionForTest(t)
	caster, target := s.Players[0], s.Players[2]
	caster.Hand.Add(models.NewCurse(engine.ChickenOnHead))

	_, err := execute(s, "play 1 "+strconv.Itoa(caster.Hand.Len())+" 3")
	require.NoError(t, err)
	assert.True(t, target.ChickenOnHead)
	assert.False(t, caster.ChickenOnHead)

	caster.Hand.Add(models.NewGoUpALevel("Whine At The GM"))
	_, err = execute(s, "play 1 "+strconv.Itoa(caster.Hand.Len()))
	require.NoError(t, err)
	assert.Equal(t, 2, caster.Level)

	caster.Hand.Add(models.NewRace("Elf"))
	_, err = execute(s, "play 1 "+strconv.Itoa(caster.Hand.Len()))
	var rule *engine.RuleError
	assert.True(t, errors.As(err, &rule))
}

func TestExecuteEquip(t *testing.T) {
	s := newSessionForTest(t)
	p := s.Players[0]
	p.Hand.Add(models.NewOtherDoor(engine.SuperMunchkin))

	_, err := execute(s, "equip 1 "+strconv.Itoa(p.Hand.Len()))
	require.NoError(t, err)
	assert.Equal(t, models.SuperMunchkinLimit, p.Equipped.ClassLimit())

	pos := p.Equipped.FindByName(engine.SuperMunchkin)
	_, err = execute(s, "unequip 1 "+strconv.Itoa(pos))
	require.NoError(t, err)
	assert.Equal(t, models.DefaultClassLimit, p.Equipped.ClassLimit())
}

func TestExecuteErrors(t *testing.T) {
	s := newSessionForTest(t)
	for _, line := range []string{
		"",
		"draw",
		"draw 1",
		"draw one door",
		"draw 9 door",
		"draw 1 gold",
		"jump 1",
		"equip 1 x",
		"equip 1 99",
		"play 1",
		"curse 1",
	} {
		t.Run(line, func(t *testing.T) {
			_, err := execute(s, line)
			assert.Error(t, err)
		})
	}
}

func TestExecuteEffects(t *testing.T) {
	out, err := execute(newSessionForTest(t), "effects")
	require.NoError(t, err)
	assert.Len(t, strings.Split(out, "\n"), len(engine.Effects()))
	assert.Contains(t, out, engine.DuckOfDoom+" (automatic)")
}

func TestModelRunsCommandAndSaves(t *testing.T) {
	dir := t.TempDir()
	m := NewModel(newSessionForTest(t), dir, DefaultSaveName)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(model)

	m.textInput.SetValue("roll 2")
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(model)
	assert.Equal(t, statePlaying, m.state)
	assert.Contains(t, m.gameLog, "player 2 rolled")
	assert.Empty(t, m.textInput.Value())

	names, err := session.List(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{DefaultSaveName}, names)

	m.textInput.SetValue("draw 1 gold")
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(model)
	assert.Contains(t, m.gameLog, "error:")
	assert.Contains(t, m.View(), "PLAYER 3")
}
