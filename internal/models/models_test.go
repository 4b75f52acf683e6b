package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestCategoryAffinity(t *testing.T) {
	tests := []struct {
		card *Card
		want Affinity
	}{
		{NewMonster("Crabs", 1, 1, 1, false), Door},
		{NewMonsterEnhancer("Baby", -5, -1), Door},
		{NewRace("Elf"), Door},
		{NewClass("Wizard"), Door},
		{NewCurse("Curse! Change Sex"), Door},
		{NewOtherDoor("Half-Breed"), Door},
		{NewItem("Leather Armor", Item{Classification: Armor, CombatBonus: 1}), Treasure},
		{NewOneShotTreasure("Magic Missile", 5, 300, true), Treasure},
		{NewGoUpALevel("Whine At The GM"), Treasure},
		{NewHelper("Hireling"), Treasure},
	}
	for _, tt := range tests {
		t.Run(tt.card.Name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.card.Affinity)
		})
	}

	_, ok := Category("spell").Affinity()
	assert.False(t, ok)
}

func TestMonsterResetRestoresBaseline(t *testing.T) {
	c := NewMonster("Bigfoot", 12, 3, 1, false)
	for _, d := range []int{10, -5, -20, 3} {
		c.Monster.ModifyLevel(d)
		c.Monster.ModifyTreasureReward(d)
	}
	assert.Equal(t, 0, c.Monster.CurrentLevel)
	assert.Equal(t, -9, c.Monster.CurrentTreasureReward)

	c.Monster.ResetLevel()
	assert.Equal(t, 12, c.Monster.CurrentLevel)
	assert.Equal(t, -9, c.Monster.CurrentTreasureReward)

	c.Reset()
	assert.Equal(t, 12, c.Monster.CurrentLevel)
	assert.Equal(t, 3, c.Monster.CurrentTreasureReward)
}

func TestHandPositions(t *testing.T) {
	h := NewHand()
	h.Add(NewRace("Elf"))
	h.Add(NewClass("Thief"))
	h.Add(NewCurse("Curse! Duck Of Doom"))

	assert.Equal(t, 2, h.FindByName("Thief"))
	assert.Equal(t, 3, h.FindByCategory(CategoryCurse))
	assert.Equal(t, NotFound, h.FindByName("Wizard"))

	c, err := h.Remove(1)
	require.NoError(t, err)
	assert.Equal(t, "Elf", c.Name)

	// Positions shift after a removal.
	assert.Equal(t, 1, h.FindByName("Thief"))
	assert.Equal(t, 2, h.FindByCategory(CategoryCurse))
}

func TestHandOutOfRange(t *testing.T) {
	h := NewHand()
	h.Add(NewRace("Elf"))

	for _, pos := range []int{0, -1, 2} {
		_, err := h.Remove(pos)
		var oor *OutOfRangeError
		require.True(t, errors.As(err, &oor), "position %d", pos)
		assert.Equal(t, pos, oor.Position)
		assert.Equal(t, 1, oor.Size)
	}
	assert.Equal(t, 1, h.Len())
}

func TestHandLimit(t *testing.T) {
	h := NewHand()
	for i := 0; i < 6; i++ {
		h.Add(NewClass("Cleric"))
	}
	assert.True(t, h.MustDiscard())

	h.ExtendLimit()
	assert.Equal(t, DwarfHandLimit, h.Limit())
	assert.False(t, h.MustDiscard())

	h.ResetLimit()
	assert.Equal(t, DefaultHandLimit, h.Limit())
	assert.True(t, h.MustDiscard())
}

func TestEquippedCountersFollowContents(t *testing.T) {
	a := NewEquippedArea()
	a.Add(NewRace("Elf"))
	a.Add(NewClass("Warrior"))
	a.Add(NewItem("Broad Sword", Item{Classification: Weapon, Hands: 1}))
	a.Add(NewRace("Dwarf"))
	a.Add(NewClass("Wizard"))

	assert.Equal(t, 2, a.RaceCount())
	assert.Equal(t, 2, a.ClassCount())
	assert.Equal(t, 1, a.WeaponHands())

	_, err := a.Remove(a.FindByName("Elf"))
	require.NoError(t, err)
	assert.Equal(t, 1, a.RaceCount())

	removed := a.RemoveWhere(func(c *Card) bool { return c.Is(CategoryClass) })
	require.Len(t, removed, 2)
	assert.Equal(t, "Warrior", removed[0].Name)
	assert.Equal(t, "Wizard", removed[1].Name)
	assert.Equal(t, 0, a.ClassCount())
	assert.Equal(t, 2, a.Len())
}

func TestEquippedLimits(t *testing.T) {
	a := NewEquippedArea()
	assert.True(t, a.CanEquipRace())
	a.Add(NewRace("Elf"))
	assert.False(t, a.CanEquipRace())
	a.ExtendRaceLimit()
	assert.True(t, a.CanEquipRace())
	a.ResetRaceLimit()
	assert.False(t, a.CanEquipRace())

	a.Add(NewClass("Thief"))
	assert.False(t, a.CanEquipClass())
	a.ExtendClassLimit()
	assert.True(t, a.CanEquipClass())
}

func TestEquippedSlotFlags(t *testing.T) {
	a := NewEquippedArea()
	assert.True(t, a.IsHuman())
	assert.False(t, a.HeadgearEquipped())

	a.Add(NewItem("Horny Helmet", Item{Classification: Headgear, CombatBonus: 1}))
	a.Add(NewItem("Slimy Armor", Item{Classification: Armor, CombatBonus: 1}))
	a.Add(NewItem("Sandals Of Protection", Item{Classification: Footgear}))
	a.Add(NewItem("Huge Rock", Item{Classification: Weapon, Hands: 2, Big: true}))

	assert.True(t, a.HeadgearEquipped())
	assert.True(t, a.ArmorEquipped())
	assert.True(t, a.FootgearEquipped())
	assert.True(t, a.BigItemEquipped())
	assert.Equal(t, 2, a.WeaponHands())

	_, err := a.Remove(a.FindByName("Huge Rock"))
	require.NoError(t, err)
	assert.False(t, a.BigItemEquipped())
	assert.Equal(t, 0, a.WeaponHands())
}

func TestPlayerMutations(t *testing.T) {
	p := NewPlayer(1, Male)
	assert.Equal(t, 1, p.Level)

	p.ModifyLevel(-3)
	assert.Equal(t, -2, p.Level)
	p.SetLevel(4)
	assert.Equal(t, 4, p.Level)

	assert.Equal(t, Female, p.ToggleSex())
	assert.Equal(t, Male, p.ToggleSex())

	p.AddGold(300)
	p.AddGold(-500)
	assert.Equal(t, -200, p.Gold)

	p.ModifyCombatBonus(3)
	p.ModifyRunAwayBonus(-1)
	assert.Equal(t, 3, p.CombatBonus)
	assert.Equal(t, -1, p.RunAwayBonus)
}

func TestPlayerYAML(t *testing.T) {
	p := NewPlayer(2, Female)
	p.Hand.Add(NewMonster("Crabs", 1, 1, 1, false))
	p.Hand.ExtendLimit()
	p.Equipped.Add(NewRace("Dwarf"))
	p.Equipped.ExtendClassLimit()
	p.ChickenOnHead = true

	data, err := yaml.Marshal(p)
	require.NoError(t, err)

	var p2 Player
	require.NoError(t, yaml.Unmarshal(data, &p2))

	assert.Equal(t, 2, p2.TurnNumber)
	assert.Equal(t, Female, p2.Sex)
	assert.True(t, p2.ChickenOnHead)
	assert.Equal(t, DwarfHandLimit, p2.Hand.Limit())
	require.Equal(t, 1, p2.Hand.Len())
	c, err := p2.Hand.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Monster.OriginalLevel)
	assert.Equal(t, 1, p2.Equipped.RaceCount())
	assert.Equal(t, SuperMunchkinLimit, p2.Equipped.ClassLimit())
}
