package models

// Affinity is the pile a card belongs to. It doubles as the pile kind.
type Affinity string

const (
	Door     Affinity = "door"
	Treasure Affinity = "treasure"
)

// Valid reports whether a is one of the two known pile kinds.
func (a Affinity) Valid() bool {
	return a == Door || a == Treasure
}

// Category discriminates the card variants.
type Category string

const (
	CategoryMonster         Category = "monster"
	CategoryMonsterEnhancer Category = "monster_enhancer"
	CategoryRace            Category = "race"
	CategoryClass           Category = "class"
	CategoryCurse           Category = "curse"
	CategoryOtherDoor       Category = "other_door"
	CategoryItem            Category = "item"
	CategoryOneShotTreasure Category = "one_shot_treasure"
	CategoryGoUpALevel      Category = "go_up_a_level"
	CategoryHelper          Category = "helper"
)

// Affinity returns the pile a category is dealt from.
func (c Category) Affinity() (Affinity, bool) {
	switch c {
	case CategoryMonster, CategoryMonsterEnhancer, CategoryRace, CategoryClass, CategoryCurse, CategoryOtherDoor:
		return Door, true
	case CategoryItem, CategoryOneShotTreasure, CategoryGoUpALevel, CategoryHelper:
		return Treasure, true
	default:
		return "", false
	}
}

// Classification is the equipment slot an item occupies.
type Classification string

const (
	Weapon   Classification = "weapon"
	Headgear Classification = "headgear"
	Armor    Classification = "armor"
	Footgear Classification = "footgear"
	Other    Classification = "other"
)

// Card is a single card. Exactly one of the variant pointers is set for
// Monster, MonsterEnhancer, Item and OneShotTreasure cards; the remaining
// categories carry only a name and are resolved by name in the engine.
type Card struct {
	Name     string   `yaml:"name"`
	Category Category `yaml:"category"`
	Affinity Affinity `yaml:"affinity"`

	Monster  *Monster         `yaml:"monster,omitempty"`
	Enhancer *MonsterEnhancer `yaml:"enhancer,omitempty"`
	Item     *Item            `yaml:"item,omitempty"`
	OneShot  *OneShotTreasure `yaml:"one_shot,omitempty"`
}

// Monster holds the printed and current values of a monster card.
type Monster struct {
	OriginalLevel          int  `yaml:"original_level"`
	CurrentLevel           int  `yaml:"current_level"`
	OriginalTreasureReward int  `yaml:"original_treasure_reward"`
	CurrentTreasureReward  int  `yaml:"current_treasure_reward"`
	LevelReward            int  `yaml:"level_reward"`
	Undead                 bool `yaml:"undead"`
}

// MonsterEnhancer carries signed deltas applied to an attached monster.
type MonsterEnhancer struct {
	LevelEnhancement    int `yaml:"level_enhancement"`
	TreasureEnhancement int `yaml:"treasure_enhancement"`
}

// Item is an equippable treasure.
type Item struct {
	Classification Classification `yaml:"classification"`
	CombatBonus    int            `yaml:"combat_bonus"`
	RunAwayBonus   int            `yaml:"run_away_bonus"`
	UsableBy       string         `yaml:"usable_by"` // e.g. "any", "elf only", "not wizard"
	Hands          int            `yaml:"hands"`     // 0, 1 or 2
	Big            bool           `yaml:"big"`
	Gold           int            `yaml:"gold"`
}

// OneShotTreasure is a treasure discarded after a single use.
type OneShotTreasure struct {
	CombatBonus        int  `yaml:"combat_bonus"`
	Gold               int  `yaml:"gold"`
	EitherSidePlayable bool `yaml:"either_side_playable"`
}

func newNamed(name string, c Category) *Card {
	a, _ := c.Affinity()
	return &Card{Name: name, Category: c, Affinity: a}
}

func NewMonster(name string, level, treasureReward, levelReward int, undead bool) *Card {
	c := newNamed(name, CategoryMonster)
	c.Monster = &Monster{
		OriginalLevel:          level,
		CurrentLevel:           level,
		OriginalTreasureReward: treasureReward,
		CurrentTreasureReward:  treasureReward,
		LevelReward:            levelReward,
		Undead:                 undead,
	}
	return c
}

func NewMonsterEnhancer(name string, levelDelta, treasureDelta int) *Card {
	c := newNamed(name, CategoryMonsterEnhancer)
	c.Enhancer = &MonsterEnhancer{LevelEnhancement: levelDelta, TreasureEnhancement: treasureDelta}
	return c
}

func NewRace(name string) *Card { return newNamed(name, CategoryRace) }
func NewClass(name string) *Card { return newNamed(name, CategoryClass) }
func NewCurse(name string) *Card { return newNamed(name, CategoryCurse) }
func NewOtherDoor(name string) *Card { return newNamed(name, CategoryOtherDoor) }
func NewGoUpALevel(name string) *Card { return newNamed(name, CategoryGoUpALevel) }
func NewHelper(name string) *Card { return newNamed(name, CategoryHelper) }

func NewItem(name string, item Item) *Card {
	c := newNamed(name, CategoryItem)
	c.Item = &item
	return c
}

func NewOneShotTreasure(name string, combatBonus, gold int, eitherSide bool) *Card {
	c := newNamed(name, CategoryOneShotTreasure)
	c.OneShot = &OneShotTreasure{CombatBonus: combatBonus, Gold: gold, EitherSidePlayable: eitherSide}
	return c
}

// Is reports whether the card belongs to category c.
func (c *Card) Is(cat Category) bool {
	return c != nil && c.Category == cat
}

// IsClassification reports whether c is an item of the given slot.
func (c *Card) IsClassification(cl Classification) bool {
	return c.Is(CategoryItem) && c.Item != nil && c.Item.Classification == cl
}

// IsBig reports whether c is a big item.
func (c *Card) IsBig() bool {
	return c.Is(CategoryItem) && c.Item != nil && c.Item.Big
}

// Gold returns the sale value of a treasure, zero for everything else.
func (c *Card) Gold() int {
	switch {
	case c.Item != nil:
		return c.Item.Gold
	case c.OneShot != nil:
		return c.OneShot.Gold
	}
	return 0
}

// Reset restores any temporary modifiers to the printed baseline. Cards
// must be reset before they re-enter a pile or discard.
func (c *Card) Reset() {
	if c.Monster != nil {
		c.Monster.ResetLevel()
		c.Monster.ResetTreasureReward()
	}
}

func (c *Card) String() string {
	if c == nil {
		return "<nil>"
	}
	return c.Name
}

func (m *Monster) ResetLevel() {
	m.CurrentLevel = m.OriginalLevel
}

func (m *Monster) ResetTreasureReward() {
	m.CurrentTreasureReward = m.OriginalTreasureReward
}

// ModifyLevel applies a signed delta. The result is not clamped.
func (m *Monster) ModifyLevel(delta int) {
	m.CurrentLevel += delta
}

// ModifyTreasureReward applies a signed delta. The result is not clamped.
func (m *Monster) ModifyTreasureReward(delta int) {
	m.CurrentTreasureReward += delta
}
