package models

import "gopkg.in/yaml.v3"

const (
	DefaultRaceLimit   = 1
	HalfBreedLimit     = 2
	DefaultClassLimit  = 1
	SuperMunchkinLimit = 2
	MaxWeaponHands     = 2
)

// EquippedArea holds the cards a player has in play. Race and class counts,
// weapon hands and slot flags are derived from the card list on every
// query, so they cannot drift from its contents. Positions are 1-based and
// shift on removal, the same as Hand.
//
// The area does not enforce limits when a card is added; callers check
// CanEquipRace, CanEquipClass or the slot queries first.
type EquippedArea struct {
	cards      []*Card
	raceLimit  int
	classLimit int
}

func NewEquippedArea() *EquippedArea {
	return &EquippedArea{raceLimit: DefaultRaceLimit, classLimit: DefaultClassLimit}
}

func (a *EquippedArea) Len() int { return len(a.cards) }

// Cards returns a copy of the equipped cards in position order.
func (a *EquippedArea) Cards() []*Card {
	return append([]*Card(nil), a.cards...)
}

func (a *EquippedArea) Add(c *Card) {
	a.cards = append(a.cards, c)
}

func (a *EquippedArea) Get(pos int) (*Card, error) {
	if err := checkPosition(pos, len(a.cards)); err != nil {
		return nil, err
	}
	return a.cards[pos-1], nil
}

func (a *EquippedArea) Remove(pos int) (*Card, error) {
	c, err := a.Get(pos)
	if err != nil {
		return nil, err
	}
	a.cards = append(a.cards[:pos-1], a.cards[pos:]...)
	return c, nil
}

// RemoveWhere removes every card matching pred and returns them in the
// order they were equipped.
func (a *EquippedArea) RemoveWhere(pred func(*Card) bool) []*Card {
	var removed []*Card
	kept := a.cards[:0]
	for _, c := range a.cards {
		if pred(c) {
			removed = append(removed, c)
			continue
		}
		kept = append(kept, c)
	}
	for i := len(kept); i < len(a.cards); i++ {
		a.cards[i] = nil
	}
	a.cards = kept
	return removed
}

func (a *EquippedArea) FindByName(name string) int {
	return findPosition(a.cards, func(c *Card) bool { return c.Name == name })
}

func (a *EquippedArea) FindByCategory(cat Category) int {
	return findPosition(a.cards, func(c *Card) bool { return c.Is(cat) })
}

func (a *EquippedArea) count(match func(*Card) bool) int {
	n := 0
	for _, c := range a.cards {
		if match(c) {
			n++
		}
	}
	return n
}

func (a *EquippedArea) RaceCount() int {
	return a.count(func(c *Card) bool { return c.Is(CategoryRace) })
}

func (a *EquippedArea) ClassCount() int {
	return a.count(func(c *Card) bool { return c.Is(CategoryClass) })
}

func (a *EquippedArea) RaceLimit() int  { return a.raceLimit }
func (a *EquippedArea) ClassLimit() int { return a.classLimit }

// ExtendRaceLimit is applied while Half-Breed is in play.
func (a *EquippedArea) ExtendRaceLimit() { a.raceLimit = HalfBreedLimit }
func (a *EquippedArea) ResetRaceLimit()  { a.raceLimit = DefaultRaceLimit }

// ExtendClassLimit is applied while Super Munchkin is in play.
func (a *EquippedArea) ExtendClassLimit() { a.classLimit = SuperMunchkinLimit }
func (a *EquippedArea) ResetClassLimit()  { a.classLimit = DefaultClassLimit }

func (a *EquippedArea) CanEquipRace() bool  { return a.RaceCount() < a.raceLimit }
func (a *EquippedArea) CanEquipClass() bool { return a.ClassCount() < a.classLimit }

// IsHuman reports whether no race card is equipped.
func (a *EquippedArea) IsHuman() bool { return a.RaceCount() == 0 }

// HasName reports whether a card named name is equipped.
func (a *EquippedArea) HasName(name string) bool {
	return a.FindByName(name) != NotFound
}

// WeaponHands is the number of hands occupied by equipped weapons, 0 to 2.
func (a *EquippedArea) WeaponHands() int {
	n := 0
	for _, c := range a.cards {
		if c.IsClassification(Weapon) {
			n += c.Item.Hands
		}
	}
	return n
}

func (a *EquippedArea) HeadgearEquipped() bool {
	return a.count(func(c *Card) bool { return c.IsClassification(Headgear) }) > 0
}

func (a *EquippedArea) ArmorEquipped() bool {
	return a.count(func(c *Card) bool { return c.IsClassification(Armor) }) > 0
}

func (a *EquippedArea) FootgearEquipped() bool {
	return a.count(func(c *Card) bool { return c.IsClassification(Footgear) }) > 0
}

func (a *EquippedArea) BigItemEquipped() bool {
	return a.count((*Card).IsBig) > 0
}

type equippedYAML struct {
	RaceLimit  int     `yaml:"race_limit"`
	ClassLimit int     `yaml:"class_limit"`
	Cards      []*Card `yaml:"cards"`
}

func (a *EquippedArea) MarshalYAML() (interface{}, error) {
	return equippedYAML{RaceLimit: a.raceLimit, ClassLimit: a.classLimit, Cards: a.cards}, nil
}

func (a *EquippedArea) UnmarshalYAML(node *yaml.Node) error {
	var raw equippedYAML
	if err := node.Decode(&raw); err != nil {
		return err
	}
	a.cards = raw.Cards
	a.raceLimit = raw.RaceLimit
	a.classLimit = raw.ClassLimit
	if a.raceLimit == 0 {
		a.raceLimit = DefaultRaceLimit
	}
	if a.classLimit == 0 {
		a.classLimit = DefaultClassLimit
	}
	return nil
}
