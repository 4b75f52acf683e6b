// Package catalog loads the static card list that seeds a game's piles.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/tatianab/munchkin/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCatalog []byte

// Entry is one line of the catalog. Fields that do not apply to the
// entry's category are ignored.
type Entry struct {
	Name     string          `yaml:"name"`
	Category models.Category `yaml:"category"`
	Copies   int             `yaml:"copies,omitempty"`

	// Monster and monster enhancer. For enhancers these are signed deltas.
	Level       int  `yaml:"level,omitempty"`
	Treasure    int  `yaml:"treasure,omitempty"`
	LevelReward int  `yaml:"level_reward,omitempty"`
	Undead      bool `yaml:"undead,omitempty"`

	// Item and one-shot treasure.
	Classification models.Classification `yaml:"classification,omitempty"`
	CombatBonus    int                   `yaml:"combat_bonus,omitempty"`
	RunAwayBonus   int                   `yaml:"run_away_bonus,omitempty"`
	UsableBy       string                `yaml:"usable_by,omitempty"`
	Hands          int                   `yaml:"hands,omitempty"`
	Big            bool                  `yaml:"big,omitempty"`
	Gold           int                   `yaml:"gold,omitempty"`
	EitherSide     bool                  `yaml:"either_side,omitempty"`
}

// Catalog lists the door and treasure decks in order.
type Catalog struct {
	Door     []Entry `yaml:"door"`
	Treasure []Entry `yaml:"treasure"`
}

// Default returns the embedded standard catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog from path, or the default catalog when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that every entry is buildable and sits in the deck its
// category belongs to.
func (c *Catalog) Validate() error {
	for _, deck := range []struct {
		kind    models.Affinity
		entries []Entry
	}{{models.Door, c.Door}, {models.Treasure, c.Treasure}} {
		for i, e := range deck.entries {
			if err := e.validate(deck.kind); err != nil {
				return fmt.Errorf("%s entry %d (%q): %w", deck.kind, i+1, e.Name, err)
			}
		}
	}
	return nil
}

func (e Entry) validate(kind models.Affinity) error {
	if e.Name == "" {
		return fmt.Errorf("missing name")
	}
	if e.Copies < 0 {
		return fmt.Errorf("negative copies %d", e.Copies)
	}
	affinity, ok := e.Category.Affinity()
	if !ok {
		return fmt.Errorf("unknown category %q", e.Category)
	}
	if affinity != kind {
		return fmt.Errorf("%s card in %s deck: %w", affinity, kind, models.ErrWrongPile)
	}
	if e.Category == models.CategoryItem {
		switch e.Classification {
		case models.Weapon, models.Headgear, models.Armor, models.Footgear, models.Other:
		default:
			return fmt.Errorf("unknown item classification %q", e.Classification)
		}
		if e.Hands < 0 || e.Hands > models.MaxWeaponHands {
			return fmt.Errorf("hands %d not in [0, %d]", e.Hands, models.MaxWeaponHands)
		}
		if e.Hands > 0 && e.Classification != models.Weapon {
			return fmt.Errorf("only weapons occupy hands")
		}
	}
	return nil
}

// Build creates fresh card instances for both decks, expanding copies.
// Every call returns new cards so separate games never share state.
func (c *Catalog) Build() (door, treasure []*models.Card) {
	return build(c.Door), build(c.Treasure)
}

func build(entries []Entry) []*models.Card {
	var cards []*models.Card
	for _, e := range entries {
		n := e.Copies
		if n == 0 {
			n = 1
		}
		for i := 0; i < n; i++ {
			cards = append(cards, e.card())
		}
	}
	return cards
}

func (e Entry) card() *models.Card {
	switch e.Category {
	case models.CategoryMonster:
		return models.NewMonster(e.Name, e.Level, e.Treasure, e.LevelReward, e.Undead)
	case models.CategoryMonsterEnhancer:
		return models.NewMonsterEnhancer(e.Name, e.Level, e.Treasure)
	case models.CategoryRace:
		return models.NewRace(e.Name)
	case models.CategoryClass:
		return models.NewClass(e.Name)
	case models.CategoryCurse:
		return models.NewCurse(e.Name)
	case models.CategoryOtherDoor:
		return models.NewOtherDoor(e.Name)
	case models.CategoryItem:
		return models.NewItem(e.Name, models.Item{
			Classification: e.Classification,
			CombatBonus:    e.CombatBonus,
			RunAwayBonus:   e.RunAwayBonus,
			UsableBy:       e.UsableBy,
			Hands:          e.Hands,
			Big:            e.Big,
			Gold:           e.Gold,
		})
	case models.CategoryOneShotTreasure:
		return models.NewOneShotTreasure(e.Name, e.CombatBonus, e.Gold, e.EitherSide)
	case models.CategoryGoUpALevel:
		return models.NewGoUpALevel(e.Name)
	case models.CategoryHelper:
		return models.NewHelper(e.Name)
	}
	panic(fmt.Sprintf("catalog: unvalidated category %q", e.Category))
}
