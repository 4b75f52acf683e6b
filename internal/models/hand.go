package models

import "gopkg.in/yaml.v3"

const (
	DefaultHandLimit = 5
	DwarfHandLimit   = 6
)

// Hand is the ordered set of cards a player holds. Cards are addressed by
// 1-based position and removing a card shifts every later position down
// by one, so positions must be looked up again after any removal.
type Hand struct {
	cards []*Card
	limit int
}

func NewHand() *Hand {
	return &Hand{limit: DefaultHandLimit}
}

func (h *Hand) Len() int   { return len(h.cards) }
func (h *Hand) Limit() int { return h.limit }

// Cards returns a copy of the hand in position order.
func (h *Hand) Cards() []*Card {
	return append([]*Card(nil), h.cards...)
}

func (h *Hand) Add(c *Card) {
	h.cards = append(h.cards, c)
}

func (h *Hand) Get(pos int) (*Card, error) {
	if err := checkPosition(pos, len(h.cards)); err != nil {
		return nil, err
	}
	return h.cards[pos-1], nil
}

func (h *Hand) Remove(pos int) (*Card, error) {
	c, err := h.Get(pos)
	if err != nil {
		return nil, err
	}
	h.cards = append(h.cards[:pos-1], h.cards[pos:]...)
	return c, nil
}

// FindByName returns the position of the first card named name, or NotFound.
func (h *Hand) FindByName(name string) int {
	return findPosition(h.cards, func(c *Card) bool { return c.Name == name })
}

// FindByCategory returns the position of the first card of cat, or NotFound.
func (h *Hand) FindByCategory(cat Category) int {
	return findPosition(h.cards, func(c *Card) bool { return c.Is(cat) })
}

// MustDiscard reports whether the hand is over its limit.
func (h *Hand) MustDiscard() bool {
	return len(h.cards) > h.limit
}

// ExtendLimit raises the limit for a dwarf.
func (h *Hand) ExtendLimit() { h.limit = DwarfHandLimit }

// ResetLimit restores the default limit once the player is no longer a dwarf.
func (h *Hand) ResetLimit() { h.limit = DefaultHandLimit }

type handYAML struct {
	Limit int     `yaml:"limit"`
	Cards []*Card `yaml:"cards"`
}

func (h *Hand) MarshalYAML() (interface{}, error) {
	return handYAML{Limit: h.limit, Cards: h.cards}, nil
}

func (h *Hand) UnmarshalYAML(node *yaml.Node) error {
	var raw handYAML
	if err := node.Decode(&raw); err != nil {
		return err
	}
	h.cards = raw.Cards
	h.limit = raw.Limit
	if h.limit == 0 {
		h.limit = DefaultHandLimit
	}
	return nil
}

func findPosition(cards []*Card, match func(*Card) bool) int {
	for i, c := range cards {
		if match(c) {
			return i + 1
		}
	}
	return NotFound
}
