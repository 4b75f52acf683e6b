package engine

import (
	"fmt"

	"github.com/tatianab/munchkin/internal/models"
)

// MaxGoUpALevel is the highest level a Go Up A Level card can be played
// at; the winning level has to be earned in combat.
const MaxGoUpALevel = 8

// PlayGoUpALevel plays the Go Up A Level card at pos in p's hand.
func (e *Engine) PlayGoUpALevel(p *models.Player, pos int) (Outcome, error) {
	card, err := p.Hand.Get(pos)
	if err != nil {
		return Outcome{}, err
	}
	if !card.Is(models.CategoryGoUpALevel) {
		return Outcome{}, &RuleError{Action: "play", Card: card.Name, Reason: "not a go up a level card"}
	}

	o := newOutcome(card.Name, p)
	if p.Level > MaxGoUpALevel {
		o.Status = StatusNoEffect
		o.Description = "cannot be used for the winning level"
		return o, nil
	}
	if _, err := p.Hand.Remove(pos); err != nil {
		return Outcome{}, err
	}
	before := p.Level
	p.ModifyLevel(1)
	o.Description = "gained a level"
	o.change("level", before, p.Level)
	return o, e.piles.Discard(card.Affinity, card)
}

// ApplyEnhancer adds an enhancer's deltas to a monster. The monster keeps
// the modified values until it is discarded.
func (e *Engine) ApplyEnhancer(monster, enhancer *models.Card) error {
	if monster.Monster == nil {
		return &RuleError{Action: "enhance", Card: monster.Name, Reason: "not a monster"}
	}
	if enhancer.Enhancer == nil {
		return &RuleError{Action: "enhance with", Card: enhancer.Name, Reason: "not a monster enhancer"}
	}
	monster.Monster.ModifyLevel(enhancer.Enhancer.LevelEnhancement)
	monster.Monster.ModifyTreasureReward(enhancer.Enhancer.TreasureEnhancement)
	return nil
}

// MonsterSummary renders a monster's current values.
func MonsterSummary(c *models.Card) string {
	if c.Monster == nil {
		return c.Name
	}
	m := c.Monster
	s := fmt.Sprintf("%s (level %d, %d treasure", c.Name, m.CurrentLevel, m.CurrentTreasureReward)
	if m.Undead {
		s += ", undead"
	}
	return s + ")"
}
