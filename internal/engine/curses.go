package engine

import (
	"fmt"

	"github.com/tatianab/munchkin/internal/models"
)

func (e *Engine) changeClass(effect string, p *models.Player) (Outcome, error) {
	return e.replaceEquipped(effect, p, models.CategoryClass)
}

func (e *Engine) changeRace(effect string, p *models.Player) (Outcome, error) {
	return e.replaceEquipped(effect, p, models.CategoryRace)
}

// replaceEquipped removes every equipped card of cat and equips the most
// recently discarded door card of the same category in their place. The
// removed cards are discarded only after the search, so none of them can
// come straight back.
func (e *Engine) replaceEquipped(effect string, p *models.Player, cat models.Category) (Outcome, error) {
	o := newOutcome(effect, p)
	match := func(c *models.Card) bool { return c.Is(cat) }

	before := equippedCount(p, cat)
	if before == 0 {
		o.Status = StatusNoEffect
		o.Description = fmt.Sprintf("no %s card equipped", cat)
		return o, nil
	}

	removed := p.Equipped.RemoveWhere(match)
	replacement, found, err := e.piles.TakeFromDiscards(models.Door, match)
	if err != nil {
		return o, err
	}
	if found {
		p.Equipped.Add(replacement)
		o.Description = fmt.Sprintf("replaced with %s from the door discards", replacement.Name)
	} else {
		o.Description = "removed, no replacement in the door discards"
	}
	for _, c := range removed {
		if err := e.piles.Discard(c.Affinity, c); err != nil {
			return o, err
		}
	}

	o.change(fmt.Sprintf("equipped %s", cat), names(removed), names(matching(p.Equipped.Cards(), match)))
	o.change(fmt.Sprintf("%s count", cat), before, equippedCount(p, cat))
	if cat == models.CategoryRace {
		e.syncRaceTraits(&o, p)
	}
	return o, nil
}

func (e *Engine) changeSex(effect string, p *models.Player) (Outcome, error) {
	o := newOutcome(effect, p)
	before := p.Sex
	after := p.ToggleSex()
	o.Description = fmt.Sprintf("sex changed from %s to %s", before, after)
	o.change("sex", before, after)
	return o, nil
}

func (e *Engine) chickenOnHead(effect string, p *models.Player) (Outcome, error) {
	o := newOutcome(effect, p)
	if p.ChickenOnHead {
		o.Status = StatusNoEffect
		o.Description = "already has a chicken on their head"
		return o, nil
	}
	p.ChickenOnHead = true
	o.Description = "-1 to all die rolls"
	o.change("chicken on head", false, true)
	return o, nil
}

// duckOfDoom costs two levels but never takes a player below level 1.
func (e *Engine) duckOfDoom(effect string, p *models.Player) (Outcome, error) {
	return e.loseLevels(effect, p, 2)
}

func (e *Engine) loseLevel(effect string, p *models.Player) (Outcome, error) {
	return e.loseLevels(effect, p, 1)
}

func (e *Engine) loseLevels(effect string, p *models.Player, n int) (Outcome, error) {
	o := newOutcome(effect, p)
	before := p.Level
	if before <= 1 {
		o.Status = StatusNoEffect
		o.Description = "already at the lowest level"
		return o, nil
	}
	if before-n < 1 {
		p.SetLevel(1)
		o.Description = "level clamped to 1"
	} else {
		p.ModifyLevel(-n)
		o.Description = fmt.Sprintf("lost %d level(s)", n)
	}
	o.change("level", before, p.Level)
	return o, nil
}

func equippedCount(p *models.Player, cat models.Category) int {
	switch cat {
	case models.CategoryRace:
		return p.Equipped.RaceCount()
	case models.CategoryClass:
		return p.Equipped.ClassCount()
	}
	return len(matching(p.Equipped.Cards(), func(c *models.Card) bool { return c.Is(cat) }))
}

func matching(cards []*models.Card, match func(*models.Card) bool) []*models.Card {
	var out []*models.Card
	for _, c := range cards {
		if match(c) {
			out = append(out, c)
		}
	}
	return out
}
