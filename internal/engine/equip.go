package engine

import (
	"fmt"
	"strings"

	"github.com/tatianab/munchkin/internal/models"
	"go.uber.org/zap"
)

// Door cards that change equip limits while in play.
const (
	HalfBreed     = "Half-Breed"
	SuperMunchkin = "Super Munchkin"
	Dwarf         = "Dwarf"
)

// CanEquip reports why card cannot be put into play for p, or nil if it can.
func (e *Engine) CanEquip(p *models.Player, card *models.Card) error {
	deny := func(reason string) error {
		return &RuleError{Action: "equip", Card: card.Name, Reason: reason}
	}
	area := p.Equipped

	switch card.Category {
	case models.CategoryRace:
		if area.HasName(card.Name) {
			return deny("already equipped")
		}
		if !area.CanEquipRace() {
			return deny(fmt.Sprintf("race limit %d reached", area.RaceLimit()))
		}
	case models.CategoryClass:
		if area.HasName(card.Name) {
			return deny("already equipped")
		}
		if !area.CanEquipClass() {
			return deny(fmt.Sprintf("class limit %d reached", area.ClassLimit()))
		}
	case models.CategoryOtherDoor:
		if card.Name != HalfBreed && card.Name != SuperMunchkin {
			return deny("not an equippable door card")
		}
		if area.HasName(card.Name) {
			return deny("already in play")
		}
	case models.CategoryHelper:
		if area.FindByCategory(models.CategoryHelper) != models.NotFound {
			return deny("already has a helper")
		}
	case models.CategoryItem:
		return canEquipItem(p, card, deny)
	default:
		return deny(fmt.Sprintf("%s cards cannot be equipped", card.Category))
	}
	return nil
}

func canEquipItem(p *models.Player, card *models.Card, deny func(string) error) error {
	area := p.Equipped
	item := card.Item
	if !usable(p, item.UsableBy) {
		return deny(fmt.Sprintf("usable by %s", item.UsableBy))
	}
	switch item.Classification {
	case models.Headgear:
		if area.HeadgearEquipped() {
			return deny("headgear already worn")
		}
	case models.Armor:
		if area.ArmorEquipped() {
			return deny("armor already worn")
		}
	case models.Footgear:
		if area.FootgearEquipped() {
			return deny("footgear already worn")
		}
	case models.Weapon:
		if area.WeaponHands()+item.Hands > models.MaxWeaponHands {
			return deny(fmt.Sprintf("needs %d free hand(s), %d in use", item.Hands, area.WeaponHands()))
		}
	}
	if item.Big && area.BigItemEquipped() && !area.HasName(Dwarf) {
		return deny("already carrying a big item")
	}
	return nil
}

// usable evaluates an item's eligibility text: "any", "males only",
// "human only", "<race or class> only" and "not <race or class>".
func usable(p *models.Player, requirement string) bool {
	req := strings.ToLower(strings.TrimSpace(requirement))
	switch req {
	case "", "any":
		return true
	case "male only", "males only":
		return p.Sex == models.Male
	case "female only", "females only":
		return p.Sex == models.Female
	case "human only":
		return p.Equipped.IsHuman()
	}
	if name, ok := strings.CutSuffix(req, " only"); ok {
		return hasRaceOrClass(p, name)
	}
	if name, ok := strings.CutPrefix(req, "not "); ok {
		return !hasRaceOrClass(p, name)
	}
	return true
}

func hasRaceOrClass(p *models.Player, name string) bool {
	name = strings.TrimSuffix(name, "s")
	for _, c := range p.Equipped.Cards() {
		if !c.Is(models.CategoryRace) && !c.Is(models.CategoryClass) {
			continue
		}
		if strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}

// Equip moves the card at pos in p's hand into play.
func (e *Engine) Equip(p *models.Player, pos int) (Outcome, error) {
	card, err := p.Hand.Get(pos)
	if err != nil {
		return Outcome{}, err
	}
	if err := e.CanEquip(p, card); err != nil {
		return Outcome{}, err
	}
	if _, err := p.Hand.Remove(pos); err != nil {
		return Outcome{}, err
	}
	p.Equipped.Add(card)

	o := newOutcome("Equip", p)
	o.Description = fmt.Sprintf("equipped %s", card.Name)
	switch {
	case card.Is(models.CategoryItem):
		e.applyItemBonus(&o, p, card.Item, 1)
	case card.Is(models.CategoryRace):
		o.change("race count", p.Equipped.RaceCount()-1, p.Equipped.RaceCount())
		e.syncRaceTraits(&o, p)
	case card.Is(models.CategoryClass):
		o.change("class count", p.Equipped.ClassCount()-1, p.Equipped.ClassCount())
	case card.Name == HalfBreed:
		p.Equipped.ExtendRaceLimit()
		o.change("race limit", models.DefaultRaceLimit, p.Equipped.RaceLimit())
	case card.Name == SuperMunchkin:
		p.Equipped.ExtendClassLimit()
		o.change("class limit", models.DefaultClassLimit, p.Equipped.ClassLimit())
	}
	e.logger.Info("equipped card", zap.Int("player", p.TurnNumber), zap.String("card", card.Name))
	return o, nil
}

// Unequip removes the card at pos from play and discards it. Half-Breed and
// Super Munchkin cannot leave play while the extra slot they grant is used.
func (e *Engine) Unequip(p *models.Player, pos int) (Outcome, error) {
	card, err := p.Equipped.Get(pos)
	if err != nil {
		return Outcome{}, err
	}
	deny := func(reason string) error {
		return &RuleError{Action: "unequip", Card: card.Name, Reason: reason}
	}
	if card.Name == HalfBreed && p.Equipped.RaceCount() > models.DefaultRaceLimit {
		return Outcome{}, deny("a second race is still equipped")
	}
	if card.Name == SuperMunchkin && p.Equipped.ClassCount() > models.DefaultClassLimit {
		return Outcome{}, deny("a second class is still equipped")
	}
	if _, err := p.Equipped.Remove(pos); err != nil {
		return Outcome{}, err
	}

	o := newOutcome("Unequip", p)
	o.Description = fmt.Sprintf("unequipped %s", card.Name)
	switch {
	case card.Is(models.CategoryItem):
		e.applyItemBonus(&o, p, card.Item, -1)
	case card.Is(models.CategoryRace):
		o.change("race count", p.Equipped.RaceCount()+1, p.Equipped.RaceCount())
		e.syncRaceTraits(&o, p)
	case card.Is(models.CategoryClass):
		o.change("class count", p.Equipped.ClassCount()+1, p.Equipped.ClassCount())
	case card.Name == HalfBreed:
		p.Equipped.ResetRaceLimit()
		o.change("race limit", models.HalfBreedLimit, p.Equipped.RaceLimit())
	case card.Name == SuperMunchkin:
		p.Equipped.ResetClassLimit()
		o.change("class limit", models.SuperMunchkinLimit, p.Equipped.ClassLimit())
	}
	if err := e.piles.Discard(card.Affinity, card); err != nil {
		return o, err
	}
	return o, nil
}

func (e *Engine) applyItemBonus(o *Outcome, p *models.Player, item *models.Item, sign int) {
	if item.CombatBonus != 0 {
		before := p.CombatBonus
		p.ModifyCombatBonus(sign * item.CombatBonus)
		o.change("combat bonus", before, p.CombatBonus)
	}
	if item.RunAwayBonus != 0 {
		before := p.RunAwayBonus
		p.ModifyRunAwayBonus(sign * item.RunAwayBonus)
		o.change("run away bonus", before, p.RunAwayBonus)
	}
}

// syncRaceTraits keeps race-dependent limits in line with the equipped
// races. A dwarf may hold six cards.
func (e *Engine) syncRaceTraits(o *Outcome, p *models.Player) {
	before := p.Hand.Limit()
	if p.Equipped.HasName(Dwarf) {
		p.Hand.ExtendLimit()
	} else {
		p.Hand.ResetLimit()
	}
	if p.Hand.Limit() != before {
		o.change("hand limit", before, p.Hand.Limit())
	}
}
