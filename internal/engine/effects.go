package engine

import (
	"slices"

	"github.com/tatianab/munchkin/internal/models"
)

// Curse effect names, matching the card names in the catalog.
const (
	ChangeClass    = "Curse! Change Class"
	ChangeRace     = "Curse! Change Race"
	ChangeSex      = "Curse! Change Sex"
	ChickenOnHead  = "Curse! Chicken On Your Head"
	DuckOfDoom     = "Curse! Duck Of Doom"
	IncomeTax      = "Curse! Income Tax"
	LoseBigItem    = "Curse! Lose A Big Item"
	LoseLevel      = "Curse! Lose A Level"
	LoseSmallItem  = "Curse! Lose A Small Item"
	LoseArmor      = "Curse! Lose The Armor You Are Wearing"
	LoseFootgear   = "Curse! Lose The Footgear You Are Wearing"
	LoseHeadgear   = "Curse! Lose The Headgear You Are Wearing"
	LoseTwoCards   = "Curse! Lose Two Cards"
	LoseClass      = "Curse! Lose Your Class"
	LoseRace       = "Curse! Lose Your Race"
	MalignMirror   = "Curse! Malign Mirror"
	TrulyObnoxious = "Truly Obnoxious Curse!"
)

// Kind is the dispatch category of an effect name.
type Kind int

const (
	KindUnknown Kind = iota
	KindAutomatic
	KindPlaceholder
	KindPlayerChoice
)

func (k Kind) String() string {
	switch k {
	case KindAutomatic:
		return "automatic"
	case KindPlaceholder:
		return "placeholder"
	case KindPlayerChoice:
		return "player choice"
	default:
		return "unknown"
	}
}

type handler func(e *Engine, effect string, p *models.Player) (Outcome, error)

type effectDef struct {
	kind    Kind
	resolve handler
}

var effects = map[string]effectDef{
	ChangeClass:   {KindAutomatic, (*Engine).changeClass},
	ChangeRace:    {KindAutomatic, (*Engine).changeRace},
	ChangeSex:     {KindAutomatic, (*Engine).changeSex},
	ChickenOnHead: {KindAutomatic, (*Engine).chickenOnHead},
	DuckOfDoom:    {KindAutomatic, (*Engine).duckOfDoom},
	LoseLevel:     {KindAutomatic, (*Engine).loseLevel},

	LoseArmor:      {kind: KindPlaceholder},
	LoseFootgear:   {kind: KindPlaceholder},
	LoseHeadgear:   {kind: KindPlaceholder},
	LoseClass:      {kind: KindPlaceholder},
	LoseRace:       {kind: KindPlaceholder},
	MalignMirror:   {kind: KindPlaceholder},
	TrulyObnoxious: {kind: KindPlaceholder},

	IncomeTax:     {kind: KindPlayerChoice},
	LoseBigItem:   {kind: KindPlayerChoice},
	LoseSmallItem: {kind: KindPlayerChoice},
	LoseTwoCards:  {kind: KindPlayerChoice},
}

// KindOf reports how Resolve will treat effect.
func KindOf(effect string) Kind {
	return effects[effect].kind
}

// Effects returns every effect name the engine recognizes, sorted.
func Effects() []string {
	out := make([]string, 0, len(effects))
	for name := range effects {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}
