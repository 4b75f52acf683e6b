// Package engine applies card effects to players and the shared piles.
package engine

import (
	"fmt"

	"github.com/tatianab/munchkin/internal/dice"
	"github.com/tatianab/munchkin/internal/models"
	"github.com/tatianab/munchkin/internal/piles"
	"go.uber.org/zap"
)

// Engine resolves effects one at a time. It holds no player state of its
// own and is not safe for concurrent use.
type Engine struct {
	piles  *piles.Manager
	roller *dice.Roller
	logger *zap.Logger
}

func New(p *piles.Manager, roller *dice.Roller, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{piles: p, roller: roller, logger: logger}
}

func (e *Engine) Piles() *piles.Manager { return e.piles }

// Resolve applies the named effect to target. Game-rule "no effect"
// results come back as StatusNoEffect with a nil error. Effects needing a
// player decision return *RequiresChoiceError and unknown names return
// *UnhandledEffectError; in both cases nothing is changed.
func (e *Engine) Resolve(effect string, target *models.Player) (Outcome, error) {
	def, ok := effects[effect]
	o := newOutcome(effect, target)

	var err error
	switch {
	case !ok:
		o.Status = StatusUnhandled
		o.Description = "effect is not known to the engine"
		err = &UnhandledEffectError{Effect: effect}
	case def.kind == KindPlayerChoice:
		o.Status = StatusRequiresChoice
		o.Description = "the target player must choose what to give up"
		err = &RequiresChoiceError{Effect: effect}
	case def.kind == KindPlaceholder:
		o.Status = StatusNotImplemented
		o.Description = "effect is not yet implemented"
	default:
		o, err = def.resolve(e, effect, target)
	}

	fields := []zap.Field{
		zap.String("effect", effect),
		zap.Int("player", target.TurnNumber),
		zap.Stringer("status", o.Status),
	}
	if err != nil {
		e.logger.Warn("effect not resolved", append(fields, zap.Error(err))...)
	} else {
		e.logger.Info("effect resolved", fields...)
	}
	return o, err
}

// ResolveFromHand plays the curse at pos in player's hand against target
// and discards it. Curses that cannot be resolved automatically stay in
// the hand.
func (e *Engine) ResolveFromHand(player *models.Player, pos int, target *models.Player) (Outcome, error) {
	card, err := player.Hand.Get(pos)
	if err != nil {
		return Outcome{}, err
	}
	if !card.Is(models.CategoryCurse) {
		return Outcome{}, &RuleError{Action: "play", Card: card.Name, Reason: "not a curse"}
	}
	if k := KindOf(card.Name); k == KindUnknown || k == KindPlayerChoice {
		return e.Resolve(card.Name, target)
	}
	if _, err := player.Hand.Remove(pos); err != nil {
		return Outcome{}, err
	}
	o, err := e.Resolve(card.Name, target)
	if derr := e.piles.Discard(card.Affinity, card); derr != nil && err == nil {
		err = derr
	}
	return o, err
}

// RollDie rolls for p, applying the chicken penalty when set.
func (e *Engine) RollDie(p *models.Player) int {
	v := e.roller.Roll(p.ChickenOnHead)
	e.logger.Debug("rolled die", zap.Int("player", p.TurnNumber), zap.Int("value", v))
	return v
}

// DrawToHand draws the top card of kind into p's hand.
func (e *Engine) DrawToHand(p *models.Player, kind models.Affinity) (Outcome, error) {
	c, err := e.piles.Draw(kind)
	if err != nil {
		return Outcome{}, err
	}
	before := p.Hand.Len()
	p.Hand.Add(c)

	o := newOutcome(fmt.Sprintf("Draw %s", kind), p)
	o.Description = fmt.Sprintf("drew %s", c.Name)
	o.change("hand size", before, p.Hand.Len())
	return o, nil
}

// DiscardFromHand moves the card at pos to its discard pile.
func (e *Engine) DiscardFromHand(p *models.Player, pos int) (Outcome, error) {
	c, err := p.Hand.Remove(pos)
	if err != nil {
		return Outcome{}, err
	}
	if err := e.piles.Discard(c.Affinity, c); err != nil {
		return Outcome{}, err
	}
	o := newOutcome("Discard", p)
	o.Description = fmt.Sprintf("discarded %s", c.Name)
	o.change("hand size", p.Hand.Len()+1, p.Hand.Len())
	return o, nil
}
