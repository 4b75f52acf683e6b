package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tatianab/munchkin/internal/engine"
	"github.com/tatianab/munchkin/internal/models"
	"github.com/tatianab/munchkin/internal/session"
)

const usage = "draw <p> door|treasure, curse <p> <effect>, play <p> <pos> [target], equip <p> <pos>, unequip <p> <pos>, discard <p> <pos>, roll <p>, effects, /save, /quit"

var errUsage = errors.New("usage: " + usage)

// execute runs one command line against s and returns the text to log.
func execute(s *session.Session, line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", errUsage
	}
	verb := strings.ToLower(fields[0])
	if verb == "effects" {
		return listEffects(), nil
	}
	if verb == "help" {
		return usage, nil
	}
	if len(fields) < 2 {
		return "", errUsage
	}
	p, err := playerArg(s, fields[1])
	if err != nil {
		return "", err
	}
	eng := s.Engine
	args := fields[2:]

	switch verb {
	case "roll":
		return fmt.Sprintf("player %d rolled %d", p.TurnNumber, eng.RollDie(p)), nil
	case "draw":
		if len(args) != 1 {
			return "", errUsage
		}
		kind := models.Affinity(strings.ToLower(args[0]))
		if !kind.Valid() {
			return "", fmt.Errorf("unknown pile %q", args[0])
		}
		return outcome(eng.DrawToHand(p, kind))
	case "curse":
		if len(args) == 0 {
			return "", errUsage
		}
		return outcome(eng.Resolve(effectName(strings.Join(args, " ")), p))
	case "play":
		if len(args) < 1 || len(args) > 2 {
			return "", errUsage
		}
		pos, err := posArg(args[0])
		if err != nil {
			return "", err
		}
		target := p
		if len(args) == 2 {
			if target, err = playerArg(s, args[1]); err != nil {
				return "", err
			}
		}
		return play(eng, p, pos, target)
	case "equip", "unequip", "discard":
		if len(args) != 1 {
			return "", errUsage
		}
		pos, err := posArg(args[0])
		if err != nil {
			return "", err
		}
		switch verb {
		case "equip":
			return outcome(eng.Equip(p, pos))
		case "unequip":
			return outcome(eng.Unequip(p, pos))
		default:
			return outcome(eng.DiscardFromHand(p, pos))
		}
	}
	return "", fmt.Errorf("unknown command %q", fields[0])
}

// play dispatches a card from hand by its category.
func play(eng *engine.Engine, p *models.Player, pos int, target *models.Player) (string, error) {
	card, err := p.Hand.Get(pos)
	if err != nil {
		return "", err
	}
	switch card.Category {
	case models.CategoryCurse:
		return outcome(eng.ResolveFromHand(p, pos, target))
	case models.CategoryGoUpALevel:
		return outcome(eng.PlayGoUpALevel(p, pos))
	}
	return "", &engine.RuleError{Action: "play", Card: card.Name, Reason: "use equip or discard instead"}
}

func outcome(o engine.Outcome, err error) (string, error) {
	if err != nil {
		var choice *engine.RequiresChoiceError
		var unhandled *engine.UnhandledEffectError
		if errors.As(err, &choice) || errors.As(err, &unhandled) {
			return o.String(), nil
		}
		return "", err
	}
	return o.String(), nil
}

// effectName matches a typed effect against the known names ignoring case.
func effectName(typed string) string {
	for _, name := range engine.Effects() {
		if strings.EqualFold(name, typed) {
			return name
		}
	}
	return typed
}

func listEffects() string {
	var b strings.Builder
	for _, name := range engine.Effects() {
		fmt.Fprintf(&b, "%s (%s)\n", name, engine.KindOf(name))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func playerArg(s *session.Session, arg string) (*models.Player, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return nil, fmt.Errorf("player must be a number, got %q", arg)
	}
	return s.Player(n)
}

func posArg(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("position must be a number, got %q", arg)
	}
	return n, nil
}
