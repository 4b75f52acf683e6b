package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/tatianab/munchkin/internal/catalog"
	"github.com/tatianab/munchkin/internal/config"
	"github.com/tatianab/munchkin/internal/engine"
	"github.com/tatianab/munchkin/internal/models"
	"github.com/tatianab/munchkin/internal/session"
)

const maxTurns = 10

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger, err := cfg.NewLogger()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	s, err := session.New(session.Options{Players: cfg.Players, Seed: cfg.Seed, Catalog: cat, Logger: logger})
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}
	fmt.Printf("Seed %d, %d players\n\n", s.Seed, len(s.Players))

	for turn := 1; turn <= maxTurns; turn++ {
		fmt.Printf("--- Turn %d ---\n", turn)
		for _, p := range s.Players {
			if err := kickOpenTheDoor(s.Engine, p); err != nil {
				log.Fatalf("Player %d: %v", p.TurnNumber, err)
			}
		}
		fmt.Println()
	}

	fmt.Println("--- Final table ---")
	for _, p := range s.Players {
		fmt.Printf("Player %d: level %d, %s, combat +%d, hand %d, equipped %v\n",
			p.TurnNumber, p.Level, p.Sex, p.CombatBonus, p.Hand.Len(), p.Equipped.Cards())
	}
}

// kickOpenTheDoor draws a door card for p, resolves it if it is a curse,
// puts whatever it can into play and then discards down to the hand limit.
func kickOpenTheDoor(eng *engine.Engine, p *models.Player) error {
	o, err := eng.DrawToHand(p, models.Door)
	if err != nil {
		return err
	}
	fmt.Println(o)

	drawn, err := p.Hand.Get(p.Hand.Len())
	if err != nil {
		return err
	}
	if drawn.Is(models.CategoryCurse) {
		o, err := eng.ResolveFromHand(p, p.Hand.Len(), p)
		var choice *engine.RequiresChoiceError
		var unhandled *engine.UnhandledEffectError
		switch {
		case errors.As(err, &choice), errors.As(err, &unhandled):
			fmt.Println(o)
			if _, err := eng.DiscardFromHand(p, p.Hand.Len()); err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			fmt.Println(o)
		}
	}

	for pos := p.Hand.Len(); pos >= 1; pos-- {
		c, err := p.Hand.Get(pos)
		if err != nil {
			return err
		}
		switch {
		case c.Is(models.CategoryGoUpALevel):
			o, err = eng.PlayGoUpALevel(p, pos)
		case eng.CanEquip(p, c) == nil:
			o, err = eng.Equip(p, pos)
		default:
			continue
		}
		if err != nil {
			return err
		}
		fmt.Println(o)
	}

	for p.Hand.MustDiscard() {
		o, err := eng.DiscardFromHand(p, 1)
		if err != nil {
			return err
		}
		fmt.Println(o)
	}
	return nil
}
