package engine

import (
	"fmt"
	"strings"

	"github.com/tatianab/munchkin/internal/models"
)

// Status classifies how an effect resolved.
type Status int

const (
	StatusApplied Status = iota
	StatusNoEffect
	StatusNotImplemented
	StatusRequiresChoice
	StatusUnhandled
)

func (s Status) String() string {
	switch s {
	case StatusApplied:
		return "Applied"
	case StatusNoEffect:
		return "No effect"
	case StatusNotImplemented:
		return "Not implemented"
	case StatusRequiresChoice:
		return "Requires player decision"
	case StatusUnhandled:
		return "Unhandled"
	default:
		return "Unknown"
	}
}

// Change records one field of player or pile state before and after an effect.
type Change struct {
	Field  string `yaml:"field"`
	Before string `yaml:"before"`
	After  string `yaml:"after"`
}

// Outcome is the structured result of an engine operation, ready for a
// caller to render or log.
type Outcome struct {
	Effect      string   `yaml:"effect"`
	Target      int      `yaml:"target"` // player turn number
	Status      Status   `yaml:"status"`
	Description string   `yaml:"description"`
	Changes     []Change `yaml:"changes,omitempty"`
}

func newOutcome(effect string, p *models.Player) Outcome {
	return Outcome{Effect: effect, Target: p.TurnNumber, Status: StatusApplied}
}

func (o *Outcome) change(field string, before, after any) {
	o.Changes = append(o.Changes, Change{Field: field, Before: fmt.Sprint(before), After: fmt.Sprint(after)})
}

func (o Outcome) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s -> player %d: %s", o.Effect, o.Target, o.Status)
	if o.Description != "" {
		fmt.Fprintf(&b, " (%s)", o.Description)
	}
	for _, c := range o.Changes {
		fmt.Fprintf(&b, "\n  %s: %s -> %s", c.Field, c.Before, c.After)
	}
	return b.String()
}

func names(cards []*models.Card) string {
	if len(cards) == 0 {
		return "none"
	}
	s := make([]string, len(cards))
	for i, c := range cards {
		s[i] = c.Name
	}
	return strings.Join(s, ", ")
}
