package engine

import "fmt"

// UnhandledEffectError is returned for an effect name the engine does not
// know. The outcome is a no-op and callers may continue.
type UnhandledEffectError struct {
	Effect string
}

func (e *UnhandledEffectError) Error() string {
	return fmt.Sprintf("unhandled effect %q", e.Effect)
}

// RequiresChoiceError is returned for effects that need the target player
// to pick what to give up. The engine does not resolve them.
type RequiresChoiceError struct {
	Effect string
}

func (e *RequiresChoiceError) Error() string {
	return fmt.Sprintf("effect %q requires a player decision", e.Effect)
}

// RuleError reports an action the game rules forbid, such as equipping a
// second armor.
type RuleError struct {
	Action string
	Card   string
	Reason string
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("cannot %s %s: %s", e.Action, e.Card, e.Reason)
}
