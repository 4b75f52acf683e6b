package models

import (
	"errors"
	"fmt"
)

// NotFound is the position returned by hand and equipped-area lookups
// that match nothing. Valid positions start at 1.
const NotFound = 0

// ErrUnknownPile is returned for a pile kind other than door or treasure.
var ErrUnknownPile = errors.New("unknown pile kind")

// ErrWrongPile is returned when a card is sent to a pile it does not belong to.
var ErrWrongPile = errors.New("card does not belong to this pile")

// OutOfRangeError reports a 1-based position outside a card sequence.
type OutOfRangeError struct {
	Position int
	Size     int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("position %d out of range [1, %d]", e.Position, e.Size)
}

// EmptyPileError reports that both a pile and its discards are exhausted.
type EmptyPileError struct {
	Kind Affinity
}

func (e *EmptyPileError) Error() string {
	return fmt.Sprintf("%s pile and %s discards are both empty", e.Kind, e.Kind)
}

func checkPosition(pos, size int) error {
	if pos < 1 || pos > size {
		return &OutOfRangeError{Position: pos, Size: size}
	}
	return nil
}
