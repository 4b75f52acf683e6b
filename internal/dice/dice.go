// Package dice isolates the randomness used by the game: pile shuffles and
// six-sided die rolls. A seeded Source makes both reproducible.
package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

const (
	MinRoll = 1
	MaxRoll = 6
)

// Source is the random service the game depends on. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewSource returns a deterministic source for seed.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Roller rolls a six-sided die.
type Roller struct {
	src Source
}

func NewRoller(src Source) *Roller {
	return &Roller{src: src}
}

// Roll returns a value in [1, 6]. With penalty set the result is reduced
// by one and may be 0.
func (r *Roller) Roll(penalty bool) int {
	v := r.src.IntN(MaxRoll) + MinRoll
	if penalty {
		v--
	}
	return v
}
