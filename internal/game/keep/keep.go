// Package keep models the reroll decision: which dice to hold before throwing the
// rest, the partial state that decision leaves behind, and enumeration of every
// legal decision for a roll.
package keep

import (
	"fmt"
	"iter"
	"strings"

	"github.com/cory-johannsen/dicee/internal/game/dice"
)

// InvalidPatternError reports a keep request that holds more dice of a face than
// the roll shows, or more than five dice overall. Face is 0 when the total is at
// fault.
type InvalidPatternError struct {
	Face      int
	Requested int
	Available int
}

func (e *InvalidPatternError) Error() string {
	if e.Face == 0 {
		return fmt.Sprintf("keep: cannot keep %d dice, only %d available", e.Requested, e.Available)
	}
	return fmt.Sprintf("keep: cannot keep %d of face %d, only %d available", e.Requested, e.Face, e.Available)
}

// Is reports dice.ErrInvalidInput.
func (e *InvalidPatternError) Is(target error) bool { return target == dice.ErrInvalidInput }

// Pattern is how many dice of each face to hold.
//
// Invariant: kept.Total() <= dice.NumDice.
type Pattern struct {
	kept dice.Counts
}

// None holds nothing; every die is rerolled.
var None = Pattern{}

// NewPattern validates kept.
//
// Postcondition: Returns an *InvalidPatternError when more than five dice are held.
func NewPattern(kept dice.Counts) (Pattern, error) {
	if total := kept.Total(); total > dice.NumDice {
		return Pattern{}, &InvalidPatternError{Requested: total, Available: dice.NumDice}
	}
	return Pattern{kept: kept}, nil
}

// All holds every die of cfg.
func All(cfg dice.Config) Pattern {
	return Pattern{kept: cfg.Counts()}
}

// Count returns how many dice showing face are held.
//
// Precondition: face in [1, 6].
func (p Pattern) Count(face int) int {
	if face < 1 || face > dice.NumFaces {
		panic(fmt.Sprintf("keep: Count precondition violated: face %d outside [1, 6]", face))
	}
	return int(p.kept[face-1])
}

// Counts returns the held counts per face.
func (p Pattern) Counts() dice.Counts {
	return p.kept
}

// Total returns the number of dice held.
func (p Pattern) Total() int {
	return p.kept.Total()
}

// ToRoll returns the number of dice thrown after holding p.
func (p Pattern) ToRoll() int {
	return dice.NumDice - p.Total()
}

// IsValidFor reports whether cfg shows every die p holds.
func (p Pattern) IsValidFor(cfg dice.Config) bool {
	return p.ValidateFor(cfg) == nil
}

// ValidateFor checks p against cfg.
//
// Postcondition: Returns an *InvalidPatternError naming the first face for which
// p holds more dice than cfg shows.
func (p Pattern) ValidateFor(cfg dice.Config) error {
	for face := 1; face <= dice.NumFaces; face++ {
		if requested, available := p.Count(face), cfg.Count(face); requested > available {
			return &InvalidPatternError{Face: face, Requested: requested, Available: available}
		}
	}
	return nil
}

// Partial returns the partial state p leaves behind.
func (p Pattern) Partial() Partial {
	return Partial{kept: p.kept, toRoll: p.ToRoll()}
}

// String renders p compactly, e.g. "keep 2x1, 3x3" or "keep none".
func (p Pattern) String() string {
	var parts []string
	for face := 1; face <= dice.NumFaces; face++ {
		if n := p.Count(face); n > 0 {
			parts = append(parts, fmt.Sprintf("%dx%d", n, face))
		}
	}
	if len(parts) == 0 {
		return "keep none"
	}
	return "keep " + strings.Join(parts, ", ")
}

// Describe renders p for players, e.g. "Keep 2 1s, 3 3s", "Keep one 1" or
// "Reroll all dice".
func Describe(p Pattern) string {
	var parts []string
	for face := 1; face <= dice.NumFaces; face++ {
		switch n := p.Count(face); n {
		case 0:
		case 1:
			parts = append(parts, fmt.Sprintf("one %d", face))
		default:
			parts = append(parts, fmt.Sprintf("%d %ds", n, face))
		}
	}
	if len(parts) == 0 {
		return "Reroll all dice"
	}
	return "Keep " + strings.Join(parts, ", ")
}

// CountFor returns the number of patterns Enumerate yields for cfg: the product of
// count(f)+1 over every face.
func CountFor(cfg dice.Config) int {
	n := 1
	for _, c := range cfg.Counts() {
		n *= int(c) + 1
	}
	return n
}

// Enumerate yields every legal pattern for cfg. The sequence is a mixed-radix
// counter over the per-face ranges with face 1 varying fastest, so it always
// starts at None and ends at All(cfg). Callers rely on this order to break ties.
func Enumerate(cfg dice.Config) iter.Seq[Pattern] {
	limit := cfg.Counts()
	return func(yield func(Pattern) bool) {
		var cur dice.Counts
		for {
			if !yield(Pattern{kept: cur}) {
				return
			}
			i := 0
			for ; i < dice.NumFaces; i++ {
				if cur[i] < limit[i] {
					cur[i]++
					break
				}
				cur[i] = 0
			}
			if i == dice.NumFaces {
				return
			}
		}
	}
}

// Patterns collects Enumerate(cfg).
func Patterns(cfg dice.Config) []Pattern {
	out := make([]Pattern, 0, CountFor(cfg))
	for p := range Enumerate(cfg) {
		out = append(out, p)
	}
	return out
}
