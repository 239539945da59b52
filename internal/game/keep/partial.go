package keep

import (
	"fmt"

	"github.com/cory-johannsen/dicee/internal/game/dice"
)

// Partial is the state between holding dice and throwing the rest: the held
// counts and how many dice are about to be rolled.
//
// Invariant: kept.Total() + toRoll == dice.NumDice.
type Partial struct {
	kept   dice.Counts
	toRoll int
}

// NewPartial validates p against cfg and returns the state it leaves.
//
// Postcondition: Returns an *InvalidPatternError when cfg does not show the dice p holds.
func NewPartial(cfg dice.Config, p Pattern) (Partial, error) {
	if err := p.ValidateFor(cfg); err != nil {
		return Partial{}, err
	}
	return p.Partial(), nil
}

// Kept returns the held counts.
func (s Partial) Kept() dice.Counts {
	return s.kept
}

// ToRoll returns the number of dice about to be thrown.
func (s Partial) ToRoll() int {
	return s.toRoll
}

// Pattern returns the pattern that produced s.
func (s Partial) Pattern() Pattern {
	return Pattern{kept: s.kept}
}

func (s Partial) String() string {
	return fmt.Sprintf("%s, roll %d", s.Pattern(), s.toRoll)
}

// Combine adds the faces thrown to the held dice.
//
// Precondition: rolled.Total() == s.ToRoll(). Anything else is a caller defect
// and panics.
// Postcondition: Returns the resulting five-dice configuration.
func Combine(s Partial, rolled dice.Counts) dice.Config {
	if got := rolled.Total(); got != s.toRoll {
		panic(fmt.Sprintf("keep: Combine precondition violated: rolled %d dice, want %d", got, s.toRoll))
	}
	var sum dice.Counts
	for i := range sum {
		sum[i] = s.kept[i] + rolled[i]
	}
	cfg, err := dice.FromCounts(sum)
	if err != nil {
		panic("keep: Combine produced an invalid configuration: " + err.Error())
	}
	return cfg
}
