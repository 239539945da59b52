// Package transition computes exact reroll probabilities: the multinomial law of
// throwing k dice, and a precomputed table mapping every held-dice state to the
// distribution over the five-dice configurations it can reach.
package transition

import (
	"fmt"

	"github.com/cory-johannsen/dicee/internal/game/dice"
)

// Probability is a float64 in [0, 1].
type Probability float64

// InvalidProbabilityError reports a value outside [0, 1].
type InvalidProbabilityError struct {
	Value float64
}

func (e *InvalidProbabilityError) Error() string {
	return fmt.Sprintf("transition: probability %g outside [0, 1]", e.Value)
}

// NewProbability validates v.
//
// Postcondition: Returns an *InvalidProbabilityError when v is outside [0, 1] or NaN.
func NewProbability(v float64) (Probability, error) {
	if !(v >= 0 && v <= 1) {
		return 0, &InvalidProbabilityError{Value: v}
	}
	return Probability(v), nil
}

// mustProbability wraps a value derived by construction to lie in [0, 1].
//
// Precondition: 0 <= v <= 1. A violation is an arithmetic defect and panics.
func mustProbability(v float64) Probability {
	p, err := NewProbability(v)
	if err != nil {
		panic("transition: derived probability violated its range: " + err.Error())
	}
	return p
}

// Float64 returns p as a float64.
func (p Probability) Float64() float64 {
	return float64(p)
}

// IsZero reports whether p is exactly zero.
func (p Probability) IsZero() bool {
	return p == 0
}

// Tolerance is the absolute error allowed when comparing summed probabilities.
const Tolerance = 1e-9

var factorials = [dice.NumDice + 1]int{1, 1, 2, 6, 24, 120}

// Factorial returns n!.
//
// Precondition: 0 <= n <= 5.
func Factorial(n int) int {
	if n < 0 || n > dice.NumDice {
		panic(fmt.Sprintf("transition: Factorial precondition violated: n=%d outside [0, 5]", n))
	}
	return factorials[n]
}

// Multinomial returns k! / ∏ counts[f]! where k = counts.Total(): the number of
// ordered throws that show exactly counts.
//
// Precondition: counts.Total() <= 5.
func Multinomial(counts dice.Counts) int {
	m := Factorial(counts.Total())
	for _, c := range counts {
		m /= factorials[c]
	}
	return m
}

// powSix holds 6^k for k in [0, 5].
var powSix = [dice.NumDice + 1]int{1, 6, 36, 216, 1296, 7776}

// RollOutcomeProbability returns the chance that throwing k dice shows exactly
// counts: Multinomial(counts) / 6^k.
//
// Precondition: counts.Total() == k and 0 <= k <= 5.
func RollOutcomeProbability(counts dice.Counts, k int) Probability {
	if k < 0 || k > dice.NumDice {
		panic(fmt.Sprintf("transition: RollOutcomeProbability precondition violated: k=%d outside [0, 5]", k))
	}
	if got := counts.Total(); got != k {
		panic(fmt.Sprintf("transition: RollOutcomeProbability precondition violated: counts %s sum to %d, want %d", counts, got, k))
	}
	return mustProbability(float64(Multinomial(counts)) / float64(powSix[k]))
}

// TransitionProbability returns the chance that holding kept and throwing k dice
// ends on target.
//
// Postcondition: ok is false when target cannot be reached: it shows fewer of some
// face than kept holds, or the difference does not total k.
func TransitionProbability(kept, target dice.Counts, k int) (p Probability, ok bool) {
	var needed dice.Counts
	for i := range needed {
		if target[i] < kept[i] {
			return 0, false
		}
		needed[i] = target[i] - kept[i]
	}
	if needed.Total() != k {
		return 0, false
	}
	return RollOutcomeProbability(needed, k), true
}

// outcomeCounts[k] is C(k+5, 5), the number of distinct throws of k dice.
var outcomeCounts = [dice.NumDice + 1]int{1, 6, 21, 56, 126, 252}

// OutcomeCount returns the number of distinct unordered throws of k dice.
//
// Precondition: 0 <= k <= 5.
func OutcomeCount(k int) int {
	if k < 0 || k > dice.NumDice {
		panic(fmt.Sprintf("transition: OutcomeCount precondition violated: k=%d outside [0, 5]", k))
	}
	return outcomeCounts[k]
}

// ForEachOutcome calls fn with every distinct unordered throw of k dice, in
// lexicographic order of the count vector.
//
// Precondition: 0 <= k <= 5.
func ForEachOutcome(k int, fn func(dice.Counts)) {
	if k < 0 || k > dice.NumDice {
		panic(fmt.Sprintf("transition: ForEachOutcome precondition violated: k=%d outside [0, 5]", k))
	}
	distribute(k, dice.NumDice, fn)
}

// distribute spreads total dice across the six faces, allowing at most perFace on
// any one face.
func distribute(total, perFace int, fn func(dice.Counts)) {
	var counts dice.Counts
	var fill func(face, remaining int)
	fill = func(face, remaining int) {
		if face == dice.NumFaces-1 {
			if remaining > perFace {
				return
			}
			counts[face] = uint8(remaining)
			fn(counts)
			return
		}
		for c := 0; c <= min(remaining, perFace); c++ {
			counts[face] = uint8(c)
			fill(face+1, remaining-c)
		}
	}
	fill(0, total)
}

// ExpectedValueOverRolls returns Σ P(outcome) × fn(outcome) over every throw of k dice.
//
// Precondition: 0 <= k <= 5.
func ExpectedValueOverRolls(k int, fn func(dice.Counts) float64) float64 {
	total := 0.0
	ForEachOutcome(k, func(counts dice.Counts) {
		total += RollOutcomeProbability(counts, k).Float64() * fn(counts)
	})
	return total
}
