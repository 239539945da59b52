package transition

import (
	"sync"

	"github.com/cory-johannsen/dicee/internal/game/dice"
	"github.com/cory-johannsen/dicee/internal/game/keep"
)

// Entry is one reachable configuration and the chance of reaching it.
type Entry struct {
	Target      dice.Index
	Probability Probability
}

type key struct {
	kept   dice.Counts
	toRoll uint8
}

// Table maps every held-dice state to its outcome distribution. Only nonzero
// entries are stored, in ascending target index order.
//
// A Table is immutable after Build and safe for concurrent use.
type Table struct {
	entries map[key][]Entry
	total   int
}

// Build enumerates every held-counts vector of total at most five, paired with
// the matching number of dice to throw, and computes its distribution over all
// configurations.
//
// Postcondition: StateCount() == 462 and every distribution sums to 1 within Tolerance.
func Build() *Table {
	t := &Table{entries: make(map[key][]Entry, 462)}
	all := dice.All()
	for toRoll := 0; toRoll <= dice.NumDice; toRoll++ {
		distribute(dice.NumDice-toRoll, dice.NumDice, func(kept dice.Counts) {
			var row []Entry
			for i, target := range all {
				p, ok := TransitionProbability(kept, target.Counts(), toRoll)
				if !ok || p.IsZero() {
					continue
				}
				row = append(row, Entry{Target: dice.Index(i), Probability: p})
			}
			t.entries[key{kept: kept, toRoll: uint8(toRoll)}] = row
			t.total += len(row)
		})
	}
	return t
}

// Default returns the process-wide table, building it on first use.
var Default = sync.OnceValue(Build)

// Get returns the outcome distribution for s. The slice is shared and must not be
// modified.
//
// Postcondition: The probabilities sum to 1 within Tolerance.
func (t *Table) Get(s keep.Partial) []Entry {
	row, ok := t.entries[key{kept: s.Kept(), toRoll: uint8(s.ToRoll())}]
	if !ok {
		panic("transition: Get precondition violated: no distribution for " + s.String())
	}
	return row
}

// ExpectedValue returns Σ P(target) × value(target) over the outcomes of s.
func (t *Table) ExpectedValue(s keep.Partial, value func(dice.Config) float64) float64 {
	total := 0.0
	for _, e := range t.Get(s) {
		total += e.Probability.Float64() * value(dice.FromIndex(e.Target))
	}
	return total
}

// StateCount returns the number of held-dice states in the table.
func (t *Table) StateCount() int {
	return len(t.entries)
}

// EntryCount returns the total number of stored (state, target) pairs.
func (t *Table) EntryCount() int {
	return t.total
}
