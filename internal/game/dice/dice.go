// Package dice provides the canonical representation of a five-die roll for the
// dicee advisor: an unordered multiset stored as per-face counts, its dense index
// into the 252 canonical configurations, and the randomness used to deal real dice.
package dice

import "fmt"

const (
	// NumDice is the number of dice in a roll.
	NumDice = 5
	// NumFaces is the number of faces on each die.
	NumFaces = 6
)

// Counts holds one count per face value: Counts[0] is the number of 1s and
// Counts[5] the number of 6s.
type Counts [NumFaces]uint8

// Total returns the number of dice described by c.
func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += int(n)
	}
	return total
}

// Pips returns the sum of the face values described by c.
func (c Counts) Pips() int {
	sum := 0
	for i, n := range c {
		sum += (i + 1) * int(n)
	}
	return sum
}

// String renders c as its count vector, e.g. "[1 0 2 1 0 1]".
func (c Counts) String() string {
	return fmt.Sprint([NumFaces]uint8(c))
}

// Config is a canonical (unordered) roll of five dice.
//
// Invariant: counts.Total() == NumDice for every Config obtained from this package.
// The zero value is not a valid Config.
type Config struct {
	counts Counts
}

// newConfig wraps counts without validation.
//
// Precondition: counts.Total() == NumDice. Only enumeration and code paths that have
// already validated their input may call it.
func newConfig(counts Counts) Config {
	return Config{counts: counts}
}

// FromDice builds a Config from five ordered face values.
//
// Postcondition: Returns a valid Config, or an *InvalidDieError naming the first
// die outside [1, 6].
func FromDice(faces [NumDice]int) (Config, error) {
	var counts Counts
	for pos, f := range faces {
		if f < 1 || f > NumFaces {
			return Config{}, &InvalidDieError{Value: f, Position: pos}
		}
		counts[f-1]++
	}
	return newConfig(counts), nil
}

// FromSlice is FromDice for callers holding a slice, such as decoded requests.
//
// Postcondition: Returns an *InvalidDiceCountError when len(faces) != NumDice.
func FromSlice(faces []int) (Config, error) {
	if len(faces) != NumDice {
		return Config{}, &InvalidDiceCountError{Got: len(faces)}
	}
	var arr [NumDice]int
	copy(arr[:], faces)
	return FromDice(arr)
}

// MustFromDice is FromDice that panics on invalid input. Intended for tests and
// package-level fixtures.
func MustFromDice(faces ...int) Config {
	cfg, err := FromSlice(faces)
	if err != nil {
		panic("dice: MustFromDice: " + err.Error())
	}
	return cfg
}

// FromCounts validates a per-face count vector.
//
// Postcondition: Returns a valid Config, or an *InvalidCountsError when the counts
// do not sum to NumDice.
func FromCounts(counts Counts) (Config, error) {
	if total := counts.Total(); total != NumDice {
		return Config{}, &InvalidCountsError{Counts: counts, Total: total}
	}
	return newConfig(counts), nil
}

// Count returns how many dice show face.
//
// Precondition: face in [1, 6].
func (c Config) Count(face int) int {
	if face < 1 || face > NumFaces {
		panic(fmt.Sprintf("dice: Count precondition violated: face %d outside [1, 6]", face))
	}
	return int(c.counts[face-1])
}

// Counts returns the per-face count vector.
func (c Config) Counts() Counts {
	return c.counts
}

// Sum returns the total of all five dice.
func (c Config) Sum() int {
	return c.counts.Pips()
}

// MaxCount returns the largest number of dice sharing one face.
func (c Config) MaxCount() int {
	best := uint8(0)
	for _, n := range c.counts {
		best = max(best, n)
	}
	return int(best)
}

// ModeFace returns the face with the highest count, preferring the higher face on
// ties.
func (c Config) ModeFace() int {
	best := NumFaces
	for face := NumFaces - 1; face >= 1; face-- {
		if c.counts[face-1] > c.counts[best-1] {
			best = face
		}
	}
	return best
}

// Distinct returns the number of different faces showing.
func (c Config) Distinct() int {
	n := 0
	for _, count := range c.counts {
		if count > 0 {
			n++
		}
	}
	return n
}

// IsFiveOfAKind reports whether all five dice show the same face.
func (c Config) IsFiveOfAKind() bool {
	return c.MaxCount() == NumDice
}

// IsFullHouse reports whether one face shows exactly three times and a different
// face exactly twice.
func (c Config) IsFullHouse() bool {
	var three, two bool
	for _, n := range c.counts {
		switch n {
		case 3:
			three = true
		case 2:
			two = true
		}
	}
	return three && two
}

// Dice returns the canonical ordered form of c, ascending.
func (c Config) Dice() [NumDice]int {
	var out [NumDice]int
	pos := 0
	for i, n := range c.counts {
		for range n {
			out[pos] = i + 1
			pos++
		}
	}
	return out
}

// Multiplicity returns the number of ordered rolls that collapse to c:
// 5! / ∏ count(f)!.
func (c Config) Multiplicity() int {
	m := factorials[NumDice]
	for _, n := range c.counts {
		m /= factorials[n]
	}
	return m
}

// String renders c as its sorted dice, e.g. "[1 3 3 4 6]".
func (c Config) String() string {
	return fmt.Sprint(c.Dice())
}

var factorials = [NumDice + 1]int{1, 1, 2, 6, 24, 120}
