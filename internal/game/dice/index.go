package dice

// ConfigCount is the number of canonical configurations, C(10, 5).
const ConfigCount = 252

// OrderedOutcomes is the number of ordered rolls of five dice, 6^5.
const OrderedOutcomes = 7776

// Index is a validated position in the canonical enumeration of configurations.
//
// Invariant: 0 <= Index < ConfigCount.
type Index uint8

// NewIndex validates i.
//
// Postcondition: Returns an *InvalidIndexError when i is outside [0, ConfigCount).
func NewIndex(i int) (Index, error) {
	if i < 0 || i >= ConfigCount {
		return 0, &InvalidIndexError{Index: i}
	}
	return Index(i), nil
}

// Int returns the index as an int for slice addressing.
func (i Index) Int() int {
	return int(i)
}

// Config returns the configuration at i.
func (i Index) Config() Config {
	return FromIndex(i)
}

// The enumeration runs once during package initialization and is read-only
// afterwards.
var (
	allConfigs     = enumerate()
	multiplicities = computeMultiplicities(allConfigs)
	ranks          = computeRanks(allConfigs)
)

// All returns every canonical configuration in index order. The returned slice is
// a copy.
func All() []Config {
	out := make([]Config, len(allConfigs))
	copy(out, allConfigs[:])
	return out
}

// Multiplicities returns the multiplicity of each configuration in index order.
func Multiplicities() []int {
	out := make([]int, len(multiplicities))
	copy(out, multiplicities[:])
	return out
}

// FromIndex returns the configuration at i.
//
// Precondition: i < ConfigCount, which holds for every Index built by NewIndex or
// Config.Index.
func FromIndex(i Index) Config {
	if int(i) >= ConfigCount {
		panic("dice: FromIndex precondition violated: index out of range")
	}
	return allConfigs[i]
}

// Index returns the position of c in the canonical enumeration.
//
// Precondition: c is a valid Config.
func (c Config) Index() Index {
	idx, ok := ranks[c.counts]
	if !ok {
		panic("dice: Index precondition violated: counts " + c.counts.String() + " do not sum to 5")
	}
	return idx
}

// enumerate lists every count vector summing to NumDice, lexicographically ascending
// over (count of 1s, count of 2s, ..., count of 6s).
func enumerate() [ConfigCount]Config {
	var out [ConfigCount]Config
	n := 0
	var counts Counts
	var fill func(face, remaining int)
	fill = func(face, remaining int) {
		if face == NumFaces-1 {
			counts[face] = uint8(remaining)
			out[n] = newConfig(counts)
			n++
			return
		}
		for c := 0; c <= remaining; c++ {
			counts[face] = uint8(c)
			fill(face+1, remaining-c)
		}
	}
	fill(0, NumDice)
	if n != ConfigCount {
		panic("dice: enumeration produced the wrong number of configurations")
	}
	return out
}

func computeMultiplicities(configs [ConfigCount]Config) [ConfigCount]int {
	var out [ConfigCount]int
	for i, c := range configs {
		out[i] = c.Multiplicity()
	}
	return out
}

func computeRanks(configs [ConfigCount]Config) map[Counts]Index {
	out := make(map[Counts]Index, ConfigCount)
	for i, c := range configs {
		out[c.counts] = Index(i)
	}
	return out
}
