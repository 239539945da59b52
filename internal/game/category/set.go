package category

import (
	"iter"
	"math/bits"
	"strings"
)

// Set is a bitmask over categories: bit i is set when Category(i) is a member.
//
// Invariant: bits above Count-1 are always clear for a Set built by this package.
type Set uint16

const allMask Set = 1<<Count - 1

// Predefined sets.
const (
	Empty    Set = 0
	Full     Set = allMask
	UpperSet Set = 0b0000000111111
	LowerSet Set = allMask &^ UpperSet
)

// FromBits builds a Set from a raw mask, dropping bits above the thirteenth.
func FromBits(mask uint16) Set {
	return Set(mask) & allMask
}

// Of builds a Set holding exactly cs.
func Of(cs ...Category) Set {
	var s Set
	for _, c := range cs {
		s = s.With(c)
	}
	return s
}

// Bits returns the raw mask.
func (s Set) Bits() uint16 {
	return uint16(s)
}

// Len returns the number of members.
func (s Set) Len() int {
	return bits.OnesCount16(uint16(s))
}

// IsEmpty reports whether s has no members.
func (s Set) IsEmpty() bool {
	return s == Empty
}

// Contains reports whether c is a member of s.
func (s Set) Contains(c Category) bool {
	return c.Valid() && s&(1<<c) != 0
}

// With returns s plus c.
//
// Precondition: c.Valid().
func (s Set) With(c Category) Set {
	c.mustBeValid()
	return s | 1<<c
}

// Without returns s minus c.
func (s Set) Without(c Category) Set {
	if !c.Valid() {
		return s
	}
	return s &^ (1 << c)
}

// Union returns the members of either set.
func (s Set) Union(o Set) Set { return s | o }

// Intersect returns the members of both sets.
func (s Set) Intersect(o Set) Set { return s & o }

// Complement returns every category not in s.
func (s Set) Complement() Set { return ^s & allMask }

// IsSubsetOf reports whether every member of s is also in o.
func (s Set) IsSubsetOf(o Set) bool { return s&^o == 0 }

// All yields the members of s in ascending order.
func (s Set) All() iter.Seq[Category] {
	return func(yield func(Category) bool) {
		rest := uint16(s & allMask)
		for rest != 0 {
			i := bits.TrailingZeros16(rest)
			if !yield(Category(i)) {
				return
			}
			rest &= rest - 1
		}
	}
}

// Slice returns the members of s in ascending order.
func (s Set) Slice() []Category {
	out := make([]Category, 0, s.Len())
	for c := range s.All() {
		out = append(out, c)
	}
	return out
}

// String renders the member identifiers, e.g. "{ones, chance}".
func (s Set) String() string {
	ids := make([]string, 0, s.Len())
	for c := range s.All() {
		ids = append(ids, c.ID())
	}
	return "{" + strings.Join(ids, ", ") + "}"
}

// ParseSet reads a comma-separated list of category identifiers. "all" selects
// every category, "upper" and "lower" select a section.
func ParseSet(s string) (Set, error) {
	var out Set
	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		switch strings.ToLower(part) {
		case "":
			continue
		case "all":
			out |= Full
		case "upper":
			out |= UpperSet
		case "lower":
			out |= LowerSet
		default:
			c, err := Parse(part)
			if err != nil {
				return Empty, err
			}
			out = out.With(c)
		}
	}
	return out, nil
}
