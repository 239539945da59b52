// Package category defines the thirteen scoring categories, the bitmask set of
// categories still open on a scorecard, and the scoring function.
package category

import (
	"fmt"
	"strings"
)

// Category identifies one scoring box. The numeric value is the category's bit
// position in a Set and its index on the wire.
type Category uint8

// Upper section: one category per face value.
const (
	Ones Category = iota
	Twos
	Threes
	Fours
	Fives
	Sixes
	// Lower section.
	ThreeOfAKind
	FourOfAKind
	FullHouse
	SmallStraight
	LargeStraight
	FiveOfAKind
	Chance
)

// Count is the number of categories.
const Count = 13

// Fixed scores for the lower-section pattern categories.
const (
	FullHouseScore     = 25
	SmallStraightScore = 30
	LargeStraightScore = 40
	FiveOfAKindScore   = 50
)

// MaxScore is the highest score any single category can award.
const MaxScore = FiveOfAKindScore

// Section is the half of the scorecard a category belongs to.
type Section string

const (
	Upper Section = "upper"
	Lower Section = "lower"
)

type meta struct {
	id    string
	name  string
	fixed int
}

var metadata = [Count]meta{
	Ones:          {id: "ones", name: "Ones"},
	Twos:          {id: "twos", name: "Twos"},
	Threes:        {id: "threes", name: "Threes"},
	Fours:         {id: "fours", name: "Fours"},
	Fives:         {id: "fives", name: "Fives"},
	Sixes:         {id: "sixes", name: "Sixes"},
	ThreeOfAKind:  {id: "three_of_a_kind", name: "Three of a Kind"},
	FourOfAKind:   {id: "four_of_a_kind", name: "Four of a Kind"},
	FullHouse:     {id: "full_house", name: "Full House", fixed: FullHouseScore},
	SmallStraight: {id: "small_straight", name: "Small Straight", fixed: SmallStraightScore},
	LargeStraight: {id: "large_straight", name: "Large Straight", fixed: LargeStraightScore},
	FiveOfAKind:   {id: "dicee", name: "Dicee", fixed: FiveOfAKindScore},
	Chance:        {id: "chance", name: "Chance"},
}

// FromIndex returns the category at position i.
//
// Postcondition: Returns an error when i is outside [0, Count).
func FromIndex(i int) (Category, error) {
	if i < 0 || i >= Count {
		return 0, fmt.Errorf("category: index %d out of range [0, %d)", i, Count)
	}
	return Category(i), nil
}

// Parse resolves a category by identifier ("full_house") or display name
// ("Full House"), case-insensitively.
func Parse(s string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, m := range metadata {
		if key == m.id || key == strings.ToLower(m.name) {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("category: unknown category %q", s)
}

// Valid reports whether c is one of the thirteen categories.
func (c Category) Valid() bool {
	return c < Count
}

// Index returns c as an int, its bit position in a Set.
func (c Category) Index() int {
	return int(c)
}

// ID returns the stable snake_case identifier used in configuration and content files.
func (c Category) ID() string {
	c.mustBeValid()
	return metadata[c].id
}

// String returns the display name.
func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
	return metadata[c].name
}

// IsUpper reports whether c scores a single face value.
func (c Category) IsUpper() bool {
	return c <= Sixes
}

// Section returns the scorecard half c belongs to.
func (c Category) Section() Section {
	if c.IsUpper() {
		return Upper
	}
	return Lower
}

// UpperFace returns the face value an upper category counts.
//
// Postcondition: ok is false for lower-section categories.
func (c Category) UpperFace() (face int, ok bool) {
	if !c.IsUpper() {
		return 0, false
	}
	return int(c) + 1, true
}

// FixedScore returns the score awarded by a pattern category regardless of the
// dice showing.
//
// Postcondition: ok is false for categories whose score depends on the pips.
func (c Category) FixedScore() (score int, ok bool) {
	c.mustBeValid()
	f := metadata[c].fixed
	return f, f != 0
}

func (c Category) mustBeValid() {
	if !c.Valid() {
		panic(fmt.Sprintf("category: precondition violated: category %d out of range", uint8(c)))
	}
}

// All lists every category in index order.
func All() []Category {
	out := make([]Category, Count)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}
