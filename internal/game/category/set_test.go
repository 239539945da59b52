package category_test

import (
	"slices"
	"testing"

	"github.com/cory-johannsen/dicee/internal/game/category"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSet_Basics(t *testing.T) {
	s := category.Of(category.Ones, category.Chance)
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains(category.Ones))
	assert.False(t, s.Contains(category.Twos))
	assert.Equal(t, uint16(1|1<<12), s.Bits())
	assert.Equal(t, "{ones, chance}", s.String())

	assert.Equal(t, 13, category.Full.Len())
	assert.Equal(t, 6, category.UpperSet.Len())
	assert.Equal(t, 7, category.LowerSet.Len())
	assert.Equal(t, category.Full, category.UpperSet.Union(category.LowerSet))
	assert.True(t, category.UpperSet.Intersect(category.LowerSet).IsEmpty())
	assert.Equal(t, category.LowerSet, category.UpperSet.Complement())
}

func TestFromBits_IgnoresHighBits(t *testing.T) {
	s := category.FromBits(0xFFFF)
	assert.Equal(t, category.Full, s)
	assert.Equal(t, 13, s.Len())
}

func TestSet_AllIsAscending(t *testing.T) {
	s := category.Of(category.Chance, category.Threes, category.FullHouse)
	got := slices.Collect(s.All())
	assert.Equal(t, []category.Category{category.Threes, category.FullHouse, category.Chance}, got)
	assert.Equal(t, got, s.Slice())
}

func TestSet_AllStopsEarly(t *testing.T) {
	n := 0
	for range category.Full.All() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestParseSet(t *testing.T) {
	s, err := category.ParseSet("large_straight, Chance")
	require.NoError(t, err)
	assert.Equal(t, category.Of(category.LargeStraight, category.Chance), s)

	s, err = category.ParseSet("all")
	require.NoError(t, err)
	assert.Equal(t, category.Full, s)

	s, err = category.ParseSet("upper,dicee")
	require.NoError(t, err)
	assert.Equal(t, category.UpperSet.With(category.FiveOfAKind), s)

	_, err = category.ParseSet("ones,bogus")
	assert.Error(t, err)
}

func TestProperty_SetAlgebra(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := category.FromBits(rapid.Uint16().Draw(rt, "a"))
		b := category.FromBits(rapid.Uint16().Draw(rt, "b"))

		assert.Equal(rt, a, a.Complement().Complement())
		assert.True(rt, a.Intersect(b).IsSubsetOf(a))
		assert.True(rt, a.IsSubsetOf(a.Union(b)))
		assert.Equal(rt, category.Full, a.Union(a.Complement()))
		assert.Equal(rt, a.Len(), len(a.Slice()))
		for c := range a.All() {
			assert.True(rt, a.Contains(c))
			assert.False(rt, a.Without(c).Contains(c))
		}
	})
}
