package keep_test

import (
	"testing"

	"github.com/cory-johannsen/dicee/internal/game/dice"
	"github.com/cory-johannsen/dicee/internal/game/keep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func mustPattern(t *testing.T, kept dice.Counts) keep.Pattern {
	t.Helper()
	p, err := keep.NewPattern(kept)
	require.NoError(t, err)
	return p
}

func TestNewPattern_RejectsMoreThanFive(t *testing.T) {
	_, err := keep.NewPattern(dice.Counts{2, 2, 2, 0, 0, 0})
	var patErr *keep.InvalidPatternError
	require.ErrorAs(t, err, &patErr)
	assert.Equal(t, 0, patErr.Face)
	assert.Equal(t, 6, patErr.Requested)
	assert.Equal(t, 5, patErr.Available)
	assert.ErrorIs(t, err, dice.ErrInvalidInput)
}

func TestValidateFor_NamesFace(t *testing.T) {
	cfg := dice.MustFromDice(3, 3, 3, 4, 5)
	assert.True(t, mustPattern(t, dice.Counts{0, 0, 3, 0, 0, 0}).IsValidFor(cfg))

	err := mustPattern(t, dice.Counts{0, 0, 4, 0, 0, 0}).ValidateFor(cfg)
	var patErr *keep.InvalidPatternError
	require.ErrorAs(t, err, &patErr)
	assert.Equal(t, keep.InvalidPatternError{Face: 3, Requested: 4, Available: 3}, *patErr)

	_, err = keep.NewPartial(cfg, mustPattern(t, dice.Counts{1, 0, 0, 0, 0, 0}))
	assert.ErrorIs(t, err, dice.ErrInvalidInput)
}

func TestEnumerate_OrderAndCount(t *testing.T) {
	cfg := dice.MustFromDice(2, 2, 4, 4, 6)
	got := keep.Patterns(cfg)
	require.Len(t, got, 3*3*2)
	assert.Equal(t, keep.CountFor(cfg), len(got))

	assert.Equal(t, keep.None, got[0])
	assert.Equal(t, keep.All(cfg), got[len(got)-1])
	// Face 2 varies fastest.
	assert.Equal(t, dice.Counts{0, 1, 0, 0, 0, 0}, got[1].Counts())
	assert.Equal(t, dice.Counts{0, 2, 0, 0, 0, 0}, got[2].Counts())
	assert.Equal(t, dice.Counts{0, 0, 0, 1, 0, 0}, got[3].Counts())
}

func TestEnumerate_FiveOfAKindAndAllDistinct(t *testing.T) {
	assert.Len(t, keep.Patterns(dice.MustFromDice(6, 6, 6, 6, 6)), 6)
	assert.Len(t, keep.Patterns(dice.MustFromDice(1, 2, 3, 4, 5)), 32)
}

func TestProperty_EnumerateIsLegalAndUnique(t *testing.T) {
	all := dice.All()
	rapid.Check(t, func(rt *rapid.T) {
		cfg := all[rapid.IntRange(0, dice.ConfigCount-1).Draw(rt, "config")]
		seen := map[dice.Counts]bool{}
		n := 0
		for p := range keep.Enumerate(cfg) {
			n++
			assert.True(rt, p.IsValidFor(cfg), "%s invalid for %s", p, cfg)
			assert.False(rt, seen[p.Counts()], "duplicate %s", p)
			seen[p.Counts()] = true
			assert.Equal(rt, dice.NumDice, p.Total()+p.ToRoll())
		}
		assert.Equal(rt, keep.CountFor(cfg), n)
	})
}

func TestCombine(t *testing.T) {
	p := mustPattern(t, dice.Counts{0, 2, 0, 2, 0, 0})
	state := p.Partial()
	assert.Equal(t, 1, state.ToRoll())
	assert.Equal(t, p, state.Pattern())

	got := keep.Combine(state, dice.Counts{0, 0, 0, 0, 0, 1})
	assert.Equal(t, dice.MustFromDice(2, 2, 4, 4, 6), got)
}

func TestCombine_PanicsOnWrongRollSize(t *testing.T) {
	state := keep.None.Partial()
	assert.Panics(t, func() { keep.Combine(state, dice.Counts{1, 1, 0, 0, 0, 0}) })
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		kept dice.Counts
		want string
	}{
		{dice.Counts{0, 0, 5, 0, 0, 0}, "Keep 5 3s"},
		{dice.Counts{2, 0, 3, 0, 0, 0}, "Keep 2 1s, 3 3s"},
		{dice.Counts{1, 0, 0, 0, 0, 0}, "Keep one 1"},
		{dice.Counts{0, 0, 0, 0, 0, 0}, "Reroll all dice"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, keep.Describe(mustPattern(t, tc.kept)))
	}
}

func TestPattern_String(t *testing.T) {
	assert.Equal(t, "keep none", keep.None.String())
	assert.Equal(t, "keep 2x1, 3x3", mustPattern(t, dice.Counts{2, 0, 3, 0, 0, 0}).String())
}
