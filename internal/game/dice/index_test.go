package dice_test

import (
	"testing"

	"github.com/cory-johannsen/dicee/internal/game/dice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestAll_HasEveryConfigurationOnce(t *testing.T) {
	all := dice.All()
	require.Len(t, all, dice.ConfigCount)

	seen := make(map[dice.Counts]bool, len(all))
	for i, cfg := range all {
		assert.Equal(t, dice.NumDice, cfg.Counts().Total())
		assert.False(t, seen[cfg.Counts()], "duplicate configuration %s", cfg)
		seen[cfg.Counts()] = true
		assert.Equal(t, dice.Index(i), cfg.Index())
	}
}

func TestAll_EnumerationIsLexicographic(t *testing.T) {
	all := dice.All()
	assert.Equal(t, dice.Counts{0, 0, 0, 0, 0, 5}, all[0].Counts())
	assert.Equal(t, dice.Counts{5, 0, 0, 0, 0, 0}, all[dice.ConfigCount-1].Counts())
	for i := 1; i < len(all); i++ {
		prev, cur := all[i-1].Counts(), all[i].Counts()
		assert.True(t, less(prev, cur), "%s must precede %s", prev, cur)
	}
}

func less(a, b dice.Counts) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func TestMultiplicities_SumToOrderedOutcomes(t *testing.T) {
	total := 0
	for _, m := range dice.Multiplicities() {
		total += m
	}
	assert.Equal(t, dice.OrderedOutcomes, total)
}

func TestAll_ReturnsCopy(t *testing.T) {
	a := dice.All()
	a[0] = dice.MustFromDice(1, 1, 1, 1, 1)
	assert.Equal(t, dice.Counts{0, 0, 0, 0, 0, 5}, dice.All()[0].Counts())
}

func TestNewIndex_Bounds(t *testing.T) {
	_, err := dice.NewIndex(-1)
	assert.ErrorIs(t, err, dice.ErrInvalidInput)

	_, err = dice.NewIndex(dice.ConfigCount)
	var idxErr *dice.InvalidIndexError
	require.ErrorAs(t, err, &idxErr)
	assert.Equal(t, dice.ConfigCount, idxErr.Index)

	idx, err := dice.NewIndex(dice.ConfigCount - 1)
	require.NoError(t, err)
	assert.Equal(t, dice.ConfigCount-1, idx.Int())
}

func TestProperty_IndexRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		i := rapid.IntRange(0, dice.ConfigCount-1).Draw(rt, "index")
		idx, err := dice.NewIndex(i)
		require.NoError(rt, err)
		assert.Equal(rt, idx, idx.Config().Index())
		assert.Equal(rt, idx, dice.FromIndex(idx).Index())
	})
}
