package dice_test

import (
	"errors"
	"testing"

	"github.com/cory-johannsen/dicee/internal/game/dice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"pgregory.net/rapid"
)

func drawFaces(rt *rapid.T) [dice.NumDice]int {
	var faces [dice.NumDice]int
	for i := range faces {
		faces[i] = rapid.IntRange(1, dice.NumFaces).Draw(rt, "face")
	}
	return faces
}

func TestFromDice_CanonicalizesOrder(t *testing.T) {
	a, err := dice.FromDice([5]int{6, 3, 1, 3, 4})
	require.NoError(t, err)
	b, err := dice.FromDice([5]int{1, 3, 3, 4, 6})
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, [5]int{1, 3, 3, 4, 6}, a.Dice())
	assert.Equal(t, dice.Counts{1, 0, 2, 1, 0, 1}, a.Counts())
	assert.Equal(t, "[1 3 3 4 6]", a.String())
}

func TestFromDice_RejectsOutOfRangeFace(t *testing.T) {
	_, err := dice.FromDice([5]int{1, 2, 7, 4, 5})
	require.Error(t, err)

	var dieErr *dice.InvalidDieError
	require.ErrorAs(t, err, &dieErr)
	assert.Equal(t, 7, dieErr.Value)
	assert.Equal(t, 2, dieErr.Position)
	assert.ErrorIs(t, err, dice.ErrInvalidInput)

	_, err = dice.FromDice([5]int{0, 1, 1, 1, 1})
	require.ErrorAs(t, err, &dieErr)
	assert.Equal(t, 0, dieErr.Position)
}

func TestFromSlice_RejectsWrongLength(t *testing.T) {
	_, err := dice.FromSlice([]int{1, 2, 3})
	var countErr *dice.InvalidDiceCountError
	require.ErrorAs(t, err, &countErr)
	assert.Equal(t, 3, countErr.Got)
	assert.True(t, errors.Is(err, dice.ErrInvalidInput))
}

func TestFromCounts_RejectsWrongTotal(t *testing.T) {
	_, err := dice.FromCounts(dice.Counts{1, 1, 1, 1, 0, 0})
	var countsErr *dice.InvalidCountsError
	require.ErrorAs(t, err, &countsErr)
	assert.Equal(t, 4, countsErr.Total)
	assert.ErrorIs(t, err, dice.ErrInvalidInput)

	cfg, err := dice.FromCounts(dice.Counts{0, 0, 0, 0, 0, 5})
	require.NoError(t, err)
	assert.True(t, cfg.IsFiveOfAKind())
}

func TestConfig_Queries(t *testing.T) {
	cfg := dice.MustFromDice(2, 2, 5, 5, 5)
	assert.Equal(t, 19, cfg.Sum())
	assert.Equal(t, 3, cfg.MaxCount())
	assert.Equal(t, 2, cfg.Distinct())
	assert.Equal(t, 5, cfg.ModeFace())
	assert.Equal(t, 2, cfg.Count(2))
	assert.True(t, cfg.IsFullHouse())
	assert.False(t, cfg.IsFiveOfAKind())
	assert.Equal(t, 10, cfg.Multiplicity())
}

func TestConfig_ModeFacePrefersHigherFaceOnTie(t *testing.T) {
	assert.Equal(t, 4, dice.MustFromDice(1, 1, 4, 4, 6).ModeFace())
	assert.Equal(t, 6, dice.MustFromDice(1, 2, 3, 4, 6).ModeFace())
}

func TestConfig_Count_PanicsOnBadFace(t *testing.T) {
	cfg := dice.MustFromDice(1, 2, 3, 4, 5)
	assert.Panics(t, func() { cfg.Count(0) })
	assert.Panics(t, func() { cfg.Count(7) })
}

func TestConfig_MultiplicityExtremes(t *testing.T) {
	assert.Equal(t, 1, dice.MustFromDice(3, 3, 3, 3, 3).Multiplicity())
	assert.Equal(t, 120, dice.MustFromDice(1, 2, 3, 4, 5).Multiplicity())
	assert.Equal(t, 5, dice.MustFromDice(1, 1, 1, 1, 2).Multiplicity())
}

func TestProperty_FromDiceIsOrderInvariant(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		faces := drawFaces(rt)
		perm := rapid.Permutation(faces[:]).Draw(rt, "perm")
		var shuffled [dice.NumDice]int
		copy(shuffled[:], perm)

		a, err := dice.FromDice(faces)
		require.NoError(rt, err)
		b, err := dice.FromDice(shuffled)
		require.NoError(rt, err)
		assert.Equal(rt, a.Index(), b.Index())
		assert.Equal(rt, dice.NumDice, a.Counts().Total())
	})
}

func TestCryptoSource_Intn_InRange(t *testing.T) {
	src := dice.NewCryptoSource()
	for range 200 {
		v := src.Intn(6)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 6)
	}
}

func TestSources_PanicOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { dice.NewCryptoSource().Intn(0) })
	assert.Panics(t, func() { dice.NewSeededSource(1).Intn(-1) })
}

func TestSeededSource_IsReproducible(t *testing.T) {
	a := dice.NewSeededSource(42)
	b := dice.NewSeededSource(42)
	for range 50 {
		assert.Equal(t, a.Intn(6), b.Intn(6))
	}
}

func TestRoller_RollProducesRequestedDice(t *testing.T) {
	roller := dice.NewLoggedRoller(dice.NewSeededSource(7), zaptest.NewLogger(t))
	for n := 0; n <= dice.NumDice; n++ {
		assert.Equal(t, n, roller.Roll(n).Total())
	}
	cfg := roller.RollConfig()
	assert.Equal(t, dice.NumDice, cfg.Counts().Total())
	assert.Panics(t, func() { roller.Roll(6) })
}
