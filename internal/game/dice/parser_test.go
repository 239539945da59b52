package dice_test

import (
	"testing"

	"github.com/cory-johannsen/dicee/internal/game/dice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_AcceptedForms(t *testing.T) {
	want := [5]int{1, 2, 3, 4, 6}
	for _, in := range []string{"1,2,3,4,6", "1 2 3 4 6", "1, 2, 3, 4, 6", "12346", "  1,2,3,4,6\t"} {
		got, err := dice.Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"too few", "1,2,3"},
		{"too many", "1 2 3 4 5 6"},
		{"not a number", "1,2,x,4,5"},
		{"compact too long", "123456"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dice.Parse(tc.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, dice.ErrInvalidInput)
		})
	}
}

func TestParse_OutOfRangeNamesPosition(t *testing.T) {
	_, err := dice.Parse("1,2,3,9,5")
	var dieErr *dice.InvalidDieError
	require.ErrorAs(t, err, &dieErr)
	assert.Equal(t, 3, dieErr.Position)
	assert.Equal(t, 9, dieErr.Value)
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { dice.MustParse("1,2") })
	assert.Equal(t, [5]int{5, 5, 5, 5, 5}, dice.MustParse("55555"))
}
