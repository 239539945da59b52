package dice

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every input-validation error in the advisor, so
// callers can separate caller mistakes from internal failures with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// InvalidDieError reports a face value outside [1, 6].
type InvalidDieError struct {
	Value    int
	Position int // zero-based position in the submitted roll
}

func (e *InvalidDieError) Error() string {
	return fmt.Sprintf("dice: invalid die value %d at position %d: must be 1-6", e.Value, e.Position)
}

// Is reports ErrInvalidInput.
func (e *InvalidDieError) Is(target error) bool { return target == ErrInvalidInput }

// InvalidDiceCountError reports a roll that does not contain exactly five dice.
type InvalidDiceCountError struct {
	Got int
}

func (e *InvalidDiceCountError) Error() string {
	return fmt.Sprintf("dice: expected %d dice, got %d", NumDice, e.Got)
}

// Is reports ErrInvalidInput.
func (e *InvalidDiceCountError) Is(target error) bool { return target == ErrInvalidInput }

// InvalidCountsError reports a per-face count vector that does not describe five dice.
type InvalidCountsError struct {
	Counts Counts
	Total  int
}

func (e *InvalidCountsError) Error() string {
	return fmt.Sprintf("dice: counts %s sum to %d, want %d", e.Counts, e.Total, NumDice)
}

// Is reports ErrInvalidInput.
func (e *InvalidCountsError) Is(target error) bool { return target == ErrInvalidInput }

// InvalidIndexError reports a configuration index outside [0, ConfigCount).
type InvalidIndexError struct {
	Index int
}

func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("dice: invalid configuration index %d: must be 0-%d", e.Index, ConfigCount-1)
}

// Is reports ErrInvalidInput.
func (e *InvalidIndexError) Is(target error) bool { return target == ErrInvalidInput }
