package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads five face values from user input.
// Supported forms: "1,2,3,4,6", "1 2 3 4 6", "1, 2, 3, 4, 6" and "12346".
//
// Precondition: s must be non-empty.
// Postcondition: Returns the five faces in input order, or a descriptive error that
// matches ErrInvalidInput. Out-of-range faces yield an *InvalidDieError with the
// offending position.
func Parse(s string) ([NumDice]int, error) {
	var out [NumDice]int
	raw := s
	s = strings.TrimSpace(s)
	if s == "" {
		return out, fmt.Errorf("dice: empty roll: %w", ErrInvalidInput)
	}

	var fields []string
	if strings.ContainsAny(s, ", \t") {
		fields = strings.FieldsFunc(s, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
	} else {
		// Compact form: one digit per die.
		fields = make([]string, 0, len(s))
		for _, r := range s {
			fields = append(fields, string(r))
		}
	}

	if len(fields) != NumDice {
		return out, fmt.Errorf("dice: parsing %q: %w", raw, &InvalidDiceCountError{Got: len(fields)})
	}

	for pos, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return out, fmt.Errorf("dice: invalid die %q at position %d in %q: %w", f, pos, raw, ErrInvalidInput)
		}
		if v < 1 || v > NumFaces {
			return out, &InvalidDieError{Value: v, Position: pos}
		}
		out[pos] = v
	}
	return out, nil
}

// MustParse parses s and panics on error. Useful for fixtures.
//
// Precondition: s must be a valid roll.
func MustParse(s string) [NumDice]int {
	faces, err := Parse(s)
	if err != nil {
		panic("dice: MustParse failed for roll " + s + ": " + err.Error())
	}
	return faces
}
