package dice

import "go.uber.org/zap"

// Roller deals physical dice from a Source and logs every throw at debug level.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that draws from src and logs to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Roll throws n dice and returns the per-face counts of the outcome.
//
// Precondition: 0 <= n <= NumDice.
// Postcondition: result.Total() == n.
func (r *Roller) Roll(n int) Counts {
	if n < 0 || n > NumDice {
		panic("dice: Roll precondition violated: n must be in [0, 5]")
	}
	var counts Counts
	faces := make([]int, n)
	for i := range faces {
		faces[i] = r.src.Intn(NumFaces) + 1
		counts[faces[i]-1]++
	}
	r.logger.Debug("dice roll",
		zap.Int("dice", n),
		zap.Ints("faces", faces),
		zap.Stringer("counts", counts),
	)
	return counts
}

// RollConfig throws a fresh set of five dice.
//
// Postcondition: Returns a valid Config.
func (r *Roller) RollConfig() Config {
	return newConfig(r.Roll(NumDice))
}
