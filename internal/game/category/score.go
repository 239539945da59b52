package category

import "github.com/cory-johannsen/dicee/internal/game/dice"

// Result is the outcome of scoring one configuration in one category.
//
// Valid reports whether the dice satisfy the category's requirement. Upper
// categories and Chance are always valid even when they score zero.
type Result struct {
	Score int
	Valid bool
}

// Score evaluates cfg in category c.
//
// Precondition: c.Valid().
// Postcondition: 0 <= Score <= MaxScore, and Score == 0 whenever !Valid.
func Score(cfg dice.Config, c Category) Result {
	switch c {
	case Ones, Twos, Threes, Fours, Fives, Sixes:
		face := int(c) + 1
		return Result{Score: face * cfg.Count(face), Valid: true}
	case ThreeOfAKind:
		return ofAKind(cfg, 3)
	case FourOfAKind:
		return ofAKind(cfg, 4)
	case FullHouse:
		return fixed(cfg.IsFullHouse(), FullHouseScore)
	case SmallStraight:
		return fixed(hasRun(cfg.Counts(), 4), SmallStraightScore)
	case LargeStraight:
		return fixed(hasRun(cfg.Counts(), 5), LargeStraightScore)
	case FiveOfAKind:
		return fixed(cfg.IsFiveOfAKind(), FiveOfAKindScore)
	case Chance:
		return Result{Score: cfg.Sum(), Valid: true}
	default:
		c.mustBeValid()
		return Result{}
	}
}

// ScoreAll scores cfg in every category, indexed by Category.
func ScoreAll(cfg dice.Config) [Count]Result {
	var out [Count]Result
	for i := range out {
		out[i] = Score(cfg, Category(i))
	}
	return out
}

// Best returns the highest immediate score over set. Ties go to the category with
// the highest index.
//
// Postcondition: ok is false when set is empty.
func Best(cfg dice.Config, set Set) (best Category, score int, ok bool) {
	for c := range set.All() {
		s := Score(cfg, c).Score
		if !ok || s >= score {
			best, score, ok = c, s, true
		}
	}
	return best, score, ok
}

func ofAKind(cfg dice.Config, n int) Result {
	if cfg.MaxCount() < n {
		return Result{}
	}
	return Result{Score: cfg.Sum(), Valid: true}
}

func fixed(valid bool, score int) Result {
	if !valid {
		return Result{}
	}
	return Result{Score: score, Valid: true}
}

// hasRun reports whether length consecutive faces are all present.
func hasRun(counts dice.Counts, length int) bool {
	for start := 0; start+length <= dice.NumFaces; start++ {
		run := true
		for f := start; f < start+length; f++ {
			if counts[f] == 0 {
				run = false
				break
			}
		}
		if run {
			return true
		}
	}
	return false
}
