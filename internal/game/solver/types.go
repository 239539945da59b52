package solver

import (
	"fmt"

	"github.com/cory-johannsen/dicee/internal/game/category"
	"github.com/cory-johannsen/dicee/internal/game/dice"
	"github.com/cory-johannsen/dicee/internal/game/keep"
)

// MaxRolls is the most rerolls a player can have left after the opening throw.
const MaxRolls = 2

// InvalidRollsError reports a rolls-remaining value outside [0, MaxRolls].
type InvalidRollsError struct {
	Rolls int
}

func (e *InvalidRollsError) Error() string {
	return fmt.Sprintf("solver: invalid rolls remaining %d: must be 0-%d", e.Rolls, MaxRolls)
}

// Is reports dice.ErrInvalidInput.
func (e *InvalidRollsError) Is(target error) bool { return target == dice.ErrInvalidInput }

// TurnState is the position within a turn: the dice showing and how many rerolls
// remain.
//
// Invariant: 0 <= RollsRemaining <= MaxRolls.
type TurnState struct {
	Config         dice.Config
	RollsRemaining int
}

// NewTurnState validates rolls.
//
// Postcondition: Returns an *InvalidRollsError when rolls is outside [0, MaxRolls].
func NewTurnState(cfg dice.Config, rolls int) (TurnState, error) {
	if rolls < 0 || rolls > MaxRolls {
		return TurnState{}, &InvalidRollsError{Rolls: rolls}
	}
	return TurnState{Config: cfg, RollsRemaining: rolls}, nil
}

// CanReroll reports whether at least one reroll remains.
func (s TurnState) CanReroll() bool {
	return s.RollsRemaining > 0
}

// ActionKind tags an Action.
type ActionKind int

const (
	// ActionNone means there is nothing to recommend: no category is open.
	ActionNone ActionKind = iota
	// ActionScore commits the dice to Action.Category.
	ActionScore
	// ActionReroll holds Action.Keep and throws the rest.
	ActionReroll
)

func (k ActionKind) String() string {
	switch k {
	case ActionScore:
		return "score"
	case ActionReroll:
		return "reroll"
	default:
		return "none"
	}
}

// Action is a recommended move. Category is meaningful only for ActionScore and
// Keep only for ActionReroll.
type Action struct {
	Kind     ActionKind
	Category category.Category
	Keep     keep.Pattern
}

// Score returns a scoring action.
func Score(c category.Category) Action {
	return Action{Kind: ActionScore, Category: c}
}

// Reroll returns a reroll action.
func Reroll(p keep.Pattern) Action {
	return Action{Kind: ActionReroll, Keep: p}
}

func (a Action) String() string {
	switch a.Kind {
	case ActionScore:
		return "score " + a.Category.String()
	case ActionReroll:
		return "reroll, " + a.Keep.String()
	default:
		return "no recommendation"
	}
}

// CategoryValue describes one open category for the current position.
//
// ExpectedValue is the best expected score obtainable in this category alone when
// the remaining rerolls are spent chasing it. With no rerolls left it equals
// ImmediateScore.
type CategoryValue struct {
	Category       category.Category
	ImmediateScore int
	Valid          bool
	ExpectedValue  float64
}

// Analysis is the full evaluation of a turn position.
type Analysis struct {
	State     TurnState
	Available category.Set

	// Categories holds one entry per open category in ascending order.
	Categories []CategoryValue

	// BestCategory is meaningful only when HasBestCategory.
	BestCategory      category.Category
	BestCategoryScore int
	HasBestCategory   bool

	// BestKeep and ContinueValue are meaningful only when the state can reroll and
	// at least one category is open.
	BestKeep      keep.Pattern
	ContinueValue float64

	Action        Action
	ExpectedValue float64
}
