package main

import (
	"context"
	"fmt"

	"github.com/cory-johannsen/dicee/internal/advisor"
	"github.com/cory-johannsen/dicee/internal/game/category"
	"github.com/cory-johannsen/dicee/internal/game/dice"
	"github.com/cory-johannsen/dicee/internal/game/keep"
	"github.com/cory-johannsen/dicee/internal/game/solver"
	"github.com/cory-johannsen/dicee/internal/positions"
)

// turnStep is one decision point of a played turn.
type turnStep struct {
	Dice  dice.Config
	Rolls int
	Resp  *advisor.Response
}

// playTurn deals five dice and follows the advice until it says to score.
//
// Precondition: a and roller must be non-nil.
// Postcondition: The last step's Action is "score" or "none" unless an error is returned.
func playTurn(ctx context.Context, a positions.Analyzer, roller *dice.Roller, set category.Set) ([]turnStep, error) {
	var steps []turnStep
	cfg := roller.RollConfig()
	for rolls := solver.MaxRolls; ; rolls-- {
		faces := cfg.Dice()
		resp, err := a.Analyze(ctx, advisor.Request{
			Dice:           faces[:],
			RollsRemaining: rolls,
			Available:      set.Bits(),
		})
		if err != nil {
			return steps, fmt.Errorf("analyzing %s with %d rolls: %w", cfg, rolls, err)
		}
		steps = append(steps, turnStep{Dice: cfg, Rolls: rolls, Resp: resp})
		if resp.Action != advisor.ActionReroll {
			return steps, nil
		}
		if rolls == 0 || resp.Keep == nil {
			return steps, fmt.Errorf("advisor asked to reroll %s with %d rolls and keep %v", cfg, rolls, resp.Keep)
		}

		partial, err := partialFor(cfg, *resp.Keep)
		if err != nil {
			return steps, err
		}
		cfg = keep.Combine(partial, roller.Roll(partial.ToRoll()))
	}
}

func partialFor(cfg dice.Config, counts [dice.NumFaces]int) (keep.Partial, error) {
	var kept dice.Counts
	for i, n := range counts {
		if n < 0 || n > dice.NumDice {
			return keep.Partial{}, fmt.Errorf("keep count %d for face %d: %w", n, i+1, dice.ErrInvalidInput)
		}
		kept[i] = uint8(n)
	}
	p, err := keep.NewPattern(kept)
	if err != nil {
		return keep.Partial{}, err
	}
	return keep.NewPartial(cfg, p)
}
