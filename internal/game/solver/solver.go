// Package solver computes optimal single-turn play by backward induction over
// (configuration, rolls remaining, open categories), memoizing every solved state.
package solver

import (
	"fmt"
	"math"
	"sync"

	"go.uber.org/zap"

	"github.com/cory-johannsen/dicee/internal/game/category"
	"github.com/cory-johannsen/dicee/internal/game/dice"
	"github.com/cory-johannsen/dicee/internal/game/keep"
	"github.com/cory-johannsen/dicee/internal/game/transition"
)

// tieTolerance is the margin by which rerolling must beat scoring before it is
// recommended.
const tieTolerance = 1e-9

// defaultCacheCapacity covers every state reachable with the full category set.
const defaultCacheCapacity = dice.ConfigCount * (MaxRolls + 1)

type cacheKey struct {
	index dice.Index
	rolls uint8
	set   category.Set
}

// Solver evaluates turn positions.
//
// A Solver is safe for concurrent use. Its cache only grows until ClearCache; a
// value computed twice for the same key is identical, so racing writers are harmless.
type Solver struct {
	table  *transition.Table
	logger *zap.Logger

	mu    sync.RWMutex
	cache map[cacheKey]float64
}

// Option configures a Solver.
type Option func(*Solver)

// WithLogger sets the logger. The default discards output.
func WithLogger(l *zap.Logger) Option {
	return func(s *Solver) { s.logger = l }
}

// WithTable overrides the transition table. The default is transition.Default().
func WithTable(t *transition.Table) Option {
	return func(s *Solver) { s.table = t }
}

// WithCacheCapacity presizes the memo cache.
func WithCacheCapacity(n int) Option {
	return func(s *Solver) {
		if n > 0 {
			s.cache = make(map[cacheKey]float64, n)
		}
	}
}

// New returns a Solver with an empty cache.
func New(opts ...Option) *Solver {
	s := &Solver{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	if s.table == nil {
		s.table = transition.Default()
	}
	if s.cache == nil {
		s.cache = make(map[cacheKey]float64, defaultCacheCapacity)
	}
	return s
}

// CacheLen returns the number of memoized states.
func (s *Solver) CacheLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cache)
}

// ClearCache drops every memoized state.
func (s *Solver) ClearCache() {
	s.mu.Lock()
	n := len(s.cache)
	clear(s.cache)
	s.mu.Unlock()
	s.logger.Debug("solver cache cleared", zap.Int("entries", n))
}

// ExpectedValue returns V(cfg, rolls, set): the expected score of optimal play
// from this position.
//
// Precondition: 0 <= rolls <= MaxRolls.
// Postcondition: 0 <= result <= category.MaxScore; result is 0 when set is empty.
func (s *Solver) ExpectedValue(cfg dice.Config, rolls int, set category.Set) float64 {
	mustRolls(rolls)
	return s.value(cfg.Index(), rolls, set)
}

// CategoryExpectedValue returns the best expected score in c alone when the
// remaining rerolls are spent chasing it.
//
// Precondition: 0 <= rolls <= MaxRolls and c.Valid().
func (s *Solver) CategoryExpectedValue(cfg dice.Config, rolls int, c category.Category) float64 {
	mustRolls(rolls)
	return s.value(cfg.Index(), rolls, category.Of(c))
}

// BestKeep returns the hold that maximizes the expected continuation value. Ties go
// to the pattern keep.Enumerate yields first.
//
// Precondition: 0 <= rolls <= MaxRolls.
// Postcondition: ok is false when rolls == 0 or set is empty.
func (s *Solver) BestKeep(cfg dice.Config, rolls int, set category.Set) (best keep.Pattern, value float64, ok bool) {
	mustRolls(rolls)
	if rolls == 0 || set.IsEmpty() {
		return keep.Pattern{}, 0, false
	}
	best, value = s.bestKeep(cfg, rolls, set)
	return best, value, true
}

// Analyze evaluates state against the open categories and recommends a move.
// Rerolling is recommended only when its expected value strictly exceeds the best
// immediate score; otherwise the best category is scored.
//
// Postcondition: An empty set yields ActionNone, ExpectedValue 0 and no Categories.
func (s *Solver) Analyze(state TurnState, set category.Set) Analysis {
	mustRolls(state.RollsRemaining)
	a := Analysis{State: state, Available: set}
	if set.IsEmpty() {
		return a
	}

	cfg := state.Config
	a.Categories = make([]CategoryValue, 0, set.Len())
	for c := range set.All() {
		r := category.Score(cfg, c)
		cv := CategoryValue{Category: c, ImmediateScore: r.Score, Valid: r.Valid, ExpectedValue: float64(r.Score)}
		if state.CanReroll() {
			cv.ExpectedValue = s.CategoryExpectedValue(cfg, state.RollsRemaining, c)
		}
		a.Categories = append(a.Categories, cv)
	}

	a.BestCategory, a.BestCategoryScore, a.HasBestCategory = category.Best(cfg, set)
	immediate := float64(a.BestCategoryScore)

	if state.CanReroll() {
		a.BestKeep, a.ContinueValue = s.bestKeep(cfg, state.RollsRemaining, set)
		if a.ContinueValue > immediate+tieTolerance {
			a.Action = Reroll(a.BestKeep)
			a.ExpectedValue = a.ContinueValue
		}
	}
	if a.Action.Kind == ActionNone {
		a.Action = Score(a.BestCategory)
		a.ExpectedValue = immediate
	}

	s.logger.Debug("turn analyzed",
		zap.Stringer("dice", cfg),
		zap.Int("rolls", state.RollsRemaining),
		zap.Stringer("available", set),
		zap.Stringer("action", a.Action),
		zap.Float64("expected_value", a.ExpectedValue),
	)
	return a
}

// value is the memoized Bellman recursion.
func (s *Solver) value(idx dice.Index, rolls int, set category.Set) float64 {
	if set.IsEmpty() {
		return 0
	}
	k := cacheKey{index: idx, rolls: uint8(rolls), set: set}
	s.mu.RLock()
	v, ok := s.cache[k]
	s.mu.RUnlock()
	if ok {
		return v
	}

	cfg := dice.FromIndex(idx)
	_, best, _ := category.Best(cfg, set)
	v = float64(best)
	if rolls > 0 {
		_, cont := s.bestKeep(cfg, rolls, set)
		v = math.Max(v, cont)
	}

	s.mu.Lock()
	s.cache[k] = v
	s.mu.Unlock()
	return v
}

// bestKeep maximizes the expected continuation over every legal hold.
//
// Precondition: rolls > 0 and set is non-empty.
func (s *Solver) bestKeep(cfg dice.Config, rolls int, set category.Set) (keep.Pattern, float64) {
	next := func(c dice.Config) float64 { return s.value(c.Index(), rolls-1, set) }
	var (
		best      keep.Pattern
		bestValue = math.Inf(-1)
	)
	for p := range keep.Enumerate(cfg) {
		ev := s.table.ExpectedValue(p.Partial(), next)
		if ev > bestValue {
			best, bestValue = p, ev
		}
	}
	return best, bestValue
}

func mustRolls(rolls int) {
	if rolls < 0 || rolls > MaxRolls {
		panic(fmt.Sprintf("solver: precondition violated: rolls %d outside [0, %d]", rolls, MaxRolls))
	}
}
