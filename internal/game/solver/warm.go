package solver

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cory-johannsen/dicee/internal/game/category"
	"github.com/cory-johannsen/dicee/internal/game/dice"
)

// Warm solves every configuration for set at each rolls-remaining value so later
// queries against set are cache hits. At most workers configurations are solved
// concurrently; workers <= 0 means one.
//
// Postcondition: Returns ctx.Err() if ctx is cancelled before every configuration
// is solved; the states already solved stay cached.
func (s *Solver) Warm(ctx context.Context, set category.Set, workers int) error {
	if set.IsEmpty() {
		return nil
	}
	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	for rolls := 0; rolls <= MaxRolls; rolls++ {
		for i := range dice.ConfigCount {
			if err := gctx.Err(); err != nil {
				_ = g.Wait()
				return err
			}
			idx := dice.Index(i)
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				s.value(idx, rolls, set)
				return nil
			})
		}
		// Level r reads level r-1.
		if err := g.Wait(); err != nil {
			return err
		}
		g, gctx = errgroup.WithContext(ctx)
		g.SetLimit(max(workers, 1))
	}

	s.logger.Info("solver warmed",
		zap.Stringer("categories", set),
		zap.Int("workers", max(workers, 1)),
		zap.Int("cache_entries", s.CacheLen()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}
