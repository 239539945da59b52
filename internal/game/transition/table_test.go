package transition_test

import (
	"sync"
	"testing"

	"github.com/cory-johannsen/dicee/internal/game/category"
	"github.com/cory-johannsen/dicee/internal/game/dice"
	"github.com/cory-johannsen/dicee/internal/game/keep"
	"github.com/cory-johannsen/dicee/internal/game/transition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestTable_Shape(t *testing.T) {
	table := transition.Default()
	assert.Equal(t, 462, table.StateCount())
	assert.Equal(t, 4368, table.EntryCount())
}

func TestDefault_IsSingleton(t *testing.T) {
	var wg sync.WaitGroup
	tables := make([]*transition.Table, 8)
	for i := range tables {
		wg.Go(func() { tables[i] = transition.Default() })
	}
	wg.Wait()
	for _, tb := range tables {
		assert.Same(t, tables[0], tb)
	}
}

func TestTable_KeepAllHasSingleCertainTarget(t *testing.T) {
	table := transition.Default()
	for _, cfg := range dice.All() {
		row := table.Get(keep.All(cfg).Partial())
		require.Len(t, row, 1, cfg.String())
		assert.Equal(t, cfg.Index(), row[0].Target)
		assert.InDelta(t, 1.0, row[0].Probability.Float64(), 0)
	}
}

func TestTable_RerollAllReachesEveryConfiguration(t *testing.T) {
	row := transition.Default().Get(keep.None.Partial())
	require.Len(t, row, dice.ConfigCount)
	mult := dice.Multiplicities()
	for _, e := range row {
		assert.InDelta(t, float64(mult[e.Target])/dice.OrderedOutcomes, e.Probability.Float64(), 1e-12)
	}
}

func TestProperty_TableRowsSumToOne(t *testing.T) {
	table := transition.Default()
	all := dice.All()
	rapid.Check(t, func(rt *rapid.T) {
		cfg := all[rapid.IntRange(0, dice.ConfigCount-1).Draw(rt, "config")]
		patterns := keep.Patterns(cfg)
		p := patterns[rapid.IntRange(0, len(patterns)-1).Draw(rt, "pattern")]

		total := 0.0
		prev := -1
		for _, e := range table.Get(p.Partial()) {
			assert.Greater(rt, e.Probability.Float64(), 0.0)
			assert.Greater(rt, e.Target.Int(), prev, "targets ascend")
			prev = e.Target.Int()
			total += e.Probability.Float64()
		}
		assert.InDelta(rt, 1.0, total, transition.Tolerance)
	})
}

func TestTable_ExpectedValue(t *testing.T) {
	table := transition.Default()
	chance := func(c dice.Config) float64 { return float64(category.Score(c, category.Chance).Score) }

	assert.InDelta(t, 17.5, table.ExpectedValue(keep.None.Partial(), chance), 1e-9)

	// Holding 1,2,3,4 and throwing one die completes the large straight only on a 5.
	held, err := keep.NewPattern(dice.Counts{1, 1, 1, 1, 0, 0})
	require.NoError(t, err)
	large := func(c dice.Config) float64 { return float64(category.Score(c, category.LargeStraight).Score) }
	assert.InDelta(t, 40.0/6, table.ExpectedValue(held.Partial(), large), 1e-9)
}
