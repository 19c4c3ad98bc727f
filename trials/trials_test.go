package trials_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/beecolor/abc"
	"github.com/katalvlaran/beecolor/builder"
	"github.com/katalvlaran/beecolor/core"
	"github.com/katalvlaran/beecolor/trials"
)

func randomGraph(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(11)}, builder.RandomSparse(40, 0.15))
	require.NoError(t, err)
	return g
}

func TestRun_Validation(t *testing.T) {
	g := randomGraph(t)
	_, err := trials.Run(context.Background(), g, trials.Options{Trials: 0})
	assert.ErrorIs(t, err, trials.ErrOptionViolation)

	_, err = trials.Run(context.Background(), g, trials.Options{Trials: 2, Parallelism: -1})
	assert.ErrorIs(t, err, trials.ErrOptionViolation)
}

// TestRun_ParallelismDoesNotChangeOutcome runs the same batch sequentially and
// concurrently; per-trial seeds make both reports agree.
func TestRun_ParallelismDoesNotChangeOutcome(t *testing.T) {
	g := randomGraph(t)
	base := trials.Options{Trials: 8, BaseSeed: 99}

	seq := base
	seq.Parallelism = 1
	a, err := trials.Run(context.Background(), g, seq)
	require.NoError(t, err)

	par := base
	par.Parallelism = 4
	b, err := trials.Run(context.Background(), g, par)
	require.NoError(t, err)

	assert.Equal(t, a.ChromaticNumbers, b.ChromaticNumbers)
	assert.Equal(t, a.BestIndex, b.BestIndex)
	assert.Equal(t, a.Best.Colors, b.Best.Colors)
	assert.NotEqual(t, a.RunID, b.RunID)
	assert.Len(t, a.RunID, 36)
}

func TestRun_BestIsLowestFirst(t *testing.T) {
	g := randomGraph(t)
	rep, err := trials.Run(context.Background(), g, trials.Options{Trials: 10, Parallelism: 3, BaseSeed: 5})
	require.NoError(t, err)
	require.GreaterOrEqual(t, rep.BestIndex, 0)
	assert.Zero(t, rep.Failures)
	require.NoError(t, abc.Verify(g, rep.Best.Colors))

	best := rep.ChromaticNumbers[rep.BestIndex]
	assert.Equal(t, rep.Best.ChromaticNumber, best)
	for i, cn := range rep.ChromaticNumbers {
		assert.GreaterOrEqual(t, cn, best, "trial %d", i)
		if i < rep.BestIndex {
			assert.Greater(t, cn, best, "tie must go to the lower index")
		}
		assert.Equal(t, abc.DeriveSeed(5, uint64(i)), rep.Trials[i].Seed)
	}
}

func TestRun_AllTrialsFail(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(10))
	require.NoError(t, err)

	rep, err := trials.Run(context.Background(), g, trials.Options{Trials: 3},
		abc.WithEmployedBees(1), abc.WithOnlookerBees(0), abc.WithMaxIterations(1))
	require.ErrorIs(t, err, trials.ErrNoSuccess)
	assert.ErrorIs(t, err, abc.ErrNotConverged)
	assert.Equal(t, 3, rep.Failures)
	assert.Equal(t, -1, rep.BestIndex)
	assert.Equal(t, []int{0, 0, 0}, rep.ChromaticNumbers)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := trials.Run(ctx, randomGraph(t), trials.Options{Trials: 4, Parallelism: 2})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_SharedHooks(t *testing.T) {
	var iterations atomic.Int64
	rep, err := trials.Run(context.Background(), randomGraph(t), trials.Options{Trials: 6, Parallelism: 3},
		abc.WithOnIteration(func(abc.IterationStats) { iterations.Add(1) }))
	require.NoError(t, err)

	var want int64
	for _, tr := range rep.Trials {
		want += int64(tr.Result.Iterations)
	}
	assert.Equal(t, want, iterations.Load())
}
