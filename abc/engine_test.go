package abc_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/beecolor/abc"
	"github.com/katalvlaran/beecolor/builder"
	"github.com/katalvlaran/beecolor/core"
)

// TestSolve_Errors verifies that invalid inputs are rejected before any work.
func TestSolve_Errors(t *testing.T) {
	ctx := context.Background()

	if _, err := abc.Solve(ctx, nil); !errors.Is(err, abc.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	if _, err := abc.Solve(ctx, core.NewGraph()); !errors.Is(err, abc.ErrEmptyGraph) {
		t.Errorf("empty graph: want ErrEmptyGraph, got %v", err)
	}

	// 3 employed bees on 2 vertices: rejected up front, no hook fires.
	calls := 0
	_, err := abc.Solve(ctx, mustBuild(t, builder.Path(2)),
		abc.WithEmployedBees(3),
		abc.WithOnIteration(func(abc.IterationStats) { calls++ }),
		abc.WithOnScout(func(string, abc.Color) { calls++ }),
	)
	if !errors.Is(err, abc.ErrPoolExhaustion) {
		t.Errorf("pool: want ErrPoolExhaustion, got %v", err)
	}
	if calls != 0 {
		t.Errorf("pool: hooks fired %d times before rejection", calls)
	}

	loops := core.NewGraph(core.WithLoops())
	_, _ = loops.AddEdge("A", "A")
	_, _ = loops.AddEdge("A", "B")
	if _, err = abc.Solve(ctx, loops); !errors.Is(err, abc.ErrSelfLoop) {
		t.Errorf("self-loop: want ErrSelfLoop, got %v", err)
	}
}

func TestSolve_OptionViolations(t *testing.T) {
	g := mustBuild(t, builder.Cycle(4))
	cases := map[string]abc.Option{
		"employed":  abc.WithEmployedBees(0),
		"onlookers": abc.WithOnlookerBees(-1),
		"threshold": abc.WithScoutThreshold(0),
		"palette":   abc.WithPaletteSize(0),
		"maxIter":   abc.WithMaxIterations(-1),
		"timeLimit": abc.WithTimeLimit(-1),
		"direct":    func(o *abc.Options) { o.EmployedBees = 0 },
	}
	for name, opt := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := abc.Solve(context.Background(), g, opt)
			assert.ErrorIs(t, err, abc.ErrOptionViolation)
		})
	}
}

// TestSolve_Square covers the four-cycle A-B-C-D with 2 employed and 4
// onlooker bees: one iteration always colors every vertex.
func TestSolve_Square(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	var stats []abc.IterationStats
	res := mustColor(t, g,
		abc.WithEmployedBees(2),
		abc.WithOnlookerBees(4),
		abc.WithScoutThreshold(5),
		abc.WithSeed(seedDet),
		abc.WithOnIteration(func(s abc.IterationStats) { stats = append(stats, s) }),
	)

	assert.Len(t, res.Colors, 4)
	assert.LessOrEqual(t, res.ChromaticNumber, 3)
	assert.GreaterOrEqual(t, res.ChromaticNumber, 2)
	assert.Equal(t, 1, res.Iterations)
	assert.Zero(t, res.Scouts)

	require.Len(t, stats, 1)
	assert.Equal(t, 1, stats[0].Iteration)
	assert.Len(t, stats[0].Chosen, 2)
	assert.Equal(t, []int{2, 2}, stats[0].Distribution)
	assert.True(t, stats[0].Complete)
}

func TestSolve_KnownChromaticNumbers(t *testing.T) {
	t.Run("complete", func(t *testing.T) {
		for n := 2; n <= 7; n++ {
			res := mustColor(t, mustBuild(t, builder.Complete(n)), abc.WithSeed(int64(n)))
			assert.Equal(t, n, res.ChromaticNumber, "K_%d", n)
		}
	})
	t.Run("odd cycle", func(t *testing.T) {
		res := mustColor(t, mustBuild(t, builder.Cycle(9)), abc.WithScoutThreshold(highThreshold))
		assert.Equal(t, 3, res.ChromaticNumber)
	})
	t.Run("even cycle", func(t *testing.T) {
		res := mustColor(t, mustBuild(t, builder.Cycle(12)), abc.WithScoutThreshold(highThreshold))
		assert.GreaterOrEqual(t, res.ChromaticNumber, 2)
		assert.LessOrEqual(t, res.ChromaticNumber, 3)
	})
	t.Run("bipartite", func(t *testing.T) {
		res := mustColor(t, mustBuild(t, builder.CompleteBipartite(3, 3)), abc.WithScoutThreshold(highThreshold))
		assert.GreaterOrEqual(t, res.ChromaticNumber, 2)
		assert.LessOrEqual(t, res.ChromaticNumber, 4)
	})
	t.Run("isolated", func(t *testing.T) {
		g := core.NewGraph()
		for _, id := range []string{"x", "y", "z"} {
			require.NoError(t, g.AddVertex(id))
		}
		res := mustColor(t, g, abc.WithScoutThreshold(highThreshold))
		assert.Equal(t, 1, res.ChromaticNumber)
	})
}

// TestSolve_IntroducedColorBound checks that assignment mints a color only
// when every introduced color conflicts, so at most Δ+1 colors come from
// assignment and every further color comes from a scout.
func TestSolve_IntroducedColorBound(t *testing.T) {
	graphs := map[string]builder.Constructor{
		"random":   builder.RandomSparse(60, 0.12),
		"grid":     builder.Grid(6, 7),
		"wheel":    builder.Wheel(9),
		"star":     builder.Star(12),
		"complete": builder.Complete(5),
	}
	for name, con := range graphs {
		t.Run(name, func(t *testing.T) {
			g := mustBuild(t, con)
			res := mustColor(t, g, abc.WithSeed(seedDet), abc.WithScoutThreshold(2))
			maxDeg := g.Stats().MaxDegree
			assert.LessOrEqual(t, res.ColorsIntroduced, maxDeg+1+res.Scouts)
			assert.LessOrEqual(t, res.ChromaticNumber, maxDeg+1+res.Scouts)
		})
	}
}

func TestSolve_SeedDeterminism(t *testing.T) {
	g := mustBuild(t, builder.RandomSparse(40, 0.2))
	run := func(seed int64) abc.Result {
		return mustColor(t, g, abc.WithSeed(seed), abc.WithScoutThreshold(3))
	}

	a, b := run(seedDet), run(seedDet)
	assert.Equal(t, a.Colors, b.Colors)
	assert.Equal(t, a.Iterations, b.Iterations)
	assert.Equal(t, a.Scouts, b.Scouts)
	assert.Equal(t, a.ColorsIntroduced, b.ColorsIntroduced)

	// seed 0 is the default seed, not a time-based one
	z1, z2 := run(0), run(0)
	assert.Equal(t, z1.Colors, z2.Colors)
}

func TestSolve_PaletteOverflow(t *testing.T) {
	res, err := abc.Solve(context.Background(), mustBuild(t, builder.Complete(3)), abc.WithPaletteSize(2))
	require.ErrorIs(t, err, abc.ErrPaletteOverflow)
	assert.LessOrEqual(t, res.ColorsIntroduced, 2)
}

func TestSolve_Budget(t *testing.T) {
	g := mustBuild(t, builder.Path(10))

	res, err := abc.Solve(context.Background(), g,
		abc.WithEmployedBees(1),
		abc.WithOnlookerBees(0),
		abc.WithMaxIterations(1),
	)
	require.ErrorIs(t, err, abc.ErrNotConverged)
	assert.Equal(t, 1, res.Iterations)
	assert.Len(t, res.Colors, 10)

	uncolored := 0
	for _, c := range res.Colors {
		if c == abc.Uncolored {
			uncolored++
		}
	}
	assert.Equal(t, 9, uncolored)
	assert.Equal(t, 1, res.ChromaticNumber)
}

func TestSolve_TimeLimit(t *testing.T) {
	g := mustBuild(t, builder.Path(500))

	res, err := abc.Solve(context.Background(), g,
		abc.WithEmployedBees(1),
		abc.WithOnlookerBees(0),
		abc.WithTimeLimit(time.Nanosecond),
	)
	require.ErrorIs(t, err, abc.ErrNotConverged)
	assert.Contains(t, err.Error(), "time limit")
	assert.GreaterOrEqual(t, res.Iterations, 1)
	assert.Len(t, res.Colors, 500)
	assert.GreaterOrEqual(t, res.ChromaticNumber, 1)
}

func TestSolve_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := abc.Solve(ctx, mustBuild(t, builder.Cycle(5)))
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, res.Iterations)
	assert.Zero(t, res.ChromaticNumber)
}

func TestSolve_VerboseLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	mustColor(t, mustBuild(t, builder.Cycle(6)), abc.WithVerbose(true), abc.WithLogger(logger))

	out := buf.String()
	assert.Contains(t, out, "starting colony")
	assert.Contains(t, out, "current coloring")
	assert.Contains(t, out, "coloring complete")
}

func TestSolve_QuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	mustColor(t, mustBuild(t, builder.Cycle(6)), abc.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	assert.Empty(t, buf.String())
}
