package abc

import (
	"context"
	"fmt"
	"time"
)

// Graph is the read-only view of an undirected graph the colony needs.
// Vertices and NeighborIDs must return the same order on every call;
// *core.Graph satisfies it.
type Graph interface {
	Vertices() []string
	NeighborIDs(id string) ([]string, error)
	Degree(id string) (int, error)
}

// Result is the outcome of a colony run.
//
// Colors maps every vertex ID to its color, Uncolored for vertices a partial
// run never reached. ChromaticNumber counts the distinct colors present in
// Colors; ColorsIntroduced counts every color minted during the run, which can
// be larger because scouts introduce colors that later get overwritten.
type Result struct {
	Colors           map[string]Color
	ChromaticNumber  int
	ColorsIntroduced int
	Iterations       int
	Scouts           int
	Elapsed          time.Duration
}

// Solve runs the colony on g until the coloring is complete and proper.
//
// Validation happens before any coloring work, in this order:
//  1. Options (ErrOptionViolation).
//  2. g non-nil (ErrGraphNil) and non-empty (ErrEmptyGraph).
//  3. EmployedBees ≤ |V| (ErrPoolExhaustion).
//  4. No self-loops (ErrSelfLoop).
//
// Once running, Solve returns the partial Result together with an error when
// the palette overflows (ErrPaletteOverflow), the budget runs out
// (ErrNotConverged) or ctx is done (ctx.Err(), wrapped).
func Solve(ctx context.Context, g Graph, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return Result{}, err
	}
	if g == nil {
		return Result{}, ErrGraphNil
	}

	n := len(g.Vertices())
	if n == 0 {
		return Result{}, ErrEmptyGraph
	}
	if o.EmployedBees > n {
		return Result{}, fmt.Errorf("%w: %d employed bees, %d vertices", ErrPoolExhaustion, o.EmployedBees, n)
	}

	a, err := snapshot(g)
	if err != nil {
		return Result{}, err
	}

	return newColony(a, o).run(ctx)
}

// run is the engine loop: iterate, then check, until complete or out of budget.
func (c *colony) run(ctx context.Context) (Result, error) {
	log := c.opts.Logger
	start := time.Now()
	iterations := 0

	if c.opts.Verbose {
		log.Info("starting colony", "vertices", len(c.graph.ids),
			"employed", c.opts.EmployedBees, "onlookers", c.opts.OnlookerBees,
			"scout_threshold", c.opts.ScoutThreshold)
	}

	for {
		select {
		case <-ctx.Done():
			return c.result(iterations, start), fmt.Errorf("abc: run stopped after %d iterations: %w", iterations, ctx.Err())
		default:
		}

		dist, err := c.iterate()
		if err != nil {
			return c.result(iterations, start), err
		}
		iterations++
		done := c.state.complete(c.graph.adj)

		chosen := c.chosenIDs()
		c.opts.OnIteration(IterationStats{
			Iteration:        iterations,
			Chosen:           chosen,
			Distribution:     dist,
			ColorsIntroduced: len(c.state.used),
			Scouts:           c.scouts,
			Complete:         done,
		})
		if c.opts.Verbose {
			log.Info("iteration", "n", iterations, "chosen", chosen, "onlookers", dist)
			log.Info("current coloring", "colors", formatColoring(c.graph.ids, c.state.colors))
		}

		if done {
			res := c.result(iterations, start)
			if c.opts.Verbose {
				log.Info("coloring complete", "chromatic_number", res.ChromaticNumber,
					"iterations", iterations, "scouts", c.scouts)
			}
			return res, nil
		}
		if c.opts.MaxIterations > 0 && iterations >= c.opts.MaxIterations {
			return c.result(iterations, start), fmt.Errorf("%w: %d iterations", ErrNotConverged, iterations)
		}
		if c.opts.TimeLimit > 0 && time.Since(start) >= c.opts.TimeLimit {
			return c.result(iterations, start), fmt.Errorf("%w: time limit %s", ErrNotConverged, c.opts.TimeLimit)
		}
	}
}

// result snapshots the current state into a Result.
func (c *colony) result(iterations int, start time.Time) Result {
	colors := make(map[string]Color, len(c.graph.ids))
	for i, id := range c.graph.ids {
		colors[id] = c.state.colors[i]
	}
	return Result{
		Colors:           colors,
		ChromaticNumber:  c.state.distinct(),
		ColorsIntroduced: len(c.state.used),
		Iterations:       iterations,
		Scouts:           c.scouts,
		Elapsed:          time.Since(start),
	}
}
