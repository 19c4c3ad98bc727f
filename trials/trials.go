// SPDX-License-Identifier: MIT

package trials

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/beecolor/abc"
)

var (
	// ErrOptionViolation is returned for Trials < 1 or Parallelism < 0.
	ErrOptionViolation = errors.New("trials: invalid option supplied")

	// ErrNoSuccess is returned when every trial failed; it wraps the first
	// trial's error as well.
	ErrNoSuccess = errors.New("trials: no trial produced a coloring")
)

// Options configures Run.
//
// Trials      – number of independent runs (≥ 1).
// Parallelism – maximum concurrent runs; 0 means GOMAXPROCS.
// BaseSeed    – parent seed; trial i uses abc.DeriveSeed(BaseSeed, i).
// Logger      – per-trial debug output; nil means slog.Default().
type Options struct {
	Trials      int
	Parallelism int
	BaseSeed    int64
	Logger      *slog.Logger
}

// Trial is the outcome of one seeded run.
type Trial struct {
	Index  int
	Seed   int64
	Result abc.Result
	Err    error
}

// Report aggregates a batch of trials.
type Report struct {
	RunID            string
	Best             abc.Result
	BestIndex        int   // -1 when no trial succeeded
	ChromaticNumbers []int // per trial; 0 for failed trials
	Trials           []Trial
	Failures         int
	Elapsed          time.Duration
}

// Run executes o.Trials colorings of g and returns the aggregated Report.
//
// Per-trial failures (ErrNotConverged, ErrPaletteOverflow, ...) are recorded
// in the Report and do not stop the other trials. Run itself errors when:
//   - o is invalid (ErrOptionViolation);
//   - ctx is done (ctx.Err(), wrapped); the partial Report is returned;
//   - no trial succeeded (ErrNoSuccess joined with the first trial error).
func Run(ctx context.Context, g abc.Graph, o Options, opts ...abc.Option) (Report, error) {
	if o.Trials < 1 {
		return Report{}, fmt.Errorf("%w: Trials must be ≥ 1 (%d)", ErrOptionViolation, o.Trials)
	}
	if o.Parallelism < 0 {
		return Report{}, fmt.Errorf("%w: Parallelism cannot be negative (%d)", ErrOptionViolation, o.Parallelism)
	}
	limit := o.Parallelism
	if limit == 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	log := o.Logger
	if log == nil {
		log = slog.Default()
	}

	rep := Report{
		RunID:     uuid.New().String(),
		BestIndex: -1,
		Trials:    make([]Trial, o.Trials),
	}
	log = log.With("run_id", rep.RunID)
	start := time.Now()

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)
	for i := 0; i < o.Trials; i++ {
		i := i
		seed := abc.DeriveSeed(o.BaseSeed, uint64(i))
		eg.Go(func() error {
			runOpts := append(append(make([]abc.Option, 0, len(opts)+1), opts...), abc.WithSeed(seed))
			res, err := abc.Solve(egCtx, g, runOpts...)
			rep.Trials[i] = Trial{Index: i, Seed: seed, Result: res, Err: err}
			log.Debug("trial finished", "trial", i, "seed", seed,
				"chromatic_number", res.ChromaticNumber, "iterations", res.Iterations, "err", err)

			// only cancellation aborts the batch
			if err != nil && ctx.Err() != nil {
				return ctx.Err()
			}
			return nil
		})
	}
	waitErr := eg.Wait()

	rep.ChromaticNumbers = make([]int, o.Trials)
	for i, tr := range rep.Trials {
		if tr.Err != nil {
			rep.Failures++
			continue
		}
		rep.ChromaticNumbers[i] = tr.Result.ChromaticNumber
		if rep.BestIndex < 0 || tr.Result.ChromaticNumber < rep.Best.ChromaticNumber {
			rep.Best = tr.Result
			rep.BestIndex = i
		}
	}
	rep.Elapsed = time.Since(start)

	if waitErr != nil {
		return rep, fmt.Errorf("trials: batch stopped: %w", waitErr)
	}
	if rep.BestIndex < 0 {
		return rep, fmt.Errorf("%w: %w", ErrNoSuccess, rep.Trials[0].Err)
	}
	log.Debug("trials finished", "trials", o.Trials, "failures", rep.Failures,
		"best_trial", rep.BestIndex, "chromatic_number", rep.Best.ChromaticNumber)

	return rep, nil
}
