package abc

import (
	"fmt"
	"log/slog"
	"time"
)

// Defaults mirror the reference colony configuration.
const (
	DefaultEmployedBees   = 2
	DefaultOnlookerBees   = 28
	DefaultScoutThreshold = 5
	DefaultPaletteSize    = 10000
)

// IterationStats is passed to the OnIteration hook after every iteration.
type IterationStats struct {
	Iteration        int      // 1-based iteration number
	Chosen           []string // vertices picked by employed bees, in draw order
	Distribution     []int    // onlooker bees per chosen vertex
	ColorsIntroduced int      // palette colors minted so far
	Scouts           int      // scout activations so far
	Complete         bool     // whether this iteration produced a proper coloring
}

// Options configures a colony run.
//
// EmployedBees     – vertices drawn per iteration (≥ 1, ≤ |V|).
// OnlookerBees     – bees distributed by nectar over the drawn vertices (≥ 0).
// ScoutThreshold   – stagnation count that triggers a scout (≥ 1).
// PaletteSize      – maximum number of colors that may be introduced (≥ 1).
// MaxIterations    – iteration budget; 0 means unlimited.
// TimeLimit        – wall-clock budget; 0 means unlimited.
// Seed             – RNG seed; 0 selects a fixed default seed.
// Verbose          – log chosen vertices and the running coloring every iteration.
// Logger           – destination for verbose output; nil means slog.Default().
// OnIteration      – called after every iteration.
// OnScout          – called whenever a scout recolors a vertex.
type Options struct {
	EmployedBees   int
	OnlookerBees   int
	ScoutThreshold int
	PaletteSize    int
	MaxIterations  int
	TimeLimit      time.Duration
	Seed           int64
	Verbose        bool
	Logger         *slog.Logger
	OnIteration    func(IterationStats)
	OnScout        func(id string, color Color)

	// first invalid option value, surfaced by Color
	err error
}

// Option configures Options via functional arguments. An invalid value is
// recorded and surfaced as ErrOptionViolation when Solve is invoked.
type Option func(*Options)

// DefaultOptions returns Options with the reference defaults:
// 2 employed bees, 28 onlooker bees, scout threshold 5, palette of 10000
// colors, no budget, default seed, quiet.
func DefaultOptions() Options {
	return Options{
		EmployedBees:   DefaultEmployedBees,
		OnlookerBees:   DefaultOnlookerBees,
		ScoutThreshold: DefaultScoutThreshold,
		PaletteSize:    DefaultPaletteSize,
		OnIteration:    func(IterationStats) {},
		OnScout:        func(string, Color) {},
	}
}

// WithEmployedBees sets the number of employed bees (n ≥ 1).
func WithEmployedBees(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.record(fmt.Errorf("%w: EmployedBees must be ≥ 1 (%d)", ErrOptionViolation, n))
			return
		}
		o.EmployedBees = n
	}
}

// WithOnlookerBees sets the number of onlooker bees (n ≥ 0).
func WithOnlookerBees(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.record(fmt.Errorf("%w: OnlookerBees cannot be negative (%d)", ErrOptionViolation, n))
			return
		}
		o.OnlookerBees = n
	}
}

// WithScoutThreshold sets how many employed visits a vertex absorbs before a
// scout forces a fresh color on it (n ≥ 1).
func WithScoutThreshold(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.record(fmt.Errorf("%w: ScoutThreshold must be ≥ 1 (%d)", ErrOptionViolation, n))
			return
		}
		o.ScoutThreshold = n
	}
}

// WithPaletteSize bounds the number of colors a run may introduce (n ≥ 1).
func WithPaletteSize(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.record(fmt.Errorf("%w: PaletteSize must be ≥ 1 (%d)", ErrOptionViolation, n))
			return
		}
		o.PaletteSize = n
	}
}

// WithMaxIterations caps the number of iterations.
//
//	n > 0: stop after n iterations with ErrNotConverged
//	n == 0: no cap
//	n < 0: ErrOptionViolation
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.record(fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrOptionViolation, n))
			return
		}
		o.MaxIterations = n
	}
}

// WithTimeLimit caps the wall-clock duration of a run (0 = no cap).
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.record(fmt.Errorf("%w: TimeLimit cannot be negative (%s)", ErrOptionViolation, d))
			return
		}
		o.TimeLimit = d
	}
}

// WithSeed fixes the random stream. Seed 0 selects the default seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithVerbose enables per-iteration diagnostic logging.
func WithVerbose(v bool) Option {
	return func(o *Options) { o.Verbose = v }
}

// WithLogger sets the logger used for verbose output.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnIteration registers a callback run after every iteration.
func WithOnIteration(fn func(IterationStats)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}

// WithOnScout registers a callback run whenever a scout recolors a vertex.
func WithOnScout(fn func(id string, color Color)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnScout = fn
		}
	}
}

// record keeps the first violation only.
func (o *Options) record(err error) {
	if o.err == nil {
		o.err = err
	}
}

// validate re-checks field ranges so that Options mutated directly (rather
// than through With* constructors) are held to the same contract.
func (o *Options) validate() error {
	if o.err != nil {
		return o.err
	}
	switch {
	case o.EmployedBees < 1:
		return fmt.Errorf("%w: EmployedBees must be ≥ 1 (%d)", ErrOptionViolation, o.EmployedBees)
	case o.OnlookerBees < 0:
		return fmt.Errorf("%w: OnlookerBees cannot be negative (%d)", ErrOptionViolation, o.OnlookerBees)
	case o.ScoutThreshold < 1:
		return fmt.Errorf("%w: ScoutThreshold must be ≥ 1 (%d)", ErrOptionViolation, o.ScoutThreshold)
	case o.PaletteSize < 1:
		return fmt.Errorf("%w: PaletteSize must be ≥ 1 (%d)", ErrOptionViolation, o.PaletteSize)
	case o.MaxIterations < 0:
		return fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrOptionViolation, o.MaxIterations)
	case o.TimeLimit < 0:
		return fmt.Errorf("%w: TimeLimit cannot be negative (%s)", ErrOptionViolation, o.TimeLimit)
	}
	if o.OnIteration == nil {
		o.OnIteration = func(IterationStats) {}
	}
	if o.OnScout == nil {
		o.OnScout = func(string, Color) {}
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}

	return nil
}
