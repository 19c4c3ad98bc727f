// Package trials runs several independently seeded colony colorings of the
// same graph and keeps the best one.
//
// The colony is a randomized heuristic; the number of colors it settles on
// varies with the seed. Run fans N trials out over a bounded number of
// goroutines (errgroup with SetLimit), gives trial i the seed
// abc.DeriveSeed(BaseSeed, i), and reports the coloring with the fewest
// colors, breaking ties by the lower trial index. Because every trial owns its
// seed, the report is identical for a fixed BaseSeed whatever the
// parallelism.
//
// Hooks passed through abc options (OnIteration, OnScout) are shared by all
// trials and must be safe for concurrent use when Parallelism > 1.
package trials
