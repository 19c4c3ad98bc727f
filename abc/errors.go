// SPDX-License-Identifier: MIT
// Package abc: sentinel error set.
//
// Every message is prefixed with "abc: ". Callers branch with errors.Is; the
// implementation adds context with fmt.Errorf("...: %w", ErrX).

package abc

import "errors"

var (
	// ErrGraphNil is returned when a nil graph is passed to Solve or Verify.
	ErrGraphNil = errors.New("abc: graph is nil")

	// ErrEmptyGraph is returned for a graph without vertices.
	ErrEmptyGraph = errors.New("abc: graph has no vertices")

	// ErrSelfLoop is returned when a vertex is adjacent to itself; such a
	// vertex can never be properly colored.
	ErrSelfLoop = errors.New("abc: graph contains a self-loop")

	// ErrOptionViolation is returned when an Option carries a meaningless value.
	ErrOptionViolation = errors.New("abc: invalid option supplied")

	// ErrPoolExhaustion is returned when EmployedBees exceeds the number of
	// vertices, so the availability pool would empty mid-phase. Solve reports
	// it before any coloring work happens.
	ErrPoolExhaustion = errors.New("abc: employed bees exceed available vertices")

	// ErrPaletteOverflow is returned when a new color is needed but the palette
	// capacity is already used up.
	ErrPaletteOverflow = errors.New("abc: palette capacity exceeded")

	// ErrNotConverged is returned when MaxIterations or TimeLimit ran out before
	// the coloring became complete and proper. The partial Result is returned too.
	ErrNotConverged = errors.New("abc: coloring did not converge within budget")

	// ErrIncompleteColoring is returned by Verify when a vertex has no color.
	ErrIncompleteColoring = errors.New("abc: vertex left uncolored")

	// ErrImproperColoring is returned by Verify when an edge is monochromatic.
	ErrImproperColoring = errors.New("abc: adjacent vertices share a color")
)
