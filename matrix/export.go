// SPDX-License-Identifier: MIT
// Package matrix — sparse export (Sparse → core.Graph).
//
// Contract:
//   - Square matrices only (ErrNonSquare).
//   - Vertices "0".."n-1" are all added, so isolated rows survive. IDs are
//     zero-padded to the width of n-1 ("07" when n = 12) so that sorted
//     vertex and neighbor order equals row order.
//   - Edge i—j iff i != j and |a[i,j]| > edgeThreshold; the pair is added once
//     regardless of how many stored entries (mirror or duplicate) name it.
//   - Entries are visited in file order, so edge IDs are deterministic.
//
// Complexity: O(n + nnz) insertions into core.

package matrix

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/beecolor/core"
)

// ToGraph builds an undirected simple graph from the sparsity pattern.
// Errors: ErrNilMatrix, ErrNonSquare, ErrOutOfRange, plus bubbled core errors.
func (s *Sparse) ToGraph(optFns ...Option) (*core.Graph, error) {
	if s == nil {
		return nil, fmt.Errorf("ToGraph: %w", ErrNilMatrix)
	}
	if !s.IsSquare() {
		return nil, fmt.Errorf("ToGraph: %dx%d: %w", s.Rows, s.Cols, ErrNonSquare)
	}
	opts := gatherOptions(optFns...)

	g := core.NewGraph()
	ids := make([]string, s.Rows)
	width := len(strconv.Itoa(max(s.Rows-1, 0)))
	for i := range ids {
		ids[i] = fmt.Sprintf("%0*d", width, i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("ToGraph: AddVertex %q: %w", ids[i], err)
		}
	}

	for _, e := range s.Entries {
		if e.Row < 0 || e.Row >= s.Rows || e.Col < 0 || e.Col >= s.Cols {
			return nil, fmt.Errorf("ToGraph: entry (%d,%d): %w", e.Row, e.Col, ErrOutOfRange)
		}
		if e.Row == e.Col || math.Abs(e.Value) <= opts.edgeThreshold {
			continue
		}
		u, v := ids[e.Row], ids[e.Col]
		if g.HasEdge(u, v) {
			continue
		}
		if _, err := g.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("ToGraph: AddEdge %s—%s: %w", u, v, err)
		}
	}

	return g, nil
}
