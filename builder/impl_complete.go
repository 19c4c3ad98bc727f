// SPDX-License-Identifier: MIT
// Package: beecolor/builder
//
// impl_complete.go — Complete(n) and CompleteBipartite(n1,n2) constructors.
//
// Contract:
//   • Complete: n ≥ 1; edges i—j for i<j in (i asc, j asc) order.
//   • CompleteBipartite: n1,n2 ≥ 1; left IDs leftPrefix+i, right IDs rightPrefix+j;
//     edges L_i—R_j in (i asc, j asc) order.
//
// Complexity: O(n^2) resp. O(n1·n2) edges.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/beecolor/core"
)

const (
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	minCompleteNodes        = 1
	minPartitionSize        = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, methodComplete, n, cfg.idFn); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, methodComplete, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d n2=%d < min=%d: %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		left := func(i int) string { return cfg.leftPrefix + strconv.Itoa(i) }
		right := func(j int) string { return cfg.rightPrefix + strconv.Itoa(j) }

		if err := addVertices(g, methodCompleteBipartite, n1, left); err != nil {
			return err
		}
		if err := addVertices(g, methodCompleteBipartite, n2, right); err != nil {
			return err
		}
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err := addEdge(g, methodCompleteBipartite, left(i), right(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
