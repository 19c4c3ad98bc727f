// SPDX-License-Identifier: MIT
// Package: beecolor/builder
//
// impl_star.go - Star(n) and Wheel(n) constructors.
//
// Contract:
//   • Both add a hub vertex with the fixed ID "Center".
//   • Star: n ≥ 2, hub + n-1 leaves, spokes Center—leaf[i] for i ascending.
//   • Wheel: n ≥ 4, rim C_{n-1} emitted first, then spokes in rim order.
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/beecolor/core"
)

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	centerID      = "Center"
	minStarNodes  = 2
	minWheelNodes = 4
)

// Star returns a Constructor that builds a star with hub "Center" and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(centerID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, centerID, err)
		}
		if err := addVertices(g, methodStar, n-1, cfg.idFn); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, methodStar, centerID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor that builds W_n = C_{n-1} + "Center".
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodWheel, err)
		}
		if err := g.AddVertex(centerID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodWheel, centerID, err)
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, methodWheel, centerID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
