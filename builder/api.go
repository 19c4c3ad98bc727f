// SPDX-License-Identifier: MIT
// Package: beecolor/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/beecolor/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early, return sentinel
// errors (no panics) and preserve determinism for the same config and order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// Cycle(n)                  C_n, n ≥ 3; χ = 2 for even n, 3 for odd n.
// Path(n)                   P_n, n ≥ 2; χ = 2.
// Star(n)                   hub "Center" + n-1 leaves, n ≥ 2; χ = 2.
// Wheel(n)                  C_{n-1} + hub "Center", n ≥ 4; χ = 3 or 4.
// Complete(n)               K_n, n ≥ 1; χ = n.
// CompleteBipartite(n1,n2)  K_{n1,n2}; χ = 2.
// Grid(rows, cols)          4-neighborhood lattice; χ = 2 when it has an edge.
// RandomSparse(n, p)        Erdős–Rényi G(n,p), seeded.
