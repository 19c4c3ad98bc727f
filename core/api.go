// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only policy getters and the Stats snapshot.

package core

// Looped reports whether self-loops are permitted by policy.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	VertexCount   int
	EdgeCount     int
	LoopCount     int
	MaxDegree     int
	IsolatedCount int // vertices with degree 0
}

// Stats returns a snapshot summary used by loaders and the CLI for diagnostics.
//
// Complexity:
//   - Time O(V + E), Space O(1).
func (g *Graph) Stats() GraphStats {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	s := GraphStats{VertexCount: len(g.vertices), EdgeCount: len(g.edges)}
	for _, e := range g.edges {
		if e.From == e.To {
			s.LoopCount++
		}
	}
	for id := range g.vertices {
		nbrs := g.adjacency[id]
		deg := len(nbrs)
		if _, loop := nbrs[id]; loop {
			deg++
		}
		if deg == 0 {
			s.IsolatedCount++
		}
		if deg > s.MaxDegree {
			s.MaxDegree = deg
		}
	}

	return s
}
