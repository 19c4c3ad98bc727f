// File: methods_adjacent.go
// Role: Neighborhood queries and adjacency bookkeeping.
// Determinism:
//   - NeighborIDs() returns unique neighbor IDs sorted ascending.

package core

import "sort"

// NeighborIDs returns the IDs adjacent to id, unique and sorted ascending.
//
// The sorted order is the "stable neighbor ordering" the onlooker bees rely
// on when they color the first k neighbors of a chosen vertex.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	nbrs := g.adjacency[id]
	ids := make([]string, 0, len(nbrs))
	for v := range nbrs {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// AdjacencyList returns a snapshot vertex ID → sorted neighbor IDs.
// Returned slices are freshly allocated and safe to retain.
// Complexity: O(V + E log d).
func (g *Graph) AdjacencyList() map[string][]string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make(map[string][]string, len(g.adjacency))
	for u, nbrs := range g.adjacency {
		ids := make([]string, 0, len(nbrs))
		for v := range nbrs {
			ids = append(ids, v)
		}
		sort.Strings(ids)
		out[u] = ids
	}

	return out
}

// ensureAdjacency creates the adjacency bucket for id.
// Must be called ONLY under muEdgeAdj write lock.
func ensureAdjacency(g *Graph, id string) {
	if g.adjacency[id] == nil {
		g.adjacency[id] = make(map[string]string)
	}
}
