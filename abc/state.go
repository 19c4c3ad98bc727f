package abc

import "fmt"

// arena is the immutable index view of the input graph taken once per run.
// Vertex i has ID ids[i], neighbors adj[i] (stable order) and degree deg[i].
type arena struct {
	ids []string
	adj [][]int
	deg []int
}

// snapshot copies g into an arena, rejecting self-loops.
//
// Complexity: O(V + E) plus whatever the Graph implementation charges for its
// queries.
func snapshot(g Graph) (*arena, error) {
	ids := g.Vertices()
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	a := &arena{
		ids: ids,
		adj: make([][]int, len(ids)),
		deg: make([]int, len(ids)),
	}
	for i, id := range ids {
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("abc: neighbors of %q: %w", id, err)
		}
		row := make([]int, 0, len(nbrs))
		for _, nb := range nbrs {
			if nb == id {
				return nil, fmt.Errorf("%w: vertex %q", ErrSelfLoop, id)
			}
			j, ok := index[nb]
			if !ok {
				return nil, fmt.Errorf("abc: neighbor %q of %q is not a vertex", nb, id)
			}
			row = append(row, j)
		}
		a.adj[i] = row

		deg, err := g.Degree(id)
		if err != nil {
			return nil, fmt.Errorf("abc: degree of %q: %w", id, err)
		}
		a.deg[i] = deg
	}

	return a, nil
}

// State is the mutable coloring of one run: a color (or Uncolored) per
// vertex index, the colors introduced so far in introduction order, and a
// per-vertex stagnation counter. It is revised in place and never reset.
type State struct {
	colors     []Color
	used       []Color
	stagnation []int
}

// newState returns a state for n vertices: all Uncolored, no colors, zero counters.
func newState(n int) *State {
	s := &State{
		colors:     make([]Color, n),
		stagnation: make([]int, n),
	}
	for i := range s.colors {
		s.colors[i] = Uncolored
	}
	return s
}

// complete reports whether every vertex is colored and no edge is
// monochromatic. It always rescans everything.
//
// Complexity: O(V + E).
func (s *State) complete(adj [][]int) bool {
	for v, c := range s.colors {
		if c == Uncolored {
			return false
		}
		for _, nb := range adj[v] {
			if s.colors[nb] == c {
				return false
			}
		}
	}
	return true
}

// distinct counts the colors actually present in the assignment.
func (s *State) distinct() int {
	seen := make(map[Color]struct{}, len(s.used))
	for _, c := range s.colors {
		if c != Uncolored {
			seen[c] = struct{}{}
		}
	}
	return len(seen)
}

// ChromaticNumber counts the distinct colors present in a coloring map,
// ignoring Uncolored entries.
func ChromaticNumber(colors map[string]Color) int {
	seen := make(map[Color]struct{})
	for _, c := range colors {
		if c != Uncolored {
			seen[c] = struct{}{}
		}
	}
	return len(seen)
}

// Verify checks that colors is a complete proper coloring of g.
//
// Vertices are scanned in g.Vertices() order so the reported violation is
// deterministic.
//
// Errors:
//   - ErrGraphNil for a nil graph.
//   - ErrIncompleteColoring naming the first uncolored vertex.
//   - ErrImproperColoring naming the first monochromatic edge.
//   - Neighbor lookup errors from g, wrapped.
func Verify(g Graph, colors map[string]Color) error {
	if g == nil {
		return ErrGraphNil
	}
	ids := g.Vertices()
	for _, id := range ids {
		c, ok := colors[id]
		if !ok || c == Uncolored {
			return fmt.Errorf("%w: %q", ErrIncompleteColoring, id)
		}
	}
	for _, id := range ids {
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return fmt.Errorf("abc: neighbors of %q: %w", id, err)
		}
		for _, nb := range nbrs {
			if colors[nb] == colors[id] {
				return fmt.Errorf("%w: %q—%q both have color %d", ErrImproperColoring, id, nb, colors[id])
			}
		}
	}
	return nil
}

// formatColoring renders the assignment as "id=color" pairs in arena order
// for verbose output.
func formatColoring(ids []string, colors []Color) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = fmt.Sprintf("%s=%d", id, colors[i])
	}
	return out
}
