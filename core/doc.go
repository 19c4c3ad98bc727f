// Package core provides the thread-safe, in-memory undirected Graph that the
// coloring engine and the loaders in this module operate on.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected, unweighted, simple edges (no parallel edges).
//   - Self-loops are rejected unless the graph was created WithLoops(); a looped
//     vertex can never be properly colored, so the coloring engine refuses it.
//   - Constant-time adjacency via nested maps: adjacency[u][v] = edgeID.
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj).
//   - Deterministic iteration: Vertices(), Edges() and NeighborIDs() return sorted results.
//
// Core Methods:
//
//	AddVertex(id string) error                  // O(1)
//	HasVertex(id string) bool                   // O(1)
//	AddEdge(u, v string) (edgeID string, err)   // O(1), auto-adds endpoints
//	HasEdge(u, v string) bool                   // O(1)
//	NeighborIDs(id string) ([]string, error)    // O(d·log d), sorted
//	Degree(id string) (int, error)              // O(1)
//	Vertices() []string                         // O(V·log V)
//	Edges() []*Edge                             // O(E·log E)
//	VertexCount(), EdgeCount() int              // O(1)
//	Stats() GraphStats                          // O(V)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – second edge between the same endpoints
//
// *Graph satisfies abc.Graph, so it can be passed to abc.Solve directly.
package core
