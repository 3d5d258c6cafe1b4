// Package core provides the thread-safe, undirected, float-weighted Graph used to
// model precinct/county adjacency and the residual graph that shrinks as
// districts are cut out of it.
//
// The Graph G = (V,E):
//
//   - Undirected edges, mirrored in adjacencyList[to][from].
//   - Non-negative float64 weights (shared-boundary strength). NaN/±Inf → ErrBadWeight,
//     negative → ErrNegativeWeight.
//   - Parallel edges (WithMultiEdges) and self-loops (WithLoops) are opt-in.
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation (“e1”, “e2”, …).
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj).
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error               // O(1)
//	HasVertex(id string) bool                // O(1)
//	RemoveVertex(id string) error            // O(E)
//	RemoveVertices(ids ...string) int        // O(E + k), missing IDs ignored
//
//	// Edge lifecycle
//	AddEdge(from,to string, weight float64) (edgeID string, err error) // O(1)
//	RemoveEdge(edgeID string) error          // O(1)
//	HasEdge(from,to string) bool             // O(1)
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)    // O(d·log d), sorted by Edge.ID
//	NeighborIDs(id string) ([]string, error) // O(d·log d), unique, sorted
//	Vertices() []string                      // O(V·log V)
//	Edges() []*Edge                          // O(E·log E)
//	CutWeight(side map[string]bool) float64  // O(E)
//	Stats() *GraphStats                      // O(V+E)
//
//	// Cloning and views
//	Clone() *Graph                           // O(V+E)
//	InducedSubgraph(g, keep) *Graph          // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrBadWeight           – NaN or infinite weight
//	ErrNegativeWeight      – weight below zero
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
