// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// Looped reports whether self-loops (from==to) are permitted by policy.
// If false, AddEdge(v,v,...) rejects the operation with ErrLoopNotAllowed.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges between the same endpoints are permitted by policy.
// If false, AddEdge(from,to,...) rejects duplicates with ErrMultiEdgeNotAllowed.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// GraphStats is a read-only snapshot of catalog sizes and weight totals.
type GraphStats struct {
	VertexCount int
	EdgeCount   int
	LoopCount   int

	// TotalWeight is the sum of all edge weights (loops included).
	TotalWeight float64

	// IsolatedCount is the number of vertices without any non-loop neighbor.
	IsolatedCount int
}

// Stats produces a deterministic, read-only snapshot of the graph sizes.
//
// Implementation:
//   - Stage 1: Acquire muVert.RLock and muEdgeAdj.RLock (canonical order).
//   - Stage 2: Count vertices; scan edges once for loops and weights.
//   - Stage 3: Count vertices whose adjacency holds no foreign neighbor.
//
// Complexity:
//   - Time O(V + E), Space O(1).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	st := &GraphStats{VertexCount: len(g.vertices), EdgeCount: len(g.edges)}
	for _, e := range g.edges {
		st.TotalWeight += e.Weight
		if e.From == e.To {
			st.LoopCount++
		}
	}
	for id := range g.vertices {
		isolated := true
		for to, set := range g.adjacencyList[id] {
			if to != id && len(set) > 0 {
				isolated = false
				break
			}
		}
		if isolated {
			st.IsolatedCount++
		}
	}

	return st
}
