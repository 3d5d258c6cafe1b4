// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating graph views.
// Determinism:
//   - Preserves vertex/edge IDs and weights.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

import "sync/atomic"

// InducedSubgraph returns a new Graph induced by the set "keep" of vertex IDs:
// the result contains only vertices v where keep[v] is true, and all edges whose
// endpoints are both in keep. IDs in keep that are not vertices of g are ignored.
// The input graph is not mutated.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	g.muVert.RLock()
	out := g.newEmptyLike()
	for id := range g.vertices {
		if keep[id] {
			out.vertices[id] = &Vertex{ID: id}
			out.adjacencyList[id] = make(map[string]map[string]struct{})
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	// Carry the counter so the view never reuses historical IDs.
	srcNextEdgeID := atomic.LoadUint64(&g.nextEdgeID)
	for eid, e := range g.edges {
		if !keep[e.From] || !keep[e.To] {
			continue
		}
		out.linkCopy(&Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight})
	}
	g.muEdgeAdj.RUnlock()

	atomic.StoreUint64(&out.nextEdgeID, srcNextEdgeID)

	return out
}
