// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clones preserve vertex IDs, edge IDs and the edge ID sequence.
// Concurrency:
//   - Read locks on the source; the result is a fresh, unshared instance.

package core

import "sync/atomic"

// CloneEmpty returns a new Graph with identical configuration and vertices, but no edges.
// The edge ID sequence is carried so future AddEdge calls never collide with source IDs.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := g.newEmptyLike()
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	for id := range g.vertices {
		clone.vertices[id] = &Vertex{ID: id}
		clone.adjacencyList[id] = make(map[string]map[string]struct{})
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges, and adjacency.
// Mutating the clone (e.g. removing a district's vertices) never affects g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for eid, e := range g.edges {
		clone.linkCopy(&Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight})
	}

	return clone
}

// newEmptyLike allocates an empty graph with g's policy flags.
// Callers hold at least a read lock on muVert.
func (g *Graph) newEmptyLike() *Graph {
	var opts []GraphOption
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}

	return NewGraph(opts...)
}

// linkCopy stores a pre-built edge and its adjacency in a graph that is not yet shared.
func (g *Graph) linkCopy(ne *Edge) {
	g.edges[ne.ID] = ne
	ensureAdjacency(g, ne.From, ne.To)
	g.adjacencyList[ne.From][ne.To][ne.ID] = struct{}{}
	if ne.From != ne.To {
		ensureAdjacency(g, ne.To, ne.From)
		g.adjacencyList[ne.To][ne.From][ne.ID] = struct{}{}
	}
}
