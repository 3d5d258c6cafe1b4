// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs) and adjacency helpers.
// Determinism:
//   - Neighbors sorted by Edge.ID asc; NeighborIDs sorted lexicographically.
// Concurrency:
//   - Read locks in canonical order muVert -> muEdgeAdj.

package core

import "sort"

// Neighbors returns all edges incident to the given vertex id.
//
// Implementation:
//   - Stage 1: Validate id (ErrEmptyVertexID) and presence (ErrVertexNotFound).
//   - Stage 2: Collect every edge from the adjacency buckets of id; a self-loop appears once.
//   - Stage 3: Sort by Edge.ID asc.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, edgeSet := range g.adjacencyList[id] {
		for eid := range edgeSet {
			e := g.edges[eid]
			if e.IsNil() {
				continue
			}
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the unique set of vertex IDs adjacent to id, sorted ascending.
// A self-loop lists id itself.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]string, 0, len(g.adjacencyList[id]))
	for to, edgeSet := range g.adjacencyList[id] {
		if len(edgeSet) > 0 {
			out = append(out, to)
		}
	}
	sort.Strings(out)

	return out, nil
}

// ensureAdjacency guarantees adjacencyList[from][to] exists.
// Must be called ONLY under muEdgeAdj write lock by mutating code paths.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// removeAdjacency removes e.ID from both adjacency buckets of the edge and
// prunes buckets that become empty.
// Must be called ONLY under muEdgeAdj write lock.
func removeAdjacency(g *Graph, e *Edge) {
	unlink := func(from, to string) {
		if m := g.adjacencyList[from][to]; m != nil {
			delete(m, e.ID)
			if len(m) == 0 {
				delete(g.adjacencyList[from], to)
			}
		}
	}
	unlink(e.From, e.To)
	if e.From != e.To {
		unlink(e.To, e.From)
	}
}
