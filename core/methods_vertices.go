// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (to keep adjacency invariants consistent).

package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under muVert write lock, check presence; if missing, register it.
//   - Stage 3: Under muEdgeAdj write lock, bootstrap the adjacency bucket.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id}

	g.muEdgeAdj.Lock()
	if g.adjacencyList[id] == nil {
		g.adjacencyList[id] = make(map[string]map[string]struct{})
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes a vertex and all incident edges.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(deg(v)), Space O(1) extra.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}
	g.dropVertexLocked(id)

	return nil
}

// RemoveVertices deletes every listed vertex together with its incident edges
// and returns how many vertices were actually removed. Empty, unknown and
// repeated IDs are skipped silently, so callers that need an exact shrink
// compare the result (or VertexCount) against what they expected.
//
// Implementation:
//   - Stage 1: Take both write locks once for the whole batch.
//   - Stage 2: For each present ID, unlink incident edges and delete the vertex.
//
// Complexity:
//   - Time O(k + Σ deg(v)), Space O(1) extra.
func (g *Graph) RemoveVertices(ids ...string) int {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	removed := 0
	for _, id := range ids {
		if _, exists := g.vertices[id]; !exists {
			continue
		}
		g.dropVertexLocked(id)
		removed++
	}

	return removed
}

// dropVertexLocked unlinks every edge incident to id and removes the vertex.
// Must be called under both write locks.
func (g *Graph) dropVertexLocked(id string) {
	for _, set := range g.adjacencyList[id] {
		for eid := range set {
			if e, ok := g.edges[eid]; ok {
				removeAdjacency(g, e)
				delete(g.edges, eid)
			}
		}
	}
	delete(g.adjacencyList, id)
	delete(g.vertices, id)
}

// Vertices returns all vertex IDs in lexicographic ascending order.
// This is the stable enumeration surface higher-level code relies on.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the current number of vertices in the graph.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}
