// Package bfs provides breadth-first traversal over a core.Graph and the
// connected-component decomposition built on top of it.
//
// BFS ignores edge weights: distance is the number of hops from the start
// vertex. Neighbors are enqueued in core.NeighborIDs order (lexicographic), so
// the visit sequence is fully reproducible.
//
// Components partitions any vertex set (typically one district) into its
// connected pieces. The partition engine uses it to report districts whose
// units are not contiguous, because the cut formulation does not guarantee
// contiguity on its own.
//
// Complexity: O(V + E) time, O(V) memory for both BFS and Components.
package bfs
