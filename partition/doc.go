// Package partition drives the iterative districting loop.
//
// Engine.Run splits a geo.Model into N districts:
//
//	target   = total population / N
//	residual = clone of the model graph
//	repeat N−1 times:
//	    cut residual (balanced min-cut, window target·(1±α))
//	    check the window, record the district and its solve time
//	    remove the district from residual, check the shrink
//	last district = whatever remains (no solve)
//	check coverage: every unit in exactly one district
//
// Every check is fatal; there is no retry and no partial plan. Cuts are
// greedy: each is optimal on its own residual graph, the sequence is not.
//
// The cut's connectivity row does not guarantee contiguity, so every district
// gets a component count from a BFS over its induced subgraph. Fragmented
// districts are logged, never rejected.
package partition
