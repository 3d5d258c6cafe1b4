// Package geo loads geographic-unit records (counties, precincts) into a
// Model: a core.Graph of adjacencies plus an identity→population table.
//
// Input is a JSON array of records:
//
//	[{"GEOID": "01001", "adj": [1, 4], "pop": 58805, "weights": [0.3, 1.2]}, ...]
//
// "adj" holds positional indices into the same array and "weights" is
// parallel to it. Every record becomes a vertex, including units without
// neighbours. A pair listed more than once keeps the weight seen last;
// self-adjacency is ignored.
package geo
