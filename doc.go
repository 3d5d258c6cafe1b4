// Package districtcut partitions a map of geographic units (precincts,
// blocks, counties) into n districts of near-equal population while keeping
// the weighted boundary between districts small.
//
// What is districtcut?
//
//	An iterative balanced min-cut engine. Each round solves a 0/1 program
//	over the residual adjacency graph: select a set of units whose
//	population lies within target·(1±α) and whose boundary weight to the
//	rest is minimal. The selected units become a district and leave the
//	graph; after n-1 rounds the remainder is the last district.
//
// Packages:
//
//	core/       thread-safe undirected weighted graph; residual removal, cloning, induced views
//	bfs/        breadth-first traversal and connected components (contiguity report)
//	geo/        JSON record loading (GEOID, adj, pop, weights) into a population-weighted graph
//	milp/       0/1 linear programs and a parallel branch-and-bound solver, optional LP bounds
//	cut/        balanced min-cut formulation, decoding and checks
//	partition/  the district loop, fatal validators and the contiguity report
//	report/     district_outputs/ and runtimes/ CSV tables, written atomically
//	config/     YAML + DISTRICTCUT_* environment configuration, validated
//	metrics/    Prometheus solve-time, node and outcome instruments
//	builder/    synthetic grid and corridor maps for tests and demos
//
// A 2×2 map split into two districts:
//
//	    A───B
//	    │   │
//	    C───D
//
//	pop 10 each, target 20: {A,B} | {C,D} or {A,C} | {B,D}, cut weight 2.
//
// The command-line front end lives in cmd/districtcut:
//
//	districtcut generate grid --rows 6 --cols 6 -o map.json
//	districtcut run --input map.json --out results --districts 4 --alpha 0.05
package districtcut
