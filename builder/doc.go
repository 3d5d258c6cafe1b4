// SPDX-License-Identifier: MIT
// Package builder generates synthetic precinct maps: geographic units with
// populations and weighted adjacencies, ready for geo.NewModel or for
// writing as input JSON.
//
// Composition mirrors the rest of the repository's option style:
//
//	recs, err := builder.Build(
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithUniformPopulation(800, 1200)},
//	    builder.Grid(6, 8),
//	)
//
//   - Constructors (Grid, Path) add units and adjacencies in a documented,
//     stable order.
//   - IDFn names units from their insertion index (DefaultIDFn, FIPSIDFn, ...).
//   - WeightFn draws edge weights, PopulationFn draws unit populations.
//     Both fall back to constants when no RNG is configured.
//
// Determinism: same options, seed and constructor order ⇒ identical records.
// Option constructors panic on invalid parameters (programmer error);
// Build returns sentinel errors for invalid build parameters.
package builder
