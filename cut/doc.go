// Package cut formulates and solves one balanced min-cut: pick the set of
// residual-graph nodes ("side 1") that becomes the next district.
//
// Formulate builds a 0/1 program over a core.Graph snapshot:
//
//	x_i ∈ {0,1}   per node, 1 = selected
//	y_e ∈ {0,1}   per edge, 1 = edge crosses the cut
//
//	y_e ≥ x_u − x_v,  y_e ≥ x_v − x_u          (y_e ≥ |x_u − x_v|)
//	y_e ≤ x_u + x_v,  y_e ≤ 2 − x_u − x_v      (y_e ≤ x_u XOR x_v)
//	target(1−α) ≤ Σ pop_i x_i ≤ target(1+α)
//	S_i + L_i x_i ≥ L_i                         (connectivity promotion)
//
//	minimise Σ w_e y_e
//
// The connectivity row is x_i·S_i ≥ 0 with S_i the weighted sum of selected
// neighbours that come earlier in Vertices() order, linearised with
// L_i = Σ min(0, w). Non-negative weights make it vacuous (S_i ≥ 0 always);
// it does not prove contiguity. Callers that need contiguity must check it
// after the fact (see partition's component report).
//
// Solver runs a Formulation through a milp.Solver built fresh for every call
// and decodes the node assignment, strictly checking the returned values.
package cut
