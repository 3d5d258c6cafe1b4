// Package milp is a small 0/1 integer-programming engine: build a Model of
// binary variables, linear constraints and a linear objective to minimise, then
// hand it to a Solver.
//
// BranchAndBound is the bundled Solver:
//
//  1. Bound propagation on every node: activity intervals of each row fix
//     variables that can only take one value and detect infeasibility early.
//  2. Lower bound: Σ fixed costs + Σ min(0, c_j) over free variables, tightened
//     by the LP relaxation (gonum simplex) when Options.Relaxation == LPRelaxation
//     and the root relaxation beats the trivial bound. A failed relaxation falls
//     back to the weaker bound; it never prunes.
//  3. Branching: most fractional LP variable, else the lowest free index.
//     Children are explored cheaper-side first.
//  4. Up to Options.Threads goroutines explore subtrees (errgroup TryGo with
//     SetLimit). The incumbent is shared under a mutex, so the optimal objective
//     is deterministic even when the reported optimum differs between runs.
//  5. Optional time budget (ErrTimeLimit) and context cancellation.
//
// Complexity: worst case exponential in the number of variables; practical
// speed comes from propagation and pruning.
package milp
