// Package solver implements the parallel constraint-propagation backtracking
// search for Slitherlink loops over a lattice.Lattice. It supports:
//
//   - Solve(lat, opts...): first-solution or exhaustive enumeration
//   - Constraint propagation to fixpoint after every decision
//   - A deterministic, integer-scored branching heuristic
//   - Fork-join task parallelism at shallow depth with one-shot cancellation
//   - Canonical: an opt-in reflection post-filter over the result set
//
// The engine keeps three layers of pruning, cheapest first: per-decision
// counter checks inside apply, the O(points+clues) quick validator, and the
// worklist propagation fixpoint. A leaf reaches the full single-cycle check
// only when every edge is decided.
//
// Concurrency model: the lattice is immutable and shared; every branch owns
// a private State clone; the only shared mutable pieces are the solution
// sink (mutex) and the stop flag (atomic). Branch forks never block on
// submission, so the fixed worker pool cannot deadlock on nested joins.
//
// Complexity: worst case exponential in the number of undecided edges;
// propagation is O(edges·α) per pass, cloning O(edges+points+cells) per
// branch.
//
// Errors:
//
//   - ErrLatticeNil          if the lattice is nil.
//   - context error          if the caller's context ends the run early.
//
// Contradictions found during search are internal: they prune branches and
// never surface. An unsolvable puzzle yields an empty, error-free result.
package solver
