// Package slither is a parallel Slitherlink solver for Go.
//
// 🚀 What is slither?
//
//	A constraint-propagation backtracking engine that finds the single
//	closed loop satisfying every clue of a rectangular Slitherlink puzzle:
//
//	  • grid/    — puzzle model and the line-oriented textual parser
//	  • lattice/ — immutable point/edge/cell incidence tables
//	  • solver/  — propagation, heuristic branching, fork-join search
//	  • render/  — plain-text drawings and cycle traces
//
// ✨ Why choose slither?
//
//   - Deterministic        — integer-scored heuristic, reproducible with one worker
//   - Parallel             — shallow branches fan out over a fixed worker pool
//   - Exhaustive on demand — first solution by default, every solution with FindAll
//   - Pure API             — immutable inputs, per-branch private state, explicit errors
//
// Quick ASCII example, the classic 2×2 with two threes:
//
//	+-+ +
//	|3|
//	+ +-+
//	|  3|
//	+-+-+
//
// The cmd/slither command wraps the whole pipeline behind a one-argument CLI.
//
//	go get github.com/katalvlaran/slither
package slither
