package solver

import "github.com/katalvlaran/slither/lattice"

// Canonical filters sols down to their canonical representatives under
// horizontal reflection: a solution is kept iff its edge snapshot is
// lexicographically no greater than the snapshot of its mirror image. On a
// horizontally symmetric puzzle this suppresses exactly half of each
// reflective pair; on an asymmetric puzzle the mirror is not a solution of
// the same grid, so callers opt in deliberately.
//
// The filter is off by default everywhere in this module; Solve always
// emits all structurally distinct solutions.
// Complexity: O(len(sols) · edges).
func Canonical(lat *lattice.Lattice, sols []Solution) []Solution {
	kept := make([]Solution, 0, len(sols))
	for _, sol := range sols {
		mirror := Solution{Edges: reflectEdges(lat, sol.Edges)}
		if sol.Compare(mirror) <= 0 {
			kept = append(kept, sol)
		}
	}

	return kept
}

// reflectEdges maps an edge snapshot across the vertical axis of the grid:
// horizontal edge (r,c) swaps with (r, Cols-1-c), vertical edge (r,c) with
// (r, Cols-c).
func reflectEdges(lat *lattice.Lattice, edges []EdgeState) []EdgeState {
	out := make([]EdgeState, len(edges))
	for r := 0; r <= lat.Rows; r++ {
		for c := 0; c < lat.Cols; c++ {
			out[lat.HEdge(r, c)] = edges[lat.HEdge(r, lat.Cols-1-c)]
		}
	}
	for r := 0; r < lat.Rows; r++ {
		for c := 0; c <= lat.Cols; c++ {
			out[lat.VEdge(r, c)] = edges[lat.VEdge(r, lat.Cols-c)]
		}
	}

	return out
}
