package solver

// Point is one lattice point coordinate in (row, col) form, as emitted in a
// solution's cycle trace.
type Point struct {
	R, C int
}

// Solution is a complete, verified edge assignment: the per-edge snapshot
// plus the ordered loop of point coordinates, with the starting point
// repeated at the end.
type Solution struct {
	Edges []EdgeState
	Cycle []Point
}

// Compare orders solutions lexicographically on their edge snapshots,
// which is the total order used for deduplication and canonicalization.
// Returns -1, 0, or +1. Complexity: O(edges).
func (s Solution) Compare(o Solution) int {
	for i := range s.Edges {
		if i >= len(o.Edges) {
			return 1
		}
		if s.Edges[i] != o.Edges[i] {
			if s.Edges[i] < o.Edges[i] {
				return -1
			}

			return 1
		}
	}
	if len(s.Edges) < len(o.Edges) {
		return -1
	}

	return 0
}

// OnCount returns the number of ON edges in the snapshot.
// Complexity: O(edges).
func (s Solution) OnCount() int {
	n := 0
	for _, v := range s.Edges {
		if v == On {
			n++
		}
	}

	return n
}
