package solver

// finalCheck verifies a fully decided State and, on success, extracts the
// Solution. It is the only full-strength validation in the engine; the
// incremental counters let everything before this point stay O(1) per edge.
//
// Checks, in order:
//  1. every clued cell has exactly its clue of ON edges;
//  2. every point has ON-degree 0 or 2;
//  3. some point has nonzero degree (an empty loop is not a solution);
//  4. a traversal from the start point reaches every ON edge, which
//     simultaneously rejects multi-cycle assignments and isolated segments.
//
// The cycle is then walked from the lowest-id point with nonzero degree,
// advancing through its lower-numbered neighbor first, so extraction is
// deterministic for a fixed assignment.
// Complexity: O(points + edges).
func finalCheck(s *State) (Solution, bool) {
	lat := s.lat

	// 1. Clue equalities
	for _, c := range lat.CluedCells {
		if s.cellOn[c] != uint8(lat.Clues[c]) {
			return Solution{}, false
		}
	}

	// 2. ON adjacency: up to two neighbors per point
	points := lat.Points()
	nbr := make([][2]int32, points)
	deg := make([]uint8, points)
	onTotal := 0
	for e := range s.edges {
		if s.edges[e] != On {
			continue
		}
		onTotal++
		ed := &lat.Edges[e]
		if deg[ed.U] >= 2 || deg[ed.V] >= 2 {
			return Solution{}, false
		}
		nbr[ed.U][deg[ed.U]] = ed.V
		deg[ed.U]++
		nbr[ed.V][deg[ed.V]] = ed.U
		deg[ed.V]++
	}

	// 3. Degree 0 or 2 everywhere; pick the lowest nonzero-degree start
	start := int32(-1)
	for p := 0; p < points; p++ {
		switch deg[p] {
		case 0:
		case 2:
			if start < 0 {
				start = int32(p)
			}
		default:
			return Solution{}, false
		}
	}
	if start < 0 {
		return Solution{}, false
	}

	// 4. Walk the loop from start; deterministic direction via nbr[0]
	first, second := nbr[start][0], nbr[start][1]
	if second < first {
		first = second
	}
	sr, sc := lat.PointCoord(start)
	cycle := make([]Point, 0, onTotal+1)
	cycle = append(cycle, Point{R: sr, C: sc})

	visitedPoints := 1
	prev, cur := start, first
	for cur != start {
		r, c := lat.PointCoord(cur)
		cycle = append(cycle, Point{R: r, C: c})
		visitedPoints++
		if visitedPoints > onTotal {
			// Walk exceeded the ON-edge budget: inconsistent adjacency.
			return Solution{}, false
		}
		next := nbr[cur][0]
		if next == prev {
			next = nbr[cur][1]
		}
		prev, cur = cur, next
	}
	cycle = append(cycle, Point{R: sr, C: sc})

	// 5. The walk covered every ON edge iff it visited onTotal points
	// (a closed loop has as many edges as distinct points); fewer means a
	// second cycle or an isolated segment exists elsewhere.
	if visitedPoints != onTotal {
		return Solution{}, false
	}

	snapshot := make([]EdgeState, len(s.edges))
	copy(snapshot, s.edges)

	return Solution{Edges: snapshot, Cycle: cycle}, true
}
