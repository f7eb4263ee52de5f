// File: solver/testutil_test.go
package solver

import (
	"testing"

	"github.com/katalvlaran/slither/grid"
	"github.com/katalvlaran/slither/lattice"
)

// mustLattice builds a rows×cols lattice with the given (r,c,k) clues.
func mustLattice(t *testing.T, rows, cols int, clues ...[3]int) *lattice.Lattice {
	t.Helper()
	g, err := grid.New(rows, cols)
	if err != nil {
		t.Fatalf("grid.New(%d,%d) failed: %v", rows, cols, err)
	}
	for _, cl := range clues {
		if err = g.SetClue(cl[0], cl[1], cl[2]); err != nil {
			t.Fatalf("SetClue(%v) failed: %v", cl, err)
		}
	}
	l, err := lattice.Build(g)
	if err != nil {
		t.Fatalf("lattice.Build failed: %v", err)
	}

	return l
}

// scenarioALoop lists the ON edges of the staircase solution of the 2×2
// puzzle with threes at (0,0) and (1,1): 8 edges; the puzzle's only other
// solution is this loop's transpose.
func scenarioALoop(l *lattice.Lattice) []int32 {
	return []int32{
		l.HEdge(0, 0),
		l.HEdge(1, 1),
		l.HEdge(2, 0), l.HEdge(2, 1),
		l.VEdge(0, 0), l.VEdge(0, 1),
		l.VEdge(1, 0), l.VEdge(1, 2),
	}
}

// decide applies the given edges On and every remaining edge Off,
// failing the test on any contradiction.
func decide(t *testing.T, s *State, onEdges []int32) {
	t.Helper()
	on := map[int32]bool{}
	for _, e := range onEdges {
		on[e] = true
		if err := s.apply(e, On); err != nil {
			t.Fatalf("apply(%d, On) failed: %v", e, err)
		}
	}
	for e := int32(0); e < int32(len(s.edges)); e++ {
		if on[e] {
			continue
		}
		if err := s.apply(e, Off); err != nil {
			t.Fatalf("apply(%d, Off) failed: %v", e, err)
		}
	}
}

// checkSolution independently verifies the clue, degree, and single-cycle
// properties of sol against l, without going through finalCheck.
func checkSolution(t *testing.T, l *lattice.Lattice, sol Solution) {
	t.Helper()

	// Clue equalities.
	for _, c := range l.CluedCells {
		on := 0
		for _, e := range l.CellEdges(c) {
			if sol.Edges[e] == On {
				on++
			}
		}
		if on != int(l.Clues[c]) {
			t.Errorf("cell %d has %d ON edges; clue is %d", c, on, l.Clues[c])
		}
	}

	// Degrees 0 or 2.
	deg := make([]int, l.Points())
	onTotal := 0
	for e := range sol.Edges {
		if sol.Edges[e] != On {
			continue
		}
		onTotal++
		deg[l.Edges[e].U]++
		deg[l.Edges[e].V]++
	}
	for p, d := range deg {
		if d != 0 && d != 2 {
			t.Errorf("point %d has degree %d; want 0 or 2", p, d)
		}
	}

	// Cycle shape: start repeated, length = ON edges + 1, every hop a real
	// ON edge.
	if len(sol.Cycle) != onTotal+1 {
		t.Errorf("cycle has %d entries; want %d", len(sol.Cycle), onTotal+1)
	}
	if len(sol.Cycle) > 0 && sol.Cycle[0] != sol.Cycle[len(sol.Cycle)-1] {
		t.Error("cycle does not end at its start")
	}
	for i := 1; i < len(sol.Cycle); i++ {
		a, b := sol.Cycle[i-1], sol.Cycle[i]
		u, v := l.PointID(a.R, a.C), l.PointID(b.R, b.C)
		found := false
		for _, e := range l.PointEdges(u) {
			ed := l.Edges[e]
			if sol.Edges[e] == On && (ed.U == v || ed.V == v) {
				found = true

				break
			}
		}
		if !found {
			t.Errorf("cycle hop %v -> %v is not an ON edge", a, b)
		}
	}
}
