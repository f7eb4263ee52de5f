// File: solver/heuristic_test.go
package solver

import "testing"

//----------------------------------------------------------------------------//
// selectEdge
//----------------------------------------------------------------------------//

// TestSelectEdge_AllDecided verifies the -1 sentinel once every edge is
// decided (a 1×1 grid with a 0-clue fully propagates).
func TestSelectEdge_AllDecided(t *testing.T) {
	l := mustLattice(t, 1, 1, [3]int{0, 0, 0})
	s := NewState(l)
	if err := propagate(s); err != nil {
		t.Fatalf("propagate failed: %v", err)
	}
	if e := selectEdge(s); e != -1 {
		t.Errorf("selectEdge on decided state = %d; want -1", e)
	}
}

// TestSelectEdge_Deterministic verifies the lowest-index tie-break on a
// fresh unclued grid: every corner-adjacent edge scores the near-forced
// bonus, so edge 0 wins.
func TestSelectEdge_Deterministic(t *testing.T) {
	l := mustLattice(t, 2, 2)
	s := NewState(l)
	first := selectEdge(s)
	if first != 0 {
		t.Errorf("selectEdge on fresh state = %d; want 0", first)
	}
	for i := 0; i < 5; i++ {
		if e := selectEdge(s); e != first {
			t.Errorf("selectEdge not deterministic: %d then %d", first, e)
		}
	}
}

// TestSelectEdge_ForcedVicinity verifies the early exit: after one ON edge,
// the lowest-index undecided edge touching a degree-1 point is chosen.
func TestSelectEdge_ForcedVicinity(t *testing.T) {
	l := mustLattice(t, 2, 2)
	s := NewState(l)
	if err := s.apply(l.HEdge(0, 0), On); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	e := selectEdge(s)
	ed := l.Edges[e]
	if s.pointDegree[ed.U] != 1 && s.pointDegree[ed.V] != 1 {
		t.Errorf("selectEdge = %d, which touches no degree-1 point", e)
	}
	if score := scoreEdge(s, e); score < scoreForcedVicinity {
		t.Errorf("chosen edge scores %d; want >= %d", score, scoreForcedVicinity)
	}
}

// TestScoreCell_Table exercises the clue-pressure tiers directly on a 2×2
// grid with a single clue.
func TestScoreCell_Table(t *testing.T) {
	l := mustLattice(t, 2, 2, [3]int{0, 0, 2})
	s := NewState(l)

	// Fresh: need=2, und=4 → balanced fallback: 100 - |2·2-4| = 100.
	if got := s.scoreCell(0); got != 100 {
		t.Errorf("fresh scoreCell = %d; want 100", got)
	}

	// One edge Off: need=2, und=3 → und<=2 false, fallback 100-|1| = 99.
	edges := l.CellEdges(0)
	if err := s.apply(edges[0], Off); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if got := s.scoreCell(0); got != 99 {
		t.Errorf("scoreCell after one Off = %d; want 99", got)
	}

	// Two Off: need=2, und=2 → decisive.
	if err := s.apply(edges[1], Off); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if got := s.scoreCell(0); got != scoreCellDecisive {
		t.Errorf("scoreCell at need==und = %d; want %d", got, scoreCellDecisive)
	}
}

//----------------------------------------------------------------------------//
// branchFeasibility
//----------------------------------------------------------------------------//

// TestBranchFeasibility covers the three regimes: both branches open, Off
// blocked by a stranded endpoint, On blocked by a saturated endpoint.
func TestBranchFeasibility(t *testing.T) {
	l := mustLattice(t, 2, 2)

	// Fresh edge: both feasible.
	s := NewState(l)
	canOff, canOn := branchFeasibility(s, l.HEdge(0, 0))
	if !canOff || !canOn {
		t.Errorf("fresh edge feasibility = (%v,%v); want (true,true)", canOff, canOn)
	}
	if isForced(s, l.HEdge(0, 0)) {
		t.Error("fresh edge reported forced")
	}

	// Corner point (0,0) with one ON and one undecided edge: the remaining
	// edge cannot go Off.
	s = NewState(l)
	if err := s.apply(l.HEdge(0, 0), On); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	canOff, _ = branchFeasibility(s, l.VEdge(0, 0))
	if canOff {
		t.Error("Off reported feasible although it strands a degree-1 corner")
	}
	if !isForced(s, l.VEdge(0, 0)) {
		t.Error("edge with a single feasible branch not reported forced")
	}

	// Saturated point: degree 2 blocks On.
	s = NewState(l)
	p := l.PointID(1, 1)
	incident := l.PointEdges(p)
	if err := s.apply(incident[0], On); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if err := s.apply(incident[1], On); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	_, canOn = branchFeasibility(s, incident[2])
	if canOn {
		t.Error("On reported feasible at a saturated point")
	}
}
