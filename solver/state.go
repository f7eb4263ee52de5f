package solver

import (
	"github.com/katalvlaran/slither/lattice"
)

// State is the mutable per-branch search data: one tri-state per edge plus
// the derived counters the propagation rules read. A State is owned by
// exactly one branch; sibling branches receive independent clones.
//
// Counter invariants maintained by apply:
//
//	pointDegree[p] + pointUndecided[p] + (#Off at p) = lattice degree of p
//	cellOn[c]      + cellUndecided[c]  + (#Off at c) = 4
//	0 ≤ pointDegree[p] ≤ 2
//	for a clued cell c: cellOn[c] ≤ clue and cellOn[c]+cellUndecided[c] ≥ clue
type State struct {
	lat *lattice.Lattice

	edges          []EdgeState
	pointDegree    []uint8 // ON edges incident to each point
	pointUndecided []uint8 // Undecided edges incident to each point
	cellOn         []uint8 // ON edges bordering each cell
	cellUndecided  []uint8 // Undecided edges bordering each cell

	undecided int // remaining Undecided edges, drives the spawn gate
}

// NewState constructs the initial State for lat: every edge Undecided,
// every counter at its lattice value.
// Complexity: O(edges + points + cells).
func NewState(lat *lattice.Lattice) *State {
	s := &State{
		lat:            lat,
		edges:          make([]EdgeState, lat.EdgeCount()),
		pointDegree:    make([]uint8, lat.Points()),
		pointUndecided: make([]uint8, lat.Points()),
		cellOn:         make([]uint8, lat.Cells()),
		cellUndecided:  make([]uint8, lat.Cells()),
		undecided:      lat.EdgeCount(),
	}
	for p := range s.pointUndecided {
		s.pointUndecided[p] = uint8(lat.PointDegree(int32(p)))
	}
	for c := range s.cellUndecided {
		s.cellUndecided[c] = 4
	}

	return s
}

// Clone returns an independent copy of s sharing only the immutable lattice.
// Complexity: O(edges + points + cells); the clone is what makes branch-local
// mutation safe without undo logs.
func (s *State) Clone() *State {
	c := &State{
		lat:            s.lat,
		edges:          make([]EdgeState, len(s.edges)),
		pointDegree:    make([]uint8, len(s.pointDegree)),
		pointUndecided: make([]uint8, len(s.pointUndecided)),
		cellOn:         make([]uint8, len(s.cellOn)),
		cellUndecided:  make([]uint8, len(s.cellUndecided)),
		undecided:      s.undecided,
	}
	copy(c.edges, s.edges)
	copy(c.pointDegree, s.pointDegree)
	copy(c.pointUndecided, s.pointUndecided)
	copy(c.cellOn, s.cellOn)
	copy(c.cellUndecided, s.cellUndecided)

	return c
}

// Edge reports the current tri-state of edge e. Complexity: O(1).
func (s *State) Edge(e int32) EdgeState { return s.edges[e] }

// UndecidedCount reports the number of edges still Undecided.
// Complexity: O(1).
func (s *State) UndecidedCount() int { return s.undecided }

// apply records value for edge e and updates the derived counters.
//
// Contract (value must be On or Off):
//   - already equal: no-op, succeeds;
//   - decided to the opposite value: errContradiction;
//   - otherwise: commit, then fail if a point exceeds degree 2 or a clued
//     cell exceeds its clue.
//
// Partial mutation on failure is fine: callers always operate on a clone and
// discard it when apply reports a contradiction.
func (s *State) apply(e int32, value EdgeState) error {
	cur := s.edges[e]
	if cur == value {
		return nil
	}
	if cur != Undecided {
		return errContradiction
	}

	s.edges[e] = value
	s.undecided--
	ed := &s.lat.Edges[e]
	s.pointUndecided[ed.U]--
	s.pointUndecided[ed.V]--
	if ed.CellA != lattice.NoCell {
		s.cellUndecided[ed.CellA]--
	}
	if ed.CellB != lattice.NoCell {
		s.cellUndecided[ed.CellB]--
	}
	if value != On {
		return nil
	}

	// ON decisions additionally raise degrees and clue counts.
	if s.pointDegree[ed.U]++; s.pointDegree[ed.U] > 2 {
		return errContradiction
	}
	if s.pointDegree[ed.V]++; s.pointDegree[ed.V] > 2 {
		return errContradiction
	}
	if err := s.raiseCellOn(ed.CellA); err != nil {
		return err
	}

	return s.raiseCellOn(ed.CellB)
}

// raiseCellOn increments the ON count of cell c (skipping the boundary
// sentinel) and fails when a clued cell exceeds its clue.
func (s *State) raiseCellOn(c int32) error {
	if c == lattice.NoCell {
		return nil
	}
	s.cellOn[c]++
	if k := s.lat.Clues[c]; k >= 0 && s.cellOn[c] > uint8(k) {
		return errContradiction
	}

	return nil
}
