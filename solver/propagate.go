package solver

import "github.com/katalvlaran/slither/lattice"

// worklist is a FIFO "push distinct" queue over dense int32 ids: a
// byte-per-element membership table keeps each id in the queue at most once.
type worklist struct {
	items  []int32
	head   int
	member []bool
}

// newWorklist sizes the membership table for ids in [0, n).
func newWorklist(n int) *worklist {
	return &worklist{member: make([]bool, n)}
}

// push enqueues id unless it is already queued. Complexity: O(1) amortized.
func (w *worklist) push(id int32) {
	if w.member[id] {
		return
	}
	w.member[id] = true
	w.items = append(w.items, id)
}

// pop dequeues the oldest id. Callers must check empty first.
func (w *worklist) pop() int32 {
	id := w.items[w.head]
	w.head++
	w.member[id] = false
	if w.head == len(w.items) {
		w.items = w.items[:0]
		w.head = 0
	}

	return id
}

// empty reports whether the queue holds no ids. Complexity: O(1).
func (w *worklist) empty() bool { return w.head == len(w.items) }

// propagate runs the deduction rules to fixpoint over two worklists, one of
// clued cells and one of points, both fully seeded on entry. Each forced
// edge re-seeds its endpoints and adjacent clued cells, so a successful
// return is a true fixpoint: running propagate again changes nothing.
//
// Cell rule, for clue k with on ON and und Undecided bordering edges:
//   - on > k or on+und < k          → contradiction
//   - on+und == k and und > 0       → every Undecided bordering edge is On
//   - on == k and und > 0           → every Undecided bordering edge is Off
//
// Point rule, for degree deg and und Undecided incident edges:
//   - deg == 1 and und == 1         → the single Undecided edge is On
//   - deg == 2 and und > 0          → every Undecided incident edge is Off
//
// Termination: every iteration either converts an Undecided edge or drains
// the queues; total work is O(edges · α) for a small constant α.
// Returns nil when the worklists drain, errContradiction the instant any
// forced move is rejected.
func propagate(s *State) error {
	lat := s.lat
	cells := newWorklist(lat.Cells())
	points := newWorklist(lat.Points())

	// 1. Seed with all clued cells and all points
	for _, c := range lat.CluedCells {
		cells.push(c)
	}
	for p := 0; p < lat.Points(); p++ {
		points.push(int32(p))
	}

	// 2. Drain to fixpoint
	for !cells.empty() || !points.empty() {
		if !cells.empty() {
			if err := s.propagateCell(cells.pop(), cells, points); err != nil {
				return err
			}

			continue
		}
		if err := s.propagatePoint(points.pop(), cells, points); err != nil {
			return err
		}
	}

	return nil
}

// propagateCell applies the cell rule to clued cell c.
func (s *State) propagateCell(c int32, cells, points *worklist) error {
	k := uint8(s.lat.Clues[c])
	on, und := s.cellOn[c], s.cellUndecided[c]

	if on > k || on+und < k {
		return errContradiction
	}
	if und == 0 {
		return nil
	}

	switch {
	case on+und == k:
		return s.forceCellEdges(c, On, cells, points)
	case on == k:
		return s.forceCellEdges(c, Off, cells, points)
	}

	return nil
}

// forceCellEdges assigns value to every Undecided edge bordering cell c.
func (s *State) forceCellEdges(c int32, value EdgeState, cells, points *worklist) error {
	for _, e := range s.lat.CellEdges(c) {
		if s.edges[e] != Undecided {
			continue
		}
		if err := s.force(e, value, cells, points); err != nil {
			return err
		}
	}

	return nil
}

// propagatePoint applies the point rule to point p.
func (s *State) propagatePoint(p int32, cells, points *worklist) error {
	deg, und := s.pointDegree[p], s.pointUndecided[p]

	// deg==0 with no undecided edges is an isolated point; deg==2 with
	// undecided edges forces the remainder Off; anything else is settled
	// here and re-checked by the quick validator.
	switch {
	case deg == 1 && und == 1:
		for _, e := range s.lat.PointEdges(p) {
			if s.edges[e] == Undecided {
				return s.force(e, On, cells, points)
			}
		}
	case deg == 2 && und > 0:
		for _, e := range s.lat.PointEdges(p) {
			if s.edges[e] != Undecided {
				continue
			}
			if err := s.force(e, Off, cells, points); err != nil {
				return err
			}
		}
	}

	return nil
}

// force applies one deduced decision and re-seeds both endpoints and both
// adjacent clued cells of the edge.
func (s *State) force(e int32, value EdgeState, cells, points *worklist) error {
	if err := s.apply(e, value); err != nil {
		return err
	}

	ed := &s.lat.Edges[e]
	points.push(ed.U)
	points.push(ed.V)
	if ed.CellA != lattice.NoCell && s.lat.Clues[ed.CellA] >= 0 {
		cells.push(ed.CellA)
	}
	if ed.CellB != lattice.NoCell && s.lat.Clues[ed.CellB] >= 0 {
		cells.push(ed.CellB)
	}

	return nil
}
