package solver

import "github.com/katalvlaran/slither/lattice"

// Heuristic score weights. All arithmetic is signed-integer so the ranking
// is exactly reproducible.
const (
	scoreForcedVicinity = 10000 // an endpoint already has degree 1
	scoreNearForced     = 5000  // an endpoint has degree 0 and exactly 2 undecided
	scoreCellDecisive   = 2000  // the cell's remaining need is 0 or equals its undecided count
	scoreCellLastEdge   = 1500  // the cell has a single undecided edge left
	scoreCellTight      = 1000  // the cell has at most two undecided edges
	scoreBalancedBase   = 100   // fallback: prefer balanced need vs. undecided
)

// selectEdge chooses the next Undecided edge to branch on, or -1 when every
// edge is decided.
//
// Candidates are scored by how constrained their surroundings are: the
// vicinity of a degree-1 point is a forced move (early exit), a degree-0
// point with two undecided edges is a near-forced binary, and incident clued
// cells contribute by how close they are to decisive. Ties prefer a genuine
// forced move (exactly one feasible branch) and then the lowest edge index,
// which keeps the search deterministic.
// Complexity: O(edges), with early exit on the first forced-vicinity hit.
func selectEdge(s *State) int32 {
	best := int32(-1)
	bestScore := -1
	bestForced := false

	for e := int32(0); e < int32(len(s.edges)); e++ {
		if s.edges[e] != Undecided {
			continue
		}
		score := scoreEdge(s, e)
		if score >= scoreForcedVicinity {
			return e
		}
		if score > bestScore {
			best, bestScore = e, score
			bestForced = isForced(s, e)

			continue
		}
		if score == bestScore && !bestForced && isForced(s, e) {
			best, bestForced = e, true
		}
	}

	return best
}

// scoreEdge computes the branching desirability of Undecided edge e.
func scoreEdge(s *State, e int32) int {
	ed := &s.lat.Edges[e]
	score := 0

	if s.pointDegree[ed.U] == 1 || s.pointDegree[ed.V] == 1 {
		score += scoreForcedVicinity
	}
	if (s.pointDegree[ed.U] == 0 && s.pointUndecided[ed.U] == 2) ||
		(s.pointDegree[ed.V] == 0 && s.pointUndecided[ed.V] == 2) {
		score += scoreNearForced
	}
	score += s.scoreCell(ed.CellA)
	score += s.scoreCell(ed.CellB)

	return score
}

// scoreCell contributes the clue pressure of one incident cell, 0 for
// boundary sentinels and unclued cells.
func (s *State) scoreCell(c int32) int {
	if c == lattice.NoCell || s.lat.Clues[c] < 0 {
		return 0
	}

	need := int(s.lat.Clues[c]) - int(s.cellOn[c])
	und := int(s.cellUndecided[c])
	switch {
	case need == und || need == 0:
		return scoreCellDecisive
	case und == 1:
		return scoreCellLastEdge
	case und <= 2:
		return scoreCellTight
	}

	// Balanced-branch fallback; signed arithmetic by construction.
	d := 2*need - und
	if d < 0 {
		d = -d
	}
	if d >= scoreBalancedBase {
		return 0
	}

	return scoreBalancedBase - d
}

// branchFeasibility reports which decisions on edge e survive the local
// degree rules: Off is infeasible when it would strand a degree-1 endpoint,
// On when either endpoint already has degree 2. Complexity: O(1).
func branchFeasibility(s *State, e int32) (canOff, canOn bool) {
	ed := &s.lat.Edges[e]
	u, v := ed.U, ed.V
	canOff = !((s.pointDegree[u] == 1 && s.pointUndecided[u] == 1) ||
		(s.pointDegree[v] == 1 && s.pointUndecided[v] == 1))
	canOn = s.pointDegree[u] < 2 && s.pointDegree[v] < 2

	return canOff, canOn
}

// isForced reports whether exactly one branch of e is locally feasible.
func isForced(s *State, e int32) bool {
	canOff, canOn := branchFeasibility(s, e)

	return canOff != canOn
}
