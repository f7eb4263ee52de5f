package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/slither/lattice"
	"github.com/katalvlaran/slither/solver"
)

// Solution renders the solved loop over the puzzle's clues.
// Complexity: O(rows·cols).
func Solution(lat *lattice.Lattice, sol solver.Solution) string {
	return draw(lat, func(e int32) bool { return sol.Edges[e] == solver.On })
}

// Clues renders the unsolved puzzle: the same frame with no edges drawn.
// Complexity: O(rows·cols).
func Clues(lat *lattice.Lattice) string {
	return draw(lat, func(int32) bool { return false })
}

// Cycle formats the solution's loop as "(r,c) -> (r,c) -> ...", the start
// repeated at the end. Complexity: O(len(cycle)).
func Cycle(sol solver.Solution) string {
	parts := make([]string, len(sol.Cycle))
	for i, p := range sol.Cycle {
		parts[i] = fmt.Sprintf("(%d,%d)", p.R, p.C)
	}

	return strings.Join(parts, " -> ")
}

// draw walks the lattice row by row, asking on(e) whether each edge is part
// of the loop. Trailing blanks on every line are trimmed.
func draw(lat *lattice.Lattice, on func(int32) bool) string {
	var b strings.Builder
	n, m := lat.Rows, lat.Cols

	for r := 0; r <= n; r++ {
		// 1. Point row: '+' alternating with '-' or ' '
		var line strings.Builder
		for c := 0; c < m; c++ {
			line.WriteByte('+')
			if on(lat.HEdge(r, c)) {
				line.WriteByte('-')
			} else {
				line.WriteByte(' ')
			}
		}
		line.WriteByte('+')
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteByte('\n')
		if r == n {
			break
		}

		// 2. Cell row: '|' or ' ' alternating with the clue digit or ' '
		line.Reset()
		for c := 0; c < m; c++ {
			if on(lat.VEdge(r, c)) {
				line.WriteByte('|')
			} else {
				line.WriteByte(' ')
			}
			if k := lat.Clues[r*m+c]; k >= 0 {
				line.WriteByte('0' + byte(k))
			} else {
				line.WriteByte(' ')
			}
		}
		if on(lat.VEdge(r, m)) {
			line.WriteByte('|')
		} else {
			line.WriteByte(' ')
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteByte('\n')
	}

	return b.String()
}
