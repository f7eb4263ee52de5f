package grid

import "fmt"

// New constructs an empty Grid with the given dimensions.
// Returns ErrMalformedGrid if rows or cols is not positive.
// Complexity: O(rows·cols) to allocate the clue array.
func New(rows, cols int) (*Grid, error) {
	// 1. Validate dimensions
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: dimensions %d×%d", ErrMalformedGrid, rows, cols)
	}

	// 2. Allocate the dense clue array, all cells unclued
	clues := make([]int8, rows*cols)
	for i := range clues {
		clues[i] = NoClue
	}

	return &Grid{rows: rows, cols: cols, clues: clues}, nil
}

// Rows returns the number of cell rows. Complexity: O(1).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of cell columns. Complexity: O(1).
func (g *Grid) Cols() int { return g.cols }

// Cells returns the total number of cells, rows·cols. Complexity: O(1).
func (g *Grid) Cells() int { return g.rows * g.cols }

// Index maps (r, c) to the dense cell index r·Cols + c. Complexity: O(1).
func (g *Grid) Index(r, c int) int { return r*g.cols + c }

// InBounds reports whether (r, c) names a cell of the grid. Complexity: O(1).
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// SetClue assigns clue k to cell (r, c).
// Returns ErrCellRange if (r, c) is out of bounds, ErrClueRange if k is not
// in {0,1,2,3}. Complexity: O(1).
func (g *Grid) SetClue(r, c, k int) error {
	if !g.InBounds(r, c) {
		return fmt.Errorf("%w: (%d,%d)", ErrCellRange, r, c)
	}
	if k < 0 || k > 3 {
		return fmt.Errorf("%w: %d", ErrClueRange, k)
	}
	g.clues[g.Index(r, c)] = int8(k)

	return nil
}

// Clue reports the clue at cell (r, c); ok is false for unclued cells.
// Complexity: O(1).
func (g *Grid) Clue(r, c int) (k int, ok bool) {
	v := g.clues[g.Index(r, c)]
	if v == NoClue {
		return 0, false
	}

	return int(v), true
}

// ClueAt reports the clue at dense cell index i; ok is false for unclued
// cells. Complexity: O(1).
func (g *Grid) ClueAt(i int) (k int, ok bool) {
	v := g.clues[i]
	if v == NoClue {
		return 0, false
	}

	return int(v), true
}

// ClueCount returns the number of clued cells. Complexity: O(rows·cols).
func (g *Grid) ClueCount() int {
	n := 0
	for _, v := range g.clues {
		if v != NoClue {
			n++
		}
	}

	return n
}

// ClueDensity returns the fraction of cells carrying a clue, in [0,1].
// The search engine tunes its parallel spawn depth on the same ratio, which
// it computes from the lattice. Complexity: O(rows·cols).
func (g *Grid) ClueDensity() float64 {
	return float64(g.ClueCount()) / float64(g.Cells())
}
