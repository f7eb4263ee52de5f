// Package grid defines the Grid type and sentinel errors for puzzle input.
package grid

import "errors"

// Sentinel errors for grid construction and parsing.
var (
	// ErrMalformedGrid indicates non-positive dimensions, a short row, or an
	// unreadable header in the textual puzzle format.
	ErrMalformedGrid = errors.New("grid: malformed grid")
	// ErrClueRange indicates a clue value outside {0,1,2,3}.
	ErrClueRange = errors.New("grid: clue out of range 0..3")
	// ErrCellRange indicates a (row, col) pair outside the grid.
	ErrCellRange = errors.New("grid: cell coordinates out of range")
)

// NoClue marks a cell without a clue in the dense clue array.
const NoClue int8 = -1

// Grid is a rectangular Slitherlink puzzle: Rows×Cols cells, each either
// unclued or carrying a clue in {0,1,2,3}. Cell index = r·Cols + c.
// Immutable after construction; mutate only through SetClue before the grid
// is passed to the lattice builder.
type Grid struct {
	rows, cols int
	clues      []int8 // length rows*cols; NoClue or 0..3
}
