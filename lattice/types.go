// Package lattice defines the incidence types and sentinel errors for the
// lattice subpackage of github.com/katalvlaran/slither.
package lattice

import "errors"

// Sentinel errors for lattice construction.
var (
	// ErrMalformedGrid indicates the source grid has non-positive dimensions.
	ErrMalformedGrid = errors.New("lattice: grid dimensions must be positive")
)

// NoCell marks the missing side of a boundary edge in Edge.CellA/CellB.
const NoCell int32 = -1

// EdgeKind distinguishes horizontal from vertical lattice edges.
type EdgeKind uint8

const (
	// Horizontal edges connect (r,c)–(r,c+1) in point coordinates.
	Horizontal EdgeKind = iota
	// Vertical edges connect (r,c)–(r+1,c) in point coordinates.
	Vertical
)

// Edge is one lattice segment: its two endpoint point ids and the up-to-two
// cells it borders. CellA is the upper (horizontal) or left (vertical) cell,
// CellB the lower or right one; either may be NoCell on the grid boundary.
type Edge struct {
	U, V         int32
	CellA, CellB int32
	Kind         EdgeKind
}

// Lattice is the immutable incidence structure of one puzzle. It is built
// once per grid and shared read-only by every search branch.
type Lattice struct {
	Rows, Cols int

	// Edges lists every lattice edge; indices are dense in [0, len(Edges)).
	Edges []Edge

	// Clues holds the per-cell clue (0..3) or -1 for unclued cells.
	Clues []int8

	// CluedCells lists the cell ids that carry a clue, ascending.
	CluedCells []int32

	// cellEdges maps each cell id to its four bordering edge ids
	// (top, bottom, left, right).
	cellEdges [][4]int32

	// pointEdges maps each point id to its 2–4 incident edge ids.
	pointEdges [][]int32

	// hIndex and vIndex map (r,c) to horizontal/vertical edge ids.
	// Used by renderers and the solver's reflection filter; the search
	// itself never touches them.
	hIndex []int32 // (n+1)×m, index r·m + c
	vIndex []int32 // n×(m+1), index r·(m+1) + c
}

// Points returns the number of lattice points, (Rows+1)·(Cols+1).
// Complexity: O(1).
func (l *Lattice) Points() int { return (l.Rows + 1) * (l.Cols + 1) }

// Cells returns the number of cells, Rows·Cols. Complexity: O(1).
func (l *Lattice) Cells() int { return l.Rows * l.Cols }

// EdgeCount returns the number of lattice edges. Complexity: O(1).
func (l *Lattice) EdgeCount() int { return len(l.Edges) }

// PointID maps point coordinates (r, c) to the dense point id.
// Complexity: O(1).
func (l *Lattice) PointID(r, c int) int32 { return int32(r*(l.Cols+1) + c) }

// PointCoord converts a dense point id back to (r, c). Complexity: O(1).
func (l *Lattice) PointCoord(p int32) (r, c int) {
	return int(p) / (l.Cols + 1), int(p) % (l.Cols + 1)
}

// CellEdges returns the four edge ids bordering cell c. Complexity: O(1).
func (l *Lattice) CellEdges(c int32) [4]int32 { return l.cellEdges[c] }

// PointEdges returns the 2–4 edge ids incident to point p. The returned
// slice is shared; callers must not mutate it. Complexity: O(1).
func (l *Lattice) PointEdges(p int32) []int32 { return l.pointEdges[p] }

// PointDegree returns the lattice degree of point p (2, 3, or 4).
// Complexity: O(1).
func (l *Lattice) PointDegree(p int32) int { return len(l.pointEdges[p]) }

// HEdge returns the edge id of the horizontal edge at point row r, column c,
// with r∈[0,Rows], c∈[0,Cols). Complexity: O(1).
func (l *Lattice) HEdge(r, c int) int32 { return l.hIndex[r*l.Cols+c] }

// VEdge returns the edge id of the vertical edge at row r, point column c,
// with r∈[0,Rows), c∈[0,Cols]. Complexity: O(1).
func (l *Lattice) VEdge(r, c int) int32 { return l.vIndex[r*(l.Cols+1)+c] }
