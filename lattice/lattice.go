package lattice

import (
	"fmt"

	"github.com/katalvlaran/slither/grid"
)

// Build derives the immutable incidence structure from g.
// It deep-copies the clue data so the Lattice never aliases the Grid.
// Returns ErrMalformedGrid only for non-positive dimensions; clue values are
// validated upstream by the grid package.
// Complexity: O(E) time and memory, E = n·(m+1) + (n+1)·m.
func Build(g *grid.Grid) (*Lattice, error) {
	// 1. Validate dimensions
	n, m := g.Rows(), g.Cols()
	if n < 1 || m < 1 {
		return nil, fmt.Errorf("%w: %d×%d", ErrMalformedGrid, n, m)
	}

	l := &Lattice{
		Rows:       n,
		Cols:       m,
		Edges:      make([]Edge, 0, n*(m+1)+(n+1)*m),
		Clues:      make([]int8, n*m),
		cellEdges:  make([][4]int32, n*m),
		pointEdges: make([][]int32, (n+1)*(m+1)),
		hIndex:     make([]int32, (n+1)*m),
		vIndex:     make([]int32, n*(m+1)),
	}

	// 2. Copy clues and collect the clued-cell list
	for i := 0; i < n*m; i++ {
		if k, ok := g.ClueAt(i); ok {
			l.Clues[i] = int8(k)
			l.CluedCells = append(l.CluedCells, int32(i))
		} else {
			l.Clues[i] = -1
		}
	}

	// 3. Horizontal edges: rows 0..n of m edges each
	for r := 0; r <= n; r++ {
		for c := 0; c < m; c++ {
			above, below := NoCell, NoCell
			if r > 0 {
				above = int32((r-1)*m + c)
			}
			if r < n {
				below = int32(r*m + c)
			}
			l.hIndex[r*m+c] = l.addEdge(Edge{
				U:     l.PointID(r, c),
				V:     l.PointID(r, c+1),
				CellA: above,
				CellB: below,
				Kind:  Horizontal,
			})
		}
	}

	// 4. Vertical edges: rows 0..n-1 of m+1 edges each
	for r := 0; r < n; r++ {
		for c := 0; c <= m; c++ {
			left, right := NoCell, NoCell
			if c > 0 {
				left = int32(r*m + c - 1)
			}
			if c < m {
				right = int32(r*m + c)
			}
			l.vIndex[r*(m+1)+c] = l.addEdge(Edge{
				U:     l.PointID(r, c),
				V:     l.PointID(r+1, c),
				CellA: left,
				CellB: right,
				Kind:  Vertical,
			})
		}
	}

	// 5. Per-cell adjacency: top, bottom, left, right
	for r := 0; r < n; r++ {
		for c := 0; c < m; c++ {
			l.cellEdges[r*m+c] = [4]int32{
				l.HEdge(r, c),
				l.HEdge(r+1, c),
				l.VEdge(r, c),
				l.VEdge(r, c+1),
			}
		}
	}

	return l, nil
}

// addEdge appends e, registers it with both endpoint point lists, and
// returns its dense id.
func (l *Lattice) addEdge(e Edge) int32 {
	id := int32(len(l.Edges))
	l.Edges = append(l.Edges, e)
	l.pointEdges[e.U] = append(l.pointEdges[e.U], id)
	l.pointEdges[e.V] = append(l.pointEdges[e.V], id)

	return id
}
