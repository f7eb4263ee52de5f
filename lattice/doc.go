// Package lattice builds the immutable incidence structure of a Slitherlink
// puzzle: the lattice points, the horizontal and vertical edges between them,
// and the cell/point adjacency tables the solver's hot path indexes into.
//
// Key facts for an n×m grid:
//
//   - Points:  (n+1)·(m+1), point id = r·(m+1) + c
//   - Edges:   (n+1)·m horizontal followed by n·(m+1) vertical
//   - Cells:   n·m, cell id = r·m + c; every cell borders exactly 4 edges
//   - Boundary edges use NoCell for the missing side
//
// All tables are dense integer indices; no pointers, no maps. Build is O(E)
// and the result is shared read-only across all search branches.
//
// Invariants guaranteed by Build:
//
//   - every edge appears in exactly two point lists;
//   - every boundary edge appears in exactly one cell list, interior edges in two;
//   - edge indices are dense in [0, EdgeCount).
package lattice
