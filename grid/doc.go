// Package grid models a rectangular Slitherlink puzzle: an n×m field of unit
// cells, some of which carry a clue in {0,1,2,3}. It supports:
//
//   - Programmatic construction via New + SetClue
//   - Parsing the line-oriented textual puzzle format via Parse
//   - O(1) clue lookup by (row, col) or by dense cell index
//
// A Grid is immutable once handed to the lattice builder; constructors
// deep-copy their inputs so callers cannot mutate a Grid behind its back.
//
// Textual format accepted by Parse:
//
//	2 2
//	3 .
//	. 3
//
// First line: rows and cols. Then one line per row with one token per cell,
// where a digit 0..3 is a clue and any other token (commonly ".") means
// "no clue". Blank lines between rows are tolerated; a row with fewer than
// cols tokens is a parse error.
package grid
