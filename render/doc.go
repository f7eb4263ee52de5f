// Package render draws solved and unsolved Slitherlink puzzles as plain
// text, and formats solution cycle traces.
//
// A solved 2×2 puzzle (threes on the main diagonal) renders as:
//
//	+-+ +
//	|3|
//	+ +-+
//	|  3|
//	+-+-+
//
// Point rows alternate '+' with '-' (edge ON) or ' ' (edge OFF); cell rows
// alternate '|' or ' ' with the clue digit or ' '; trailing blanks are
// trimmed. The cycle trace lists the loop's point coordinates joined by
// " -> ", the start repeated at the end.
package render
