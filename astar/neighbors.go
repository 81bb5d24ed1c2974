package astar

import "github.com/katalvlaran/npuzzle/board"

// Neighbors returns every board reachable from b by sliding the blank once,
// tagged with the direction the blank travels. Emission order is fixed:
// U, D, L, R (legal moves only), giving 2 successors from a corner, 3 from
// an edge, and 4 from an interior cell.
//
// Each successor is a fresh board with exactly the blank and one adjacent
// cell exchanged; b itself is never mutated.
//
// b is expected to carry a blank (any board accepted by board.Validate
// does); a board without one has no legal moves and yields nil.
// Complexity: O(n²) per successor (the copy dominates).
func Neighbors(n int, b board.Board) []Step {
	z := board.BlankIndex(b)
	if z < 0 {
		return nil
	}
	zr, zc := z/n, z%n

	steps := make([]Step, 0, 4)
	if zr > 0 {
		steps = append(steps, swapped(b, z, z-n, board.MoveUp))
	}
	if zr < n-1 {
		steps = append(steps, swapped(b, z, z+n, board.MoveDown))
	}
	if zc > 0 {
		steps = append(steps, swapped(b, z, z-1, board.MoveLeft))
	}
	if zc < n-1 {
		steps = append(steps, swapped(b, z, z+1, board.MoveRight))
	}

	return steps
}

// swapped clones b with cells z and idx exchanged and tags the clone with mv.
func swapped(b board.Board, z, idx int, mv board.Move) Step {
	nb := b.Clone()
	nb[z], nb[idx] = nb[idx], nb[z]

	return Step{Board: nb, Move: mv}
}
