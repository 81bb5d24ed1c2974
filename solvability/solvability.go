package solvability

import "github.com/katalvlaran/npuzzle/board"

// InversionCount returns the number of tile pairs that appear out of
// ascending order in b, scanning in flat row-major order with the blank
// removed. An O(k²) pairwise scan is plenty for k ≤ 64 cells.
func InversionCount(b board.Board) int {
	// Strip the blank so it never participates in a pair.
	tiles := make([]int, 0, len(b))
	for _, v := range b {
		if v != board.Blank {
			tiles = append(tiles, v)
		}
	}

	inv := 0
	for i := 0; i < len(tiles); i++ {
		for j := i + 1; j < len(tiles); j++ {
			if tiles[i] > tiles[j] {
				inv++
			}
		}
	}

	return inv
}

// IsSolvable reports whether the configuration b on an n×n grid can reach
// the canonical goal by any sequence of blank moves. The decision is pure
// parity arithmetic; no search is performed.
//
// Returns a board validation error (ErrBadSize, ErrBadLength, ErrBadTiles)
// for malformed input; the boolean is meaningful only when err is nil.
func IsSolvable(n int, b board.Board) (bool, error) {
	if err := board.Validate(n, b); err != nil {
		return false, err
	}

	inv := InversionCount(b)

	// Odd grid: blank row does not matter.
	if n%2 == 1 {
		return inv%2 == 0, nil
	}

	// Even grid: the blank's row counted from the bottom (bottom row = 1)
	// flips the required inversion parity.
	blankRowFromTop := board.BlankIndex(b) / n
	blankRowFromBottom := n - blankRowFromTop
	if blankRowFromBottom%2 == 0 {
		return inv%2 == 1, nil
	}

	return inv%2 == 0, nil
}
