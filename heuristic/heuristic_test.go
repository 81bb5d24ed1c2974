// Package heuristic_test contains unit tests for the goal-position table,
// Manhattan distance, and the Linear Conflict correction.
package heuristic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/npuzzle/board"
	"github.com/katalvlaran/npuzzle/heuristic"
)

// TestBuildGoalPositions_Placement verifies the table layout for n=3:
// tiles 1..8 row-major, blank bottom-right.
func TestBuildGoalPositions_Placement(t *testing.T) {
	pos := heuristic.BuildGoalPositions(3)

	assert.Equal(t, heuristic.Coord{Row: 0, Col: 0}, pos[1])
	assert.Equal(t, heuristic.Coord{Row: 0, Col: 2}, pos[3])
	assert.Equal(t, heuristic.Coord{Row: 1, Col: 1}, pos[5])
	assert.Equal(t, heuristic.Coord{Row: 2, Col: 1}, pos[8])
	assert.Equal(t, heuristic.Coord{Row: 2, Col: 2}, pos[board.Blank])
}

// TestManhattan_GoalIsZero: every tile already home contributes nothing.
func TestManhattan_GoalIsZero(t *testing.T) {
	for n := board.MinSize; n <= board.MaxSize; n++ {
		pos := heuristic.BuildGoalPositions(n)
		assert.Zero(t, heuristic.Manhattan(n, board.Goal(n), pos), "n=%d", n)
	}
}

// TestManhattan_SingleSlide: the board one blank move away from the goal
// has exactly one tile displaced by one cell.
func TestManhattan_SingleSlide(t *testing.T) {
	pos := heuristic.BuildGoalPositions(3)
	b := board.Board{1, 2, 3, 4, 5, 6, 7, 0, 8}
	assert.Equal(t, 1, heuristic.Manhattan(3, b, pos))
}

// TestManhattan_IgnoresBlank: moving only the blank around costs nothing.
func TestManhattan_IgnoresBlank(t *testing.T) {
	pos := heuristic.BuildGoalPositions(3)
	// Blank in the top-left, tiles cycled accordingly: each tile's own
	// distance is what counts, never the blank's.
	b := board.Board{0, 1, 2, 3, 4, 5, 6, 7, 8}
	m := heuristic.Manhattan(3, b, pos)
	assert.Positive(t, m)

	// Recompute by hand: tile v at index i contributes |r-gr|+|c-gc|.
	want := 0
	for i, v := range b {
		if v == 0 {
			continue
		}
		r, c := i/3, i%3
		g := pos[v]
		d := r - g.Row
		if d < 0 {
			d = -d
		}
		e := c - g.Col
		if e < 0 {
			e = -e
		}
		want += d + e
	}
	assert.Equal(t, want, m)
}

// TestLinearConflict_GoalIsZero: no conflicts in the solved arrangement.
func TestLinearConflict_GoalIsZero(t *testing.T) {
	pos := heuristic.BuildGoalPositions(3)
	assert.Zero(t, heuristic.LinearConflict(3, board.Goal(3), pos))
}

// TestLinearConflict_RowReversal: tiles 1 and 2 swapped in the top row is
// one conflicting pair, worth exactly +2.
func TestLinearConflict_RowReversal(t *testing.T) {
	pos := heuristic.BuildGoalPositions(3)
	b := board.Board{
		2, 1, 3,
		4, 5, 6,
		7, 8, 0,
	}
	assert.Equal(t, 2, heuristic.LinearConflict(3, b, pos))
}

// TestLinearConflict_ColumnReversal: tiles 1 and 4 swapped in the left
// column conflict by goal row, also +2.
func TestLinearConflict_ColumnReversal(t *testing.T) {
	pos := heuristic.BuildGoalPositions(3)
	b := board.Board{
		4, 2, 3,
		1, 5, 6,
		7, 8, 0,
	}
	assert.Equal(t, 2, heuristic.LinearConflict(3, b, pos))
}

// TestLinearConflict_OutOfRowTilesIgnored: a displaced tile outside its goal
// row never creates a row conflict.
func TestLinearConflict_OutOfRowTilesIgnored(t *testing.T) {
	pos := heuristic.BuildGoalPositions(3)
	// Tiles 6 and 1 trade places. Neither sits in its goal row or column
	// here, so no line can charge a conflict for them.
	b := board.Board{
		6, 2, 3,
		4, 5, 1,
		7, 8, 0,
	}
	assert.Zero(t, heuristic.LinearConflict(3, b, pos))
}

// TestEstimate_Composition: the combined bound is the exact sum of its parts
// and zero at the goal.
func TestEstimate_Composition(t *testing.T) {
	pos := heuristic.BuildGoalPositions(3)
	b := board.Board{
		2, 1, 3,
		4, 5, 6,
		7, 8, 0,
	}
	m := heuristic.Manhattan(3, b, pos)
	lc := heuristic.LinearConflict(3, b, pos)
	assert.Equal(t, m+lc, heuristic.Estimate(3, b, pos))
	assert.Zero(t, heuristic.Estimate(3, board.Goal(3), pos))
}

// TestEstimate_NonNegative samples scrambled boards of several sizes.
func TestEstimate_NonNegative(t *testing.T) {
	cases := []struct {
		n int
		b board.Board
	}{
		{3, board.Board{8, 6, 7, 2, 5, 4, 3, 0, 1}},
		{4, board.Board{5, 1, 2, 4, 9, 6, 3, 8, 13, 10, 7, 12, 0, 14, 11, 15}},
	}
	for _, tc := range cases {
		pos := heuristic.BuildGoalPositions(tc.n)
		assert.GreaterOrEqual(t, heuristic.Manhattan(tc.n, tc.b, pos), 0)
		assert.GreaterOrEqual(t, heuristic.LinearConflict(tc.n, tc.b, pos), 0)
	}
}
