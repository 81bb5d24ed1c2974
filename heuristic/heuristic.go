package heuristic

import "github.com/katalvlaran/npuzzle/board"

// Coord is a 0-based (row, col) grid position.
type Coord struct {
	Row, Col int
}

// GoalPositions maps each tile value (index) to its coordinates in the
// canonical goal arrangement. Index 0 is the blank's goal cell. Immutable
// after BuildGoalPositions returns; safe for concurrent reads.
type GoalPositions []Coord

// BuildGoalPositions precomputes the goal coordinates for every value
// 0..n²-1: value v in 1..n²-1 sits at ((v-1)/n, (v-1) mod n) and the blank
// occupies the bottom-right cell. Pure function of n.
// Complexity: O(n²).
func BuildGoalPositions(n int) GoalPositions {
	pos := make(GoalPositions, n*n)
	for v := 1; v < n*n; v++ {
		idx := v - 1
		pos[v] = Coord{Row: idx / n, Col: idx % n}
	}
	pos[board.Blank] = Coord{Row: n - 1, Col: n - 1}

	return pos
}

// Manhattan returns the sum over all tiles (blank excluded) of the vertical
// plus horizontal distance from the tile's cell to its goal cell. Admissible:
// each unit of distance demands at least one move of that tile.
// Complexity: O(n²).
func Manhattan(n int, b board.Board, pos GoalPositions) int {
	dist := 0
	for idx, v := range b {
		if v == board.Blank {
			continue
		}
		r, c := idx/n, idx%n
		g := pos[v]
		dist += abs(r-g.Row) + abs(c-g.Col)
	}

	return dist
}

// LinearConflict returns 2 for every pair of tiles that share a goal line
// (row or column), currently sit in that line, and appear in reversed goal
// order along it. Each such pair forces one tile to leave the line and
// re-enter, which Manhattan does not charge for.
// Complexity: O(n³) worst case.
func LinearConflict(n int, b board.Board, pos GoalPositions) int {
	conflict := 0

	// Row conflicts: tiles in their goal row, compared by goal column.
	line := make([]int, 0, n)
	for r := 0; r < n; r++ {
		line = line[:0]
		for c := 0; c < n; c++ {
			v := b[r*n+c]
			if v != board.Blank && pos[v].Row == r {
				line = append(line, v)
			}
		}
		conflict += 2 * lineInversions(line, func(v int) int { return pos[v].Col })
	}

	// Column conflicts: tiles in their goal column, compared by goal row.
	for c := 0; c < n; c++ {
		line = line[:0]
		for r := 0; r < n; r++ {
			v := b[r*n+c]
			if v != board.Blank && pos[v].Col == c {
				line = append(line, v)
			}
		}
		conflict += 2 * lineInversions(line, func(v int) int { return pos[v].Row })
	}

	return conflict
}

// Estimate is the combined admissible heuristic: Manhattan + LinearConflict.
// Equals 0 exactly at the goal board.
func Estimate(n int, b board.Board, pos GoalPositions) int {
	return Manhattan(n, b, pos) + LinearConflict(n, b, pos)
}

// lineInversions counts pairs in tiles that appear out of order under the
// goal coordinate selected by key.
func lineInversions(tiles []int, key func(int) int) int {
	inv := 0
	for i := 0; i < len(tiles); i++ {
		ki := key(tiles[i])
		for j := i + 1; j < len(tiles); j++ {
			if ki > key(tiles[j]) {
				inv++
			}
		}
	}

	return inv
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
