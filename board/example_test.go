// Package board_test provides runnable examples for board helpers.
package board_test

import (
	"fmt"

	"github.com/katalvlaran/npuzzle/board"
)

// ExampleGoal shows the canonical 3×3 goal board.
func ExampleGoal() {
	fmt.Println(board.Goal(3))
	// Output: [1 2 3 4 5 6 7 8 0]
}

// ExampleFormat pretty-prints a board with the blank rendered as spaces.
func ExampleFormat() {
	b := board.Board{1, 2, 3, 4, 0, 5, 6, 7, 8}
	fmt.Println(board.Format(3, b))
	// Output:
	// 1 2 3
	// 4   5
	// 6 7 8
}

// ExampleValidate demonstrates rejecting a board with a duplicated tile.
func ExampleValidate() {
	bad := board.Board{1, 1, 2, 3, 4, 5, 6, 7, 0}
	err := board.Validate(3, bad)
	fmt.Println(err != nil)
	// Output: true
}
