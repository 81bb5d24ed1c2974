// Package solvability_test provides runnable examples for the parity test.
package solvability_test

import (
	"fmt"

	"github.com/katalvlaran/npuzzle/board"
	"github.com/katalvlaran/npuzzle/solvability"
)

// ExampleIsSolvable gates a search on the parity test: the goal with two
// adjacent tiles swapped is famously unreachable.
func ExampleIsSolvable() {
	good := board.Board{1, 2, 3, 4, 5, 6, 7, 8, 0}
	bad := board.Board{1, 2, 3, 4, 5, 6, 8, 7, 0}

	okGood, _ := solvability.IsSolvable(3, good)
	okBad, _ := solvability.IsSolvable(3, bad)

	fmt.Printf("goal solvable=%v, swapped solvable=%v\n", okGood, okBad)
	// Output: goal solvable=true, swapped solvable=false
}

// ExampleInversionCount counts out-of-order tile pairs, ignoring the blank.
func ExampleInversionCount() {
	b := board.Board{1, 2, 3, 4, 5, 6, 8, 7, 0}
	fmt.Println(solvability.InversionCount(b))
	// Output: 1
}
