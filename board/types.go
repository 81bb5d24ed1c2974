// Package board defines the core data types, size constants, and sentinel
// errors shared by every npuzzle subpackage.
package board

import "errors"

// Sentinel errors for board construction and validation.
var (
	// ErrBadSize indicates the requested side length is outside [MinSize, MaxSize].
	ErrBadSize = errors.New("board: side length must be between 3 and 8")
	// ErrBadLength indicates the flat board does not hold exactly n² cells.
	ErrBadLength = errors.New("board: board length must equal n²")
	// ErrBadTiles indicates the board is not a permutation of 0..n²-1.
	ErrBadTiles = errors.New("board: board must contain each of 0..n²-1 exactly once")
)

// Supported puzzle side lengths. The upper bound keeps the state space
// within a practical range for exact search.
const (
	// MinSize is the smallest supported grid side (3 → the 8-puzzle).
	MinSize = 3
	// MaxSize is the largest supported grid side (8 → the 63-puzzle).
	MaxSize = 8
)

// Blank is the cell value representing the empty cell tiles slide into.
const Blank = 0

// Move labels the direction the blank travels during one transition.
type Move string

// The four legal blank moves.
const (
	MoveUp    Move = "U"
	MoveDown  Move = "D"
	MoveLeft  Move = "L"
	MoveRight Move = "R"
)

// Board is a flat, row-major snapshot of an n×n grid. The value Blank (0)
// marks the empty cell; values 1..n²-1 are tiles. A Board is never mutated
// after creation: every transition produces a fresh copy, so Boards may be
// shared freely across goroutines once constructed.
type Board []int
