// Package astar defines options, the result record, and sentinel errors
// for the n-puzzle search engine.
package astar

import (
	"errors"
	"time"

	"github.com/katalvlaran/npuzzle/board"
)

// ErrFrontierExhausted is returned when the frontier empties before the goal
// is popped. For a board that passed solvability.IsSolvable this is
// unreachable; seeing it means the precondition was skipped or the engine
// itself is broken, so treat it as fatal rather than as "no solution".
var ErrFrontierExhausted = errors.New("astar: frontier exhausted before reaching the goal")

// Step pairs a successor board with the move that produced it.
type Step struct {
	// Board is a fresh copy; the origin board is never touched.
	Board board.Board
	// Move is the direction the blank travelled.
	Move board.Move
}

// Options holds parameters and callbacks customizing a Search run.
type Options struct {
	// UseHeuristic selects A* (true, default) or Uniform Cost Search (false).
	UseHeuristic bool

	// OnExpand, if non-nil, is invoked synchronously for every accepted
	// expansion with the popped board and its path cost g. Stale duplicate
	// pops are not reported.
	OnExpand func(b board.Board, g int)
}

// Option configures Search behavior via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with the heuristic enabled and no hooks.
func DefaultOptions() Options {
	return Options{
		UseHeuristic: true,
		OnExpand:     nil,
	}
}

// WithoutHeuristic disables the heuristic, turning Search into Uniform Cost
// Search. The returned move count is still optimal; only the number of
// expansions grows.
func WithoutHeuristic() Option {
	return func(o *Options) {
		o.UseHeuristic = false
	}
}

// WithOnExpand registers a callback fired on every accepted expansion.
func WithOnExpand(fn func(b board.Board, g int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result holds the outcome of one Search run.
type Result struct {
	// Moves is the minimum number of blank moves from start to goal.
	Moves int

	// Path lists the move labels in start-to-goal order; len(Path) == Moves.
	Path []board.Move

	// Boards lists every board along the optimal path, start and goal
	// inclusive; len(Boards) == Moves+1.
	Boards []board.Board

	// Expanded counts boards popped from the frontier and expanded
	// (stale duplicates excluded).
	Expanded int

	// MaxFrontier is the largest frontier size observed at any expansion.
	MaxFrontier int

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}
