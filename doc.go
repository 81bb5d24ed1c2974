// Package npuzzle is an optimal solver toolkit for the classic sliding-tile
// n-puzzle — from solvability parity checks to an A* engine with an
// admissible Manhattan + Linear Conflict heuristic.
//
// 🚀 What is npuzzle?
//
//	A compact, pure-Go library that brings together:
//		• Board primitives: immutable flat boards, moves, goal construction
//		• Solvability:      O(k²) inversion-parity test — reject dead puzzles before searching
//		• Heuristics:       Manhattan distance + Linear Conflict (admissible & consistent)
//		• Search:           A* with lazy decrease-key, degrading to Uniform Cost Search
//		• Parsing:          tab-delimited, space-aligned and plain-text puzzle files
//
// ✨ Why choose npuzzle?
//
//   - Optimal by construction – admissible heuristic + correct stale-entry handling
//   - Deterministic – frontier tie-breaking on (f, h, g) reproduces expansion counts
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – expansion hooks for custom statistics and tracing
//
// Under the hood, everything is organized into focused subpackages:
//
//	board/       — Board, Move, Goal, validation & pretty-printing
//	solvability/ — inversion counting and the parity solvability rule
//	heuristic/   — goal-position tables, Manhattan, Linear Conflict
//	astar/       — neighbor generation and the A*/UCS search engine
//	parse/       — puzzle-file reading with layout auto-detection
//
// Quick ASCII example (3×3, one move from solved):
//
//	1 2 3
//	4 5 6      blank slides Right → solved in 1 move
//	7 _ 8
//
// Dive into each package's doc.go for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/npuzzle
package npuzzle
