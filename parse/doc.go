// Package parse reads n-puzzle boards from text files, auto-detecting the
// layout the file uses.
//
// Three layouts are recognized, tried in order:
//
//  1. Tab-delimited: exactly n tab-separated cells per line, where an empty
//     cell marks the blank.
//  2. Plain or space-aligned with an explicit 0 for the blank: every line
//     yields n numbers.
//  3. Space-aligned fixed columns with the blank omitted: exactly one line
//     is short one number; the blank's column is inferred by aligning each
//     number's character position against the columns of a complete line.
//
// The side length n is the count of non-empty lines and must lie in
// [board.MinSize, board.MaxSize]. Whatever the layout, the parsed cells must
// form a permutation of 0..n²-1.
//
// Errors:
//
//   - board.ErrBadSize: line count outside the supported range.
//   - ErrUnparsable: no layout matches, or column alignment is inconsistent.
//   - board.ErrBadTiles: parsed numbers are not the expected permutation.
package parse
