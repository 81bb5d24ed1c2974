// Package board provides construction, validation, comparison, and keying
// helpers for flat n-puzzle boards.
//
// A Board is a plain []int and therefore not usable as a map key directly;
// Key returns a compact byte-string encoding with value semantics, which the
// search engine uses for its bookkeeping maps.
package board

import "fmt"

// Goal returns the canonical goal board for side length n:
// tiles 1..n²-1 in row-major order with the blank in the bottom-right cell.
// Complexity: O(n²).
func Goal(n int) Board {
	k := n * n
	g := make(Board, k)
	for i := 0; i < k-1; i++ {
		g[i] = i + 1
	}
	g[k-1] = Blank

	return g
}

// Validate checks that n lies in [MinSize, MaxSize] and that b is a
// permutation of 0..n²-1 of length n². Returns ErrBadSize, ErrBadLength,
// or ErrBadTiles accordingly; nil on success.
// Complexity: O(n²).
func Validate(n int, b Board) error {
	if n < MinSize || n > MaxSize {
		return fmt.Errorf("%w: got n=%d", ErrBadSize, n)
	}
	k := n * n
	if len(b) != k {
		return fmt.Errorf("%w: n=%d wants %d cells, got %d", ErrBadLength, n, k, len(b))
	}
	// Mark each value once; any out-of-range or repeated value fails.
	seen := make([]bool, k)
	for _, v := range b {
		if v < 0 || v >= k || seen[v] {
			return fmt.Errorf("%w: offending value %d", ErrBadTiles, v)
		}
		seen[v] = true
	}

	return nil
}

// BlankIndex returns the flat index of the blank cell, or -1 if absent.
// A validated board always contains exactly one blank.
// Complexity: O(n²).
func BlankIndex(b Board) int {
	for i, v := range b {
		if v == Blank {
			return i
		}
	}

	return -1
}

// Equal reports whether two boards hold identical cell values.
func Equal(a, b Board) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of b.
func (b Board) Clone() Board {
	c := make(Board, len(b))
	copy(c, b)

	return c
}

// Key encodes b as a byte string with one byte per cell, suitable as a map
// key with structural (value) equality. Cell values never exceed
// MaxSize²-1 = 63, so each fits a single byte.
func (b Board) Key() string {
	buf := make([]byte, len(b))
	for i, v := range b {
		buf[i] = byte(v)
	}

	return string(buf)
}

// IsGoal reports whether b is the canonical goal arrangement for side n.
// Complexity: O(n²), no allocation.
func IsGoal(n int, b Board) bool {
	k := n * n
	if len(b) != k {
		return false
	}
	for i := 0; i < k-1; i++ {
		if b[i] != i+1 {
			return false
		}
	}

	return b[k-1] == Blank
}
