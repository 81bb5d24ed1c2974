package heuristic_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/npuzzle/board"
	"github.com/katalvlaran/npuzzle/heuristic"
)

// shuffled returns a random permutation board of side n (not necessarily solvable;
// the heuristic does not care).
func shuffled(n int, rng *rand.Rand) board.Board {
	b := board.Goal(n)
	rng.Shuffle(len(b), func(i, j int) { b[i], b[j] = b[j], b[i] })
	return b
}

// BenchmarkManhattan_4x4 measures the plain distance sum on random 15-puzzle boards.
func BenchmarkManhattan_4x4(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	pos := heuristic.BuildGoalPositions(4)
	brd := shuffled(4, rng)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = heuristic.Manhattan(4, brd, pos)
	}
}

// BenchmarkEstimate_4x4 measures the combined Manhattan + Linear Conflict bound.
func BenchmarkEstimate_4x4(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	pos := heuristic.BuildGoalPositions(4)
	brd := shuffled(4, rng)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = heuristic.Estimate(4, brd, pos)
	}
}

// BenchmarkEstimate_8x8 measures the bound at the largest supported size.
func BenchmarkEstimate_8x8(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	pos := heuristic.BuildGoalPositions(8)
	brd := shuffled(8, rng)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = heuristic.Estimate(8, brd, pos)
	}
}
