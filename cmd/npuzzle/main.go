// Command npuzzle solves a sliding-tile puzzle file optimally with A*
// (Manhattan + Linear Conflict) and prints the minimum move sequence.
//
// Usage:
//
//	npuzzle [-show] [-evaluation] puzzle.txt
//
// Flags:
//
//	-show        print every board along the solution path
//	-evaluation  also run Uniform Cost Search and compare statistics
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/npuzzle/astar"
	"github.com/katalvlaran/npuzzle/board"
	"github.com/katalvlaran/npuzzle/parse"
	"github.com/katalvlaran/npuzzle/solvability"
)

func main() {
	show := flag.Bool("show", false, "print boards along the solution path")
	evaluation := flag.Bool("evaluation", false, "compare UCS (h=0) with A*")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: npuzzle [-show] [-evaluation] <puzzle file>")
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *show, *evaluation); err != nil {
		fmt.Fprintln(os.Stderr, "npuzzle:", err)
		os.Exit(1)
	}
}

func run(path string, show, evaluation bool) error {
	n, start, err := parse.ReadBoardFile(path)
	if err != nil {
		return err
	}

	fmt.Printf("n = %d\nStart:\n%s\n\n", n, board.Format(n, start))

	ok, err := solvability.IsSolvable(n, start)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("This puzzle configuration is NOT solvable.")
		return nil
	}

	if evaluation {
		return runEvaluation(n, start, show)
	}

	res, err := astar.Search(n, start)
	if err != nil {
		return err
	}
	printSolution(n, res, show)

	return nil
}

// runEvaluation solves the same board twice — UCS then A* — and reports the
// statistics side by side before printing the A* solution.
func runEvaluation(n int, start board.Board, show bool) error {
	fmt.Println("Running Uniform Cost Search (h = 0)...")
	ucs, err := astar.Search(n, start, astar.WithoutHeuristic())
	if err != nil {
		return err
	}

	fmt.Println("Running A* with heuristic...")
	withH, err := astar.Search(n, start)
	if err != nil {
		return err
	}

	fmt.Println("\n=== Evaluation Results ===")
	fmt.Println("UCS (no heuristic):")
	printStats(ucs)
	fmt.Println("\nA* with heuristic:")
	printStats(withH)

	fmt.Println("\n=== Solution (A* with heuristic) ===")
	printSolution(n, withH, show)

	return nil
}

func printStats(res *astar.Result) {
	fmt.Printf("  Expanded states: %d\n", res.Expanded)
	fmt.Printf("  Max frontier size: %d\n", res.MaxFrontier)
	fmt.Printf("  Runtime: %.3f seconds\n", res.Elapsed.Seconds())
}

func printSolution(n int, res *astar.Result, show bool) {
	fmt.Printf("Minimum moves: %d\n", res.Moves)
	fmt.Print("Move sequence: ")
	for _, mv := range res.Path {
		fmt.Print(string(mv))
	}
	fmt.Println()

	if !show {
		return
	}
	for i, b := range res.Boards {
		fmt.Printf("\nStep %d:\n%s\n", i, board.Format(n, b))
	}
}
