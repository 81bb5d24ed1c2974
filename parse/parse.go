package parse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/npuzzle/board"
)

// ErrUnparsable indicates the input matches none of the recognized layouts.
var ErrUnparsable = errors.New("parse: could not recognize the grid layout")

var numberPattern = regexp.MustCompile(`\d+`)

// ReadBoardFile opens path and delegates to ReadBoard.
func ReadBoardFile(path string) (int, board.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, fmt.Errorf("parse: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadBoard(f)
}

// ReadBoard reads a puzzle grid from r, auto-detecting its layout, and
// returns the side length together with the validated flat board.
func ReadBoard(r io.Reader) (int, board.Board, error) {
	lines, err := nonEmptyLines(r)
	if err != nil {
		return 0, nil, err
	}

	n := len(lines)
	if n < board.MinSize || n > board.MaxSize {
		return 0, nil, fmt.Errorf("%w: got %d rows", board.ErrBadSize, n)
	}

	// Layout 1: tab-delimited with empty cells standing in for the blank.
	if b, ok, err := parseTabs(n, lines); err != nil {
		return 0, nil, err
	} else if ok {
		return n, b, nil
	}

	// Extract every number with its character offset; offsets drive the
	// space-aligned blank inference below.
	rows := make([][]token, n)
	counts := make([]int, n)
	for i, ln := range lines {
		rows[i] = tokenize(ln)
		counts[i] = len(rows[i])
	}

	// Layout 2: every row complete → plain parse, blank written as 0.
	if allEqual(counts, n) {
		flat := make(board.Board, 0, n*n)
		for _, row := range rows {
			for _, tk := range row {
				flat = append(flat, tk.val)
			}
		}

		return n, flat, validate(n, flat)
	}

	// Layout 3: exactly one row short a number → the blank was omitted;
	// align against a complete anchor row to find its column.
	if b, ok, err := parseAligned(n, rows, counts); err != nil {
		return 0, nil, err
	} else if ok {
		return n, b, nil
	}

	return 0, nil, fmt.Errorf("%w: rows yield %v numbers for n=%d", ErrUnparsable, counts, n)
}

// token is a parsed number plus the character offset where it starts.
type token struct {
	val int
	pos int
}

// nonEmptyLines reads r and drops blank lines.
func nonEmptyLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parse: read input: %w", err)
	}

	return lines, nil
}

// tokenize extracts every decimal number in ln with its start offset.
func tokenize(ln string) []token {
	var toks []token
	for _, loc := range numberPattern.FindAllStringIndex(ln, -1) {
		v, _ := strconv.Atoi(ln[loc[0]:loc[1]])
		toks = append(toks, token{val: v, pos: loc[0]})
	}

	return toks
}

// parseTabs handles tab-delimited grids. Returns ok=false when the input is
// not consistently tab-shaped, letting the caller fall through to the
// space-aligned strategies.
func parseTabs(n int, lines []string) (board.Board, bool, error) {
	tabbed := false
	for _, ln := range lines {
		if strings.Contains(ln, "\t") {
			tabbed = true
			break
		}
	}
	if !tabbed {
		return nil, false, nil
	}

	flat := make(board.Board, 0, n*n)
	for _, ln := range lines {
		parts := strings.Split(ln, "\t")
		if len(parts) != n {
			// Tabs present but not n columns; let the fallback parsers try.
			return nil, false, nil
		}
		for _, cell := range parts {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				flat = append(flat, board.Blank)
				continue
			}
			v, err := strconv.Atoi(cell)
			if err != nil {
				return nil, false, fmt.Errorf("%w: cell %q", ErrUnparsable, cell)
			}
			flat = append(flat, v)
		}
	}

	return flat, true, validate(n, flat)
}

// parseAligned reconstructs the omitted blank in a space-aligned grid.
// Exactly one row must hold n-1 numbers and the rest n; a complete row
// serves as the column anchor, and a missing number within half a column
// step of an anchor position becomes the blank.
func parseAligned(n int, rows [][]token, counts []int) (board.Board, bool, error) {
	short := 0
	anchorIdx := -1
	for i, c := range counts {
		switch c {
		case n:
			if anchorIdx < 0 {
				anchorIdx = i
			}
		case n - 1:
			short++
		default:
			return nil, false, nil
		}
	}
	if short != 1 || anchorIdx < 0 {
		return nil, false, nil
	}

	anchors := make([]int, n)
	for i, tk := range rows[anchorIdx] {
		anchors[i] = tk.pos
	}

	// Alignment tolerance: half the narrowest column step, at least 1.
	minStep := 0
	for i := 1; i < n; i++ {
		step := anchors[i] - anchors[i-1]
		if minStep == 0 || step < minStep {
			minStep = step
		}
	}
	tol := minStep / 2
	if tol < 1 {
		tol = 1
	}

	flat := make(board.Board, 0, n*n)
	for _, row := range rows {
		filled, err := fillRow(n, row, anchors, tol)
		if err != nil {
			return nil, false, err
		}
		flat = append(flat, filled...)
	}

	return flat, true, validate(n, flat)
}

// fillRow maps a row's tokens onto the anchor columns, inserting the blank
// where no token lands near an anchor.
func fillRow(n int, row []token, anchors []int, tol int) ([]int, error) {
	if len(row) == n {
		out := make([]int, n)
		for i, tk := range row {
			out[i] = tk.val
		}

		return out, nil
	}

	out := make([]int, 0, n)
	j := 0
	for i := 0; i < n; i++ {
		if j >= len(row) {
			out = append(out, board.Blank)
			continue
		}
		if d := row[j].pos - anchors[i]; d >= -tol && d <= tol {
			out = append(out, row[j].val)
			j++
			continue
		}
		out = append(out, board.Blank)
	}
	if len(out) != n || j != len(row) {
		return nil, fmt.Errorf("%w: row does not align with the anchor columns", ErrUnparsable)
	}

	return out, nil
}

// validate wraps board.Validate with the parse package prefix.
func validate(n int, b board.Board) error {
	if err := board.Validate(n, b); err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	return nil
}

// allEqual reports whether every count equals want.
func allEqual(counts []int, want int) bool {
	for _, c := range counts {
		if c != want {
			return false
		}
	}

	return true
}
