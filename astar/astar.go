// Package astar implements the A* / Uniform Cost search engine for the
// n-puzzle. See doc.go for the full contract.
package astar

import (
	"container/heap"
	"time"

	"github.com/katalvlaran/npuzzle/board"
	"github.com/katalvlaran/npuzzle/heuristic"
)

// parentLink records how a board was first reached on its cheapest known path.
type parentLink struct {
	prev board.Board // nil for the start board
	mv   board.Move  // "" for the start board
}

// Search finds a minimum-length solution for start on an n×n grid.
//
// With default options it runs A* on heuristic.Estimate; WithoutHeuristic()
// degrades it to Uniform Cost Search (h ≡ 0) with identical optimal results
// and strictly more expansions.
//
// Preconditions and validation (in order):
//  1. (n, start) must validate (board.ErrBadSize / ErrBadLength / ErrBadTiles).
//  2. Callers must have gated on solvability.IsSolvable; Search does not
//     repeat that check. On an unsolvable board the engine visits the whole
//     reachable component and returns ErrFrontierExhausted.
//
// The returned Result carries the optimal move count, the move labels and
// boards along the path, and the run statistics described in types.go.
func Search(n int, start board.Board, opts ...Option) (*Result, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate input before touching any search state.
	if err := board.Validate(n, start); err != nil {
		return nil, err
	}

	// 3) Already solved: short-circuit with a zero-move result and zero stats.
	if board.IsGoal(n, start) {
		return &Result{
			Moves:  0,
			Path:   []board.Move{},
			Boards: []board.Board{start},
		}, nil
	}

	// 4) Precompute the goal-position table once for this run.
	pos := heuristic.BuildGoalPositions(n)

	// 5) Seed bookkeeping: best-known cost and parent link for the start.
	startKey := start.Key()
	r := &runner{
		n:       n,
		opts:    cfg,
		pos:     pos,
		gBest:   map[string]int{startKey: 0},
		parents: map[string]parentLink{startKey: {}},
	}

	// 6) Push the start entry (f = h, g = 0) and run the main loop.
	h0 := r.estimate(start)
	heap.Init(&r.pq)
	heap.Push(&r.pq, &entry{f: h0, h: h0, g: 0, b: start})

	return r.run(time.Now())
}

// runner holds the mutable state of a single Search execution. Every call
// owns its own runner, so independent searches need no synchronization.
type runner struct {
	n    int
	opts Options
	pos  heuristic.GoalPositions

	pq      frontier              // min-heap ordered by (f, h, g)
	gBest   map[string]int        // board key → lowest discovered path cost
	parents map[string]parentLink // board key → cheapest-path predecessor

	expanded    int
	maxFrontier int
}

// estimate returns the heuristic value for b, or 0 under Uniform Cost Search.
func (r *runner) estimate(b board.Board) int {
	if !r.opts.UseHeuristic {
		return 0
	}

	return heuristic.Estimate(r.n, b, r.pos)
}

// run executes the pop/expand loop until the goal is popped or the frontier
// empties.
func (r *runner) run(startTime time.Time) (*Result, error) {
	for r.pq.Len() > 0 {
		cur := heap.Pop(&r.pq).(*entry)
		key := cur.b.Key()

		// Stale duplicate: a cheaper path to this board was pushed after
		// this entry. Required for correct statistics, not just speed.
		if cur.g != r.gBest[key] {
			continue
		}

		r.expanded++
		if size := r.pq.Len(); size > r.maxFrontier {
			r.maxFrontier = size
		}
		if r.opts.OnExpand != nil {
			r.opts.OnExpand(cur.b, cur.g)
		}

		if board.IsGoal(r.n, cur.b) {
			return r.finish(cur, time.Since(startTime)), nil
		}

		r.relax(cur)
	}

	// Reaching here means the reachable component held no goal — only
	// possible when the solvability precondition was violated.
	return nil, ErrFrontierExhausted
}

// relax scores every successor of cur and pushes those that improve on the
// best known cost for their board.
func (r *runner) relax(cur *entry) {
	var (
		key string
		ng  int
		nh  int
	)
	for _, step := range Neighbors(r.n, cur.b) {
		ng = cur.g + 1
		key = step.Board.Key()

		if old, ok := r.gBest[key]; ok && ng >= old {
			continue
		}

		r.gBest[key] = ng
		r.parents[key] = parentLink{prev: cur.b, mv: step.Move}

		nh = r.estimate(step.Board)
		heap.Push(&r.pq, &entry{f: ng + nh, h: nh, g: ng, b: step.Board})
	}
}

// finish rebuilds the start-to-goal path from parent links and assembles the
// final Result.
func (r *runner) finish(goal *entry, elapsed time.Duration) *Result {
	moves := make([]board.Move, 0, goal.g)
	boards := make([]board.Board, 0, goal.g+1)

	// Walk the parent chain goal → start, then reverse both sequences.
	node := goal.b
	for node != nil {
		boards = append(boards, node)
		link := r.parents[node.Key()]
		if link.mv != "" {
			moves = append(moves, link.mv)
		}
		node = link.prev
	}
	reverse(moves)
	reverse(boards)

	return &Result{
		Moves:       goal.g,
		Path:        moves,
		Boards:      boards,
		Expanded:    r.expanded,
		MaxFrontier: r.maxFrontier,
		Elapsed:     elapsed,
	}
}

// reverse flips a slice in place.
func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
