// Package astar drives a best-first graph search over n-puzzle states,
// returning a provably minimum-length move sequence to the goal.
//
// What:
//
//   - Neighbors enumerates the ≤ 4 boards reachable by one blank slide,
//     each tagged with the direction the blank travels (U, D, L, R).
//   - Search runs A* guided by heuristic.Estimate, or Uniform Cost Search
//     when the heuristic is disabled via WithoutHeuristic.
//
// How:
//
//	The frontier is a container/heap min-heap of (f=g+h, h, g, board)
//	entries ordered by f, then h, then g, ascending. That exact tie-break
//	makes expansion order — and therefore the Expanded / MaxFrontier
//	statistics — deterministic. Instead of decrease-key, a cheaper path to
//	a known board pushes a duplicate entry; stale duplicates are recognized
//	on pop (recorded best g no longer matches) and discarded. Parent links
//	are kept per board and walked backwards at the goal to rebuild the path.
//
// Optimality:
//
//	The heuristic is admissible and consistent, every move costs 1, and
//	stale entries are never expanded, so the first goal pop carries the true
//	minimum distance.
//
// Preconditions:
//
//	Callers must gate on solvability.IsSolvable first. Searching an
//	unsolvable board exhausts the frontier after visiting its entire
//	reachable half of the state space and surfaces ErrFrontierExhausted —
//	a fatal invariant breach, not a normal "no solution" outcome.
//
// Complexity:
//
//   - Time:  O(B log B) pushes/pops for B boards reachable below the optimal
//     cost — exponential in solution depth, which is why the heuristic matters.
//   - Space: O(B) for the best-cost and parent tables plus frontier entries.
//
// Options:
//
//   - WithoutHeuristic(): degrade to Uniform Cost Search (h ≡ 0).
//   - WithOnExpand(fn):   synchronous callback on every accepted expansion.
//
// Errors:
//
//   - board.ErrBadSize / ErrBadLength / ErrBadTiles: malformed input.
//   - ErrFrontierExhausted: frontier emptied without reaching the goal.
//
// Each Search call owns its frontier and bookkeeping maps; independent
// puzzles may be solved concurrently with no synchronization.
package astar
