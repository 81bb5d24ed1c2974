// Package solvability implements the inversion-parity test that decides,
// without any search, whether an n-puzzle configuration can reach the goal.
//
// What:
//
//   - InversionCount counts out-of-order tile pairs in the flattened board,
//     blank excluded.
//   - IsSolvable applies the classic parity rule to that count.
//
// Why:
//
//   - Exactly half of all permutations are unreachable from the goal; running
//     the search engine on one of them would explore its entire half of the
//     state space before failing. Gating on IsSolvable first is a required
//     precondition of astar.Search.
//
// Rule:
//
//   - Odd n:  solvable iff the inversion count is even.
//   - Even n: let R = the blank's row counted from the bottom, starting at 1.
//     Solvable iff (R even AND inversions odd) OR (R odd AND inversions even).
//
// Complexity:
//
//   - InversionCount: O(k²) for k = n² cells, Memory: O(k).
//   - IsSolvable:     O(k²), Memory: O(k).
//
// Errors:
//
//   - board.ErrBadSize / board.ErrBadLength / board.ErrBadTiles on malformed input.
//
// Both functions are pure: no state is kept between calls.
package solvability
