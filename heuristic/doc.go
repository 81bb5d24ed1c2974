// Package heuristic computes admissible, consistent lower bounds on the
// number of moves an n-puzzle board needs to reach the goal.
//
// What:
//
//   - GoalPositions is an immutable tile→(row, col) lookup table for the
//     canonical goal, built once per size with BuildGoalPositions.
//   - Manhattan sums each tile's grid distance to its goal cell.
//   - LinearConflict adds 2 for every pair of goal-aligned tiles that block
//     each other within their shared goal row or column.
//   - Estimate = Manhattan + LinearConflict.
//
// Why Linear Conflict stays admissible:
//
//	Two tiles already in their goal line but in reversed order cannot both
//	slide straight home — one must step out of the line and back, costing at
//	least 2 extra moves that Manhattan distance does not account for. The
//	correction never double-counts a tile's own displacement, so the sum
//	still never overestimates, and it remains consistent across single moves.
//
// Invariant: Estimate(goal) == 0, and every component is non-negative.
//
// Complexity:
//
//   - BuildGoalPositions: O(n²) time and memory.
//   - Manhattan:          O(n²) time, O(1) memory.
//   - LinearConflict:     O(n³) time worst case (n tiles per line, n lines,
//     pairwise scan), O(n) memory.
//
// Concurrency: a GoalPositions table is never mutated after construction and
// may be shared by any number of concurrent searches of the same n.
package heuristic
