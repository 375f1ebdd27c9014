// Package idastar implements iterative-deepening A* search over
// board.Board states (spec.md §4.5): repeated cost-bounded depth-first
// search, each iteration's bound raised to the smallest f = g+h that
// exceeded the previous bound, until a goal is found or the search space
// is exhausted.
//
// What:
//
//   - Heuristic: the interface any admissible heuristic satisfies —
//     package heuristic's Heuristic and package pdb's *Tables both
//     implement it, so Solve never branches on which one it was given.
//   - Solve runs the bounded DFS loop, returns the optimal move sequence.
//   - Options (functional, like the teacher's dijkstra.Option /
//     bfs.Option): cancellation, a node-expansion budget, path-set cycle
//     pruning, and heuristic-ascending child ordering.
//
// Why:
//
//   - IDA* has the memory profile of DFS (O(depth)) and, given an
//     admissible heuristic, the optimality of A* — the standard choice
//     for optimal sliding-tile search (spec.md §1).
//
// Complexity:
//
//   - Time: no closed form; bounded by branching factor^solution length,
//     cut sharply by the heuristic's tightness.
//   - Memory: O(solution length), plus O(solution length) for the
//     optional path-pruning set.
//
// Errors:
//
//   - ErrUnsolvable: the initial board fails the parity check, or no
//     bound increase occurred in a full DFS pass (the search space is
//     exhausted without reaching the goal).
//   - ErrCancelled: the caller's cancellation channel fired.
//   - ErrNodeBudgetExceeded: WithNodeBudget's cap was hit before a
//     solution or proof of unsolvability was reached.
//
// Functions:
//
//   - Solve(initial board.Board, h Heuristic, opts ...Option) (Result, error)
//   - WithCancel, WithNodeBudget, WithPathPruning, WithHeuristicOrdering
package idastar
