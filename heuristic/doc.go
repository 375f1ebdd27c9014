// Package heuristic implements the Manhattan-distance admissible heuristic
// for the sliding-tile puzzle (spec.md §4.2), usable standalone or as the
// fallback when no pattern database (package pdb) has been loaded.
//
// What:
//
//   - Manhattan(b) sums, over every non-blank tile, the taxicab distance
//     between its current cell and its goal cell.
//   - Delta(before, m, prevMD) updates a previously computed Manhattan
//     value in O(1) after a single move, instead of recomputing from
//     scratch.
//   - Heuristic is a stateless value implementing the same H(board.Board)
//     int method idastar.Heuristic expects, so a caller can pass either
//     Heuristic{} or a loaded *pdb.Tables without branching.
//
// Why:
//
//   - Admissible: each tile needs at least its Manhattan distance moves,
//     so MD never overestimates the optimum (spec.md §4.2).
//   - Cheap: O(N²) per board, O(1) per move, with no precomputation —
//     the heuristic IDA* falls back to when pdb data is unavailable and
//     the caller has explicitly allowed that fallback (spec.md §7:
//     "silent fallback is forbidden").
//
// Complexity:
//
//   - Manhattan: O(N²)
//   - Delta:     O(1)
//
// Functions:
//
//   - Manhattan(b board.Board) int
//   - Delta(before board.Board, m board.Move, prevMD int) int
//   - type Heuristic struct{}; (Heuristic) H(board.Board) int
package heuristic
