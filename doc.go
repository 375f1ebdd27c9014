// Package npuzzle wires board, heuristic, pdb, and idastar behind a
// single Solver facade: construct with NewSolver, optionally passing a
// loaded pattern database, and call Solve.
//
// What:
//
//   - Solver.Solve finds an optimal move sequence, preferring a loaded
//     pattern database's heuristic when present and falling back to
//     Manhattan distance only when AllowManhattanFallback was set
//     explicitly at construction (spec.md §7's "silent fallback is
//     forbidden").
//
// Errors:
//
//   - ErrNoHeuristic: NewSolver was given no pattern database and
//     AllowManhattanFallback was left false.
package npuzzle
