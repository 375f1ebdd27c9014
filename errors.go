package npuzzle

import "errors"

// ErrNoHeuristic is returned by NewSolver when no pattern database was
// supplied and AllowManhattanFallback is false: spec.md §7 requires the
// fallback to Manhattan distance be an explicit opt-in, never silent.
var ErrNoHeuristic = errors.New("npuzzle: no heuristic available (pass a pattern database or set AllowManhattanFallback)")
