package npuzzle

import (
	"github.com/katalvlaran/npuzzle/board"
	"github.com/katalvlaran/npuzzle/heuristic"
	"github.com/katalvlaran/npuzzle/idastar"
	"github.com/katalvlaran/npuzzle/pdb"
)

// Solver is the facade over board, heuristic, pdb, and idastar: it
// picks the strongest available admissible heuristic once, at
// construction, and reuses it across every Solve call.
type Solver struct {
	h idastar.Heuristic
}

// NewSolver constructs a Solver. When tables is non-nil, its pattern
// database is used as the heuristic. When tables is nil, NewSolver
// falls back to Manhattan distance only if allowManhattanFallback is
// true; otherwise it returns ErrNoHeuristic, since a caller who
// expected pattern-database-strength pruning should learn that
// immediately rather than get a silently weaker search.
func NewSolver(tables *pdb.Tables, allowManhattanFallback bool) (*Solver, error) {
	if tables != nil {
		return &Solver{h: tables}, nil
	}
	if !allowManhattanFallback {
		return nil, ErrNoHeuristic
	}
	return &Solver{h: heuristic.Heuristic{}}, nil
}

// Solve finds an optimal move sequence from b to its goal. It returns
// idastar.ErrUnsolvable immediately (without running IDA*) when
// board.IsSolvable reports b cannot reach the goal.
func (s *Solver) Solve(b board.Board, opts ...idastar.Option) (idastar.Result, error) {
	if !b.IsSolvable() {
		return idastar.Result{}, idastar.ErrUnsolvable
	}
	return idastar.Solve(b, s.h, opts...)
}
