package npuzzle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/npuzzle"
	"github.com/katalvlaran/npuzzle/board"
	"github.com/katalvlaran/npuzzle/idastar"
	"github.com/katalvlaran/npuzzle/pdb"
)

func TestNewSolver_NoTablesNoFallbackErrors(t *testing.T) {
	_, err := npuzzle.NewSolver(nil, false)
	require.ErrorIs(t, err, npuzzle.ErrNoHeuristic)
}

func TestNewSolver_ManhattanFallback(t *testing.T) {
	s, err := npuzzle.NewSolver(nil, true)
	require.NoError(t, err)

	g := board.Goal(3)
	start, err := g.Apply(board.Left)
	require.NoError(t, err)

	res, err := s.Solve(start)
	require.NoError(t, err)
	require.Len(t, res.Moves, 1)
}

func TestNewSolver_WithTables(t *testing.T) {
	tables, err := pdb.BuildTables(3, [][]int{{1, 2, 3, 4}, {5, 6, 7, 8}}, 1)
	require.NoError(t, err)

	s, err := npuzzle.NewSolver(tables, false)
	require.NoError(t, err)

	g := board.Goal(3)
	start, err := g.Apply(board.Left)
	require.NoError(t, err)

	res, err := s.Solve(start)
	require.NoError(t, err)
	require.Len(t, res.Moves, 1)
}

func TestSolver_Solve_UnsolvableFailsFast(t *testing.T) {
	s, err := npuzzle.NewSolver(nil, true)
	require.NoError(t, err)

	start, err := board.New(4, []int{2, 1, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 0})
	require.NoError(t, err)

	_, err = s.Solve(start)
	require.ErrorIs(t, err, idastar.ErrUnsolvable)
}

func TestSolver_Solve_PropagatesOptions(t *testing.T) {
	s, err := npuzzle.NewSolver(nil, true)
	require.NoError(t, err)

	start, err := board.New(4, []int{5, 1, 2, 4, 9, 6, 3, 8, 13, 10, 7, 12, 0, 14, 11, 15})
	require.NoError(t, err)

	_, err = s.Solve(start, idastar.WithNodeBudget(1))
	require.ErrorIs(t, err, idastar.ErrNodeBudgetExceeded)
}
