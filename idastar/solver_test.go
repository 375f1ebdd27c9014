package idastar_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/npuzzle/board"
	"github.com/katalvlaran/npuzzle/heuristic"
	"github.com/katalvlaran/npuzzle/idastar"
)

func TestSolve_AlreadyAtGoal(t *testing.T) {
	g := board.Goal(3)
	res, err := idastar.Solve(g, heuristic.Heuristic{})
	require.NoError(t, err)
	require.Empty(t, res.Moves)
	require.Equal(t, 0, res.Bound)
}

func TestSolve_OneMoveFromGoal(t *testing.T) {
	g := board.Goal(3)
	start, err := g.Apply(board.Left)
	require.NoError(t, err)

	res, err := idastar.Solve(start, heuristic.Heuristic{})
	require.NoError(t, err)
	require.Len(t, res.Moves, 1)

	cur := start
	for _, m := range res.Moves {
		cur, err = cur.Apply(m)
		require.NoError(t, err)
	}
	require.True(t, cur.IsGoal())
}

func TestSolve_MultiMoveFindsOptimalLength(t *testing.T) {
	// Constructed by a known sequence of moves from the goal, so the
	// optimum is bounded above by the sequence's own length.
	g := board.Goal(3)
	scramble := []board.Move{board.Left, board.Up, board.Right, board.Down, board.Left}
	cur := g
	var err error
	for _, m := range scramble {
		cur, err = cur.Apply(m)
		require.NoError(t, err)
	}

	res, err := idastar.Solve(cur, heuristic.Heuristic{})
	require.NoError(t, err)
	require.LessOrEqual(t, len(res.Moves), len(scramble))

	replay := cur
	for _, m := range res.Moves {
		replay, err = replay.Apply(m)
		require.NoError(t, err)
	}
	require.True(t, replay.IsGoal())
}

func TestSolve_UnsolvableBoard(t *testing.T) {
	// A single adjacent-tile swap on the goal flips parity and is
	// unsolvable for n=4 (spec.md's odd-permutation-on-even-board case).
	start, err := board.New(4, []int{2, 1, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 0})
	require.NoError(t, err)
	require.False(t, start.IsSolvable())

	_, err = idastar.Solve(start, heuristic.Heuristic{})
	require.ErrorIs(t, err, idastar.ErrUnsolvable)
}

func TestSolve_NodeBudgetExceeded(t *testing.T) {
	start, err := board.New(4, []int{5, 1, 2, 4, 9, 6, 3, 8, 13, 10, 7, 12, 0, 14, 11, 15})
	require.NoError(t, err)

	_, err = idastar.Solve(start, heuristic.Heuristic{}, idastar.WithNodeBudget(1))
	require.ErrorIs(t, err, idastar.ErrNodeBudgetExceeded)
}

func TestSolve_Cancelled(t *testing.T) {
	start, err := board.New(4, []int{5, 1, 2, 4, 9, 6, 3, 8, 13, 10, 7, 12, 0, 14, 11, 15})
	require.NoError(t, err)

	ch := make(chan struct{})
	close(ch)
	_, err = idastar.Solve(start, heuristic.Heuristic{}, idastar.WithCancel(ch))
	require.ErrorIs(t, err, idastar.ErrCancelled)
}

func TestSolve_InvalidNodeBudgetOption(t *testing.T) {
	g := board.Goal(3)
	_, err := idastar.Solve(g, heuristic.Heuristic{}, idastar.WithNodeBudget(0))
	require.Error(t, err)
}

func TestSolve_HeuristicOrderingFindsSameOptimum(t *testing.T) {
	g := board.Goal(3)
	scramble := []board.Move{board.Left, board.Up, board.Right, board.Down, board.Left, board.Up}
	cur := g
	var err error
	for _, m := range scramble {
		cur, err = cur.Apply(m)
		require.NoError(t, err)
	}

	plain, err := idastar.Solve(cur, heuristic.Heuristic{})
	require.NoError(t, err)
	ordered, err := idastar.Solve(cur, heuristic.Heuristic{}, idastar.WithHeuristicOrdering(true))
	require.NoError(t, err)
	require.Equal(t, plain.Bound, ordered.Bound)
}

func TestSolve_PathPruningDisabledStillFindsOptimum(t *testing.T) {
	g := board.Goal(3)
	start, err := g.Apply(board.Left)
	require.NoError(t, err)

	res, err := idastar.Solve(start, heuristic.Heuristic{}, idastar.WithPathPruning(false))
	require.NoError(t, err)
	require.Len(t, res.Moves, 1)
}
