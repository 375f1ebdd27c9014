package heuristic

import "github.com/katalvlaran/npuzzle/board"

// Manhattan computes the sum, over every non-blank tile, of the taxicab
// distance between the tile's current cell and its goal cell.
func Manhattan(b board.Board) int {
	n := b.N()
	n2 := n * n
	total := 0
	for cell := 0; cell < n2; cell++ {
		label := b.Label(cell)
		if label == 0 {
			continue
		}
		total += distanceToGoal(label, cell, n)
	}
	return total
}

// Delta returns the Manhattan value of the board reached by applying m to
// before, computed in O(1) from prevMD (the Manhattan value of before)
// rather than by recomputing the full sum. Only the tile that the blank
// swaps with changes distance; every other tile's contribution is
// unaffected by the move.
func Delta(before board.Board, m board.Move, prevMD int) int {
	n := before.N()
	blankCell := before.Blank()
	row, col := blankCell/n, blankCell%n

	dr, dc := 0, 0
	switch m {
	case board.Up:
		dr, dc = -1, 0
	case board.Down:
		dr, dc = 1, 0
	case board.Left:
		dr, dc = 0, -1
	case board.Right:
		dr, dc = 0, 1
	default:
		return prevMD
	}
	targetCell := (row+dr)*n + (col + dc)
	label := before.Label(targetCell)
	if label == 0 {
		return prevMD
	}

	oldDist := distanceToGoal(label, targetCell, n)
	newDist := distanceToGoal(label, blankCell, n)
	return prevMD + (newDist - oldDist)
}

// distanceToGoal returns the Manhattan distance between cell and the goal
// cell of label on an n-side board.
func distanceToGoal(label, cell, n int) int {
	goalCell := label - 1
	r1, c1 := cell/n, cell%n
	r2, c2 := goalCell/n, goalCell%n
	return absInt(r1-r2) + absInt(c1-c2)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Heuristic is a stateless value satisfying the H(board.Board) int method
// idastar.Heuristic expects, backed by Manhattan distance.
type Heuristic struct{}

// H returns Manhattan(b).
func (Heuristic) H(b board.Board) int { return Manhattan(b) }
