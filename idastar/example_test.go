package idastar_test

import (
	"fmt"

	"github.com/katalvlaran/npuzzle/board"
	"github.com/katalvlaran/npuzzle/heuristic"
	"github.com/katalvlaran/npuzzle/idastar"
)

func ExampleSolve() {
	g := board.Goal(3)
	start, err := g.Apply(board.Left)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := idastar.Solve(start, heuristic.Heuristic{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Moves)
	// Output:
	// [R]
}
