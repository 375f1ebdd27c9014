package board_test

import (
	"fmt"

	"github.com/katalvlaran/npuzzle/board"
)

func ExampleBoard_Apply() {
	b, err := board.New(4, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 0, 15})
	if err != nil {
		panic(err)
	}
	next, err := b.Apply(board.Right)
	if err != nil {
		panic(err)
	}
	fmt.Println(next)
	fmt.Println(next.IsGoal())
	// Output:
	// 1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 0
	// true
}
