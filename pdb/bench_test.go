package pdb_test

import (
	"testing"

	"github.com/katalvlaran/npuzzle/board"
	"github.com/katalvlaran/npuzzle/pdb"
)

func BenchmarkBuildTables_FourTileGroup(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := pdb.BuildTables(3, [][]int{{1, 2, 3, 4}}, 0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTables_H(b *testing.B) {
	tables, err := pdb.BuildTables(3, [][]int{{1, 2, 3, 4}, {5, 6, 7, 8}}, 0)
	if err != nil {
		b.Fatal(err)
	}
	start, err := board.New(3, []int{1, 2, 3, 4, 0, 5, 6, 7, 8})
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tables.H(start)
	}
}
