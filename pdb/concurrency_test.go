package pdb_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/npuzzle/board"
	"github.com/katalvlaran/npuzzle/pdb"
)

// TestConcurrentH verifies a built Tables may be queried from many
// goroutines without synchronization: H only reads the table slices,
// so readers never race.
func TestConcurrentH(t *testing.T) {
	tables, err := pdb.BuildTables(3, [][]int{{1, 2, 3, 4}, {5, 6, 7, 8}}, 2)
	require.NoError(t, err)

	start, err := board.New(3, []int{1, 2, 3, 4, 0, 5, 6, 7, 8})
	require.NoError(t, err)
	want := tables.H(start)

	const readers = 50
	var wg sync.WaitGroup
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			require.Equal(t, want, tables.H(start))
		}()
	}
	wg.Wait()
}
