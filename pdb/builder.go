package pdb

import (
	"runtime"
	"sync"

	"github.com/katalvlaran/npuzzle/internal/ringdeque"
)

// BuildTables constructs an additive disjoint pattern database for an
// n-side board from partition, a set of disjoint, non-empty label
// groups (each a slice of labels in 1..n*n-1). One group is built per
// goroutine, up to workers at a time — mirroring the teacher pack's
// worker-pool dispatch (a bounded goroutine count draining a job
// queue) rather than one goroutine per group unconditionally, so a
// large partition doesn't oversubscribe the machine. workers <= 0
// defaults to runtime.NumCPU().
func BuildTables(n int, partition [][]int, workers int) (*Tables, error) {
	if n < 2 || n > 5 {
		return nil, ErrIncompatibleN
	}
	if err := validatePartition(n, partition); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	n2 := n * n
	tables := make([][]uint8, len(partition))
	errs := make([]error, len(partition))

	jobs := make(chan int, len(partition))
	for gi := range partition {
		jobs <- gi
	}
	close(jobs)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for gi := range jobs {
				t, err := buildGroupTable(n, n2, partition[gi])
				tables[gi] = t
				errs[gi] = err
			}
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	cp := make([][]int, len(partition))
	for i, g := range partition {
		gc := make([]int, len(g))
		copy(gc, g)
		cp[i] = gc
	}

	return &Tables{n: n, n2: n2, partition: cp, tables: tables}, nil
}

// buildGroupTable runs a single group's 0-1 BFS backward from its goal
// configuration, over the augmented state space (group tile positions
// plus the blank's cell), and collapses the result to a table indexed
// only by the tile-position rank: entry i is the minimum, over every
// blank cell compatible with position-rank i, of the BFS distance —
// the standard additive-PDB construction (a don't-care tile's identity
// never matters, only where the group's own tiles are).
func buildGroupTable(n, n2 int, group []int) ([]uint8, error) {
	k := len(group)
	patternCount := permCount(n2, k)
	if patternCount == 0 || n2 == 0 {
		return nil, ErrBuildFailure
	}

	augmentedSize := patternCount * uint64(n2)
	dist := make([]uint8, augmentedSize)
	for i := range dist {
		dist[i] = unreached
	}

	goalPos := make([]int, k)
	for i, label := range group {
		goalPos[i] = label - 1
	}
	goalBlank := n2 - 1
	start := augmentedIndex(goalPos, goalBlank, n2)
	dist[start] = 0

	dq := ringdeque.New[uint64](4096)
	dq.PushFront(start)

	for {
		cur, ok := dq.PopFront()
		if !ok {
			break
		}
		d := dist[cur]
		patternRank := cur / uint64(n2)
		blank := int(cur % uint64(n2))
		pos := unrank(patternRank, k, n2)

		row, col := blank/n, blank%n
		for dir := 0; dir < 4; dir++ {
			dr, dc := neighborDelta(dir)
			nr, nc := row+dr, col+dc
			if nr < 0 || nr >= n || nc < 0 || nc >= n {
				continue
			}
			target := nr*n + nc

			groupIdx := -1
			for i, p := range pos {
				if p == target {
					groupIdx = i
					break
				}
			}

			var nextIdx uint64
			var cost uint8
			if groupIdx >= 0 {
				nextPos := make([]int, k)
				copy(nextPos, pos)
				nextPos[groupIdx] = blank
				nextIdx = augmentedIndex(nextPos, target, n2)
				cost = 1
			} else {
				nextIdx = augmentedIndex(pos, target, n2)
				cost = 0
			}

			nd := d + cost
			if nd < dist[nextIdx] {
				dist[nextIdx] = nd
				if cost == 0 {
					dq.PushFront(nextIdx)
				} else {
					dq.PushBack(nextIdx)
				}
			}
		}
	}

	table := make([]uint8, patternCount)
	for i := range table {
		table[i] = unreached
	}
	for r := uint64(0); r < patternCount; r++ {
		best := uint8(unreached)
		base := r * uint64(n2)
		for b := 0; b < n2; b++ {
			if dist[base+uint64(b)] < best {
				best = dist[base+uint64(b)]
			}
		}
		table[r] = best
	}
	return table, nil
}

func neighborDelta(dir int) (int, int) {
	switch dir {
	case 0:
		return -1, 0 // up
	case 1:
		return 1, 0 // down
	case 2:
		return 0, -1 // left
	default:
		return 0, 1 // right
	}
}
