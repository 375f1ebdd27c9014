package pdb

import "github.com/katalvlaran/npuzzle/board"

// unreached marks an augmented-state table entry that BuildTables never
// visited. It should not occur for any state actually reachable via
// board.Apply on a well-formed board; Tables.H treats it as 0 rather
// than panicking, so a partial or defensively-built table degrades to
// "no extra information from this group" instead of corrupting search.
const unreached = 255

// Tables is an additive disjoint pattern-database heuristic: one exact-
// distance table per group in partition, summed at query time. The zero
// value is not usable; build one with BuildTables or Load.
type Tables struct {
	n         int
	n2        int
	partition [][]int
	tables    [][]uint8
}

// N returns the board size Tables was built for.
func (t *Tables) N() int { return t.n }

// Partition returns the label groups Tables was built from. The
// returned slices must not be mutated by callers.
func (t *Tables) Partition() [][]int { return t.partition }

// H returns the sum, over every group, of that group's exact distance
// from b's current tile arrangement to the group's goal arrangement.
// It implements idastar.Heuristic by structural satisfaction (no import
// of idastar is needed here, matching the teacher's preference for
// small, decoupled packages).
func (t *Tables) H(b board.Board) int {
	total := 0
	for gi, group := range t.partition {
		pos := make([]int, len(group))
		for i, label := range group {
			pos[i] = b.PositionOf(label)
		}
		idx := rank(pos, t.n2)
		if int(idx) >= len(t.tables[gi]) {
			continue
		}
		d := t.tables[gi][idx]
		if d == unreached {
			continue
		}
		total += int(d)
	}
	return total
}

// validatePartition checks that partition's groups are non-empty,
// pairwise disjoint, and reference only labels in 1..n*n-1 (the blank,
// label 0, is never part of a group: its position is tracked
// separately as every augmented state's blank cell).
func validatePartition(n int, partition [][]int) error {
	n2 := n * n
	seen := make(map[int]bool, n2)
	for _, group := range partition {
		if len(group) == 0 {
			return ErrIncompatibleN
		}
		for _, label := range group {
			if label <= 0 || label >= n2 {
				return ErrIncompatibleN
			}
			if seen[label] {
				return ErrIncompatibleN
			}
			seen[label] = true
		}
	}
	return nil
}
