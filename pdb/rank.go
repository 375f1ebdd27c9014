package pdb

// rank and unrank implement a deterministic bijection between an
// ordered k-tuple of distinct cell indices (drawn from 0..n2-1) and a
// dense integer in [0, permCount(n2, k)), the standard "partial
// permutation" ranking used to address a k-tile pattern's state space
// without wasting entries on impossible (repeated-cell) tuples.
//
// The encoding processes positions left to right; at step i it counts
// how many not-yet-used cells are less than pos[i] and multiplies that
// count by the number of ways to arrange the remaining k-1-i positions
// over the remaining n2-1-i cells (falling factorial permCount).
// unrank reverses this by repeatedly dividing by that same factor.

// permCount returns the number of ways to arrange r items drawn in
// order, without repetition, from a pool of n: n!/(n-r)!. r is assumed
// to satisfy 0 <= r <= n.
func permCount(n, r int) uint64 {
	count := uint64(1)
	for i := 0; i < r; i++ {
		count *= uint64(n - i)
	}
	return count
}

// rank maps pos, a slice of k distinct cell indices in [0, n2), to its
// dense index in [0, permCount(n2, k)).
func rank(pos []int, n2 int) uint64 {
	k := len(pos)
	used := make([]bool, n2)
	var r uint64
	for i, p := range pos {
		less := 0
		for c := 0; c < p; c++ {
			if !used[c] {
				less++
			}
		}
		remaining := k - 1 - i
		r += uint64(less) * permCount(n2-1-i, remaining)
		used[p] = true
	}
	return r
}

// unrank is rank's inverse: given a dense index r, the tuple length k,
// and the cell-index domain size n2, it reconstructs the unique k-tuple
// of distinct cells that rank maps to r.
func unrank(r uint64, k, n2 int) []int {
	pos := make([]int, k)
	unused := make([]int, n2)
	for i := range unused {
		unused[i] = i
	}
	for i := 0; i < k; i++ {
		remaining := k - 1 - i
		block := permCount(n2-1-i, remaining)
		idx := r / block
		r -= idx * block
		pos[i] = unused[idx]
		unused = append(unused[:idx], unused[idx+1:]...)
	}
	return pos
}

// augmentedIndex combines a group's tile-position rank with the blank's
// cell into the single index BuildTables uses to address its per-group
// BFS distance array. The finished table (and Tables.H) is indexed by
// rank alone.
func augmentedIndex(pos []int, blank, n2 int) uint64 {
	return rank(pos, n2)*uint64(n2) + uint64(blank)
}
