package board

import (
	"fmt"
	"strconv"
	"strings"
)

// New constructs a Board of side n from labels, a length-n*n sequence in
// row-major order where 0 denotes the blank. It fails with
// ErrInvalidBoard if labels is not a permutation of 0..n*n-1, or
// ErrSizeOutOfRange if n is outside [2,5].
func New(n int, labels []int) (Board, error) {
	if n < 2 || n > maxN {
		return Board{}, ErrSizeOutOfRange
	}
	n2 := n * n
	if len(labels) != n2 {
		return Board{}, ErrInvalidBoard
	}

	var b Board
	b.n = n
	var seen [maxCells]bool
	blank := -1
	for i, v := range labels {
		if v < 0 || v >= n2 || seen[v] {
			return Board{}, ErrInvalidBoard
		}
		seen[v] = true
		b.cells[i] = uint8(v)
		if v == 0 {
			blank = i
		}
	}
	if blank < 0 {
		return Board{}, ErrInvalidBoard
	}
	b.blank = blank
	return b, nil
}

// Goal returns the canonical solved board of side n: label k at cell k-1
// for k in 1..n*n-1, and the blank (0) at the last cell.
func Goal(n int) Board {
	n2 := n * n
	labels := make([]int, n2)
	for i := 0; i < n2-1; i++ {
		labels[i] = i + 1
	}
	labels[n2-1] = 0
	g, err := New(n, labels)
	if err != nil {
		// The labels built above are always a permutation, so New can
		// only fail here with ErrSizeOutOfRange (n outside [2,5]).
		panic(fmt.Sprintf("board: Goal(%d): %v", n, err))
	}
	return g
}

// N returns the board's side length.
func (b Board) N() int { return b.n }

// Label returns the tile label occupying cell (row-major index).
func (b Board) Label(cell int) int { return int(b.cells[cell]) }

// Blank returns the blank's current cell index.
func (b Board) Blank() int { return b.blank }

// PositionOf returns the cell index currently holding label, or -1 if
// label is not in 0..N()²-1.
func (b Board) PositionOf(label int) int {
	n2 := b.n * b.n
	if label < 0 || label >= n2 {
		return -1
	}
	for i := 0; i < n2; i++ {
		if int(b.cells[i]) == label {
			return i
		}
	}
	return -1
}

// LegalMoves returns the moves legal from the blank's current cell, in
// the fixed order Up, Down, Left, Right, excluding the inverse of prev
// when prev is not NoMove (spec.md §4.1's basic anti-backtracking
// optimisation).
func (b Board) LegalMoves(prev Move) []Move {
	row, col := b.blank/b.n, b.blank%b.n
	exclude := prev.Opposite()
	moves := make([]Move, 0, 4)
	for _, m := range allMoves {
		if m == exclude {
			continue
		}
		d := deltas[m]
		nr, nc := row+d[0], col+d[1]
		if nr < 0 || nr >= b.n || nc < 0 || nc >= b.n {
			continue
		}
		moves = append(moves, m)
	}
	return moves
}

// Apply returns the board reached by sliding the blank in direction m,
// swapping it with the adjacent tile. It returns ErrIllegalMove if m is
// not legal from the current blank position (ignoring any prev-move
// exclusion, which is only a search optimisation, not a legality rule).
func (b Board) Apply(m Move) (Board, error) {
	row, col := b.blank/b.n, b.blank%b.n
	d, ok := deltaOf(m)
	if !ok {
		return Board{}, ErrIllegalMove
	}
	nr, nc := row+d[0], col+d[1]
	if nr < 0 || nr >= b.n || nc < 0 || nc >= b.n {
		return Board{}, ErrIllegalMove
	}
	next := b
	target := nr*b.n + nc
	next.cells[b.blank], next.cells[target] = next.cells[target], next.cells[b.blank]
	next.blank = target
	return next, nil
}

func deltaOf(m Move) ([2]int, bool) {
	switch m {
	case Up, Down, Left, Right:
		return deltas[m], true
	default:
		return [2]int{}, false
	}
}

// IsGoal reports whether b equals the canonical solved board of its size.
func (b Board) IsGoal() bool {
	n2 := b.n * b.n
	for i := 0; i < n2-1; i++ {
		if int(b.cells[i]) != i+1 {
			return false
		}
	}
	return int(b.cells[n2-1]) == 0
}

// Equal reports whether b and other describe the same configuration.
// Boards of different sizes are never equal.
func (b Board) Equal(other Board) bool {
	if b.n != other.n {
		return false
	}
	n2 := b.n * b.n
	for i := 0; i < n2; i++ {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Hash returns a stable structural hash over the label sequence, suitable
// for cycle-pruning sets and map keys. For n≤4 it packs every label into
// a 4-bit nibble of a 64-bit word (spec.md §9's packed-board design
// note); larger boards fall back to an FNV-1a hash over the cell bytes.
func (b Board) Hash() uint64 {
	n2 := b.n * b.n
	if b.n <= 4 {
		var h uint64
		for i := 0; i < n2; i++ {
			h |= uint64(b.cells[i]) << (4 * uint(i))
		}
		return h
	}
	const offset64 = 14695981039346656037
	const prime64 = 1099511628211
	h := uint64(offset64)
	for i := 0; i < n2; i++ {
		h ^= uint64(b.cells[i])
		h *= prime64
	}
	return h
}

// Parity returns the number of inversions among the non-blank tiles (read
// in row-major order) and the blank's row counted from the bottom
// (0-based). Both are inputs to IsSolvable per spec.md §3.
func (b Board) Parity() (inversions int, blankRowFromBottom int) {
	n2 := b.n * b.n
	seq := make([]int, 0, n2-1)
	for i := 0; i < n2; i++ {
		if b.cells[i] != 0 {
			seq = append(seq, int(b.cells[i]))
		}
	}
	for i := 0; i < len(seq); i++ {
		for j := i + 1; j < len(seq); j++ {
			if seq[i] > seq[j] {
				inversions++
			}
		}
	}
	blankRow := b.blank / b.n
	blankRowFromBottom = b.n - 1 - blankRow
	return inversions, blankRowFromBottom
}

// IsSolvable reports whether b can reach the canonical goal. For odd n,
// the board is solvable iff the inversion count is even. For even n, it
// is solvable iff (inversions + blankRowFromBottom) is even, where
// blankRowFromBottom is 0-indexed (the bottom row is 0).
func (b Board) IsSolvable() bool {
	inversions, blankRowFromBottom := b.Parity()
	if b.n%2 == 1 {
		return inversions%2 == 0
	}
	return (inversions+blankRowFromBottom)%2 == 0
}

// String renders b as whitespace-separated row-major integers, matching
// the console collaborator's input format (spec.md §6).
func (b Board) String() string {
	n2 := b.n * b.n
	parts := make([]string, n2)
	for i := 0; i < n2; i++ {
		parts[i] = strconv.Itoa(int(b.cells[i]))
	}
	return strings.Join(parts, " ")
}
