// Package board implements the sliding-tile puzzle state: an N×N grid of
// labeled tiles plus one blank, the four blank-directed moves, and the
// parity check that decides solvability.
//
// What:
//
//   - Board: an immutable value type holding N, the label of every cell,
//     and the blank's cell index.
//   - Move: one of Up, Down, Left, Right, interpreted as the direction the
//     blank moves.
//   - New validates the permutation invariant; LegalMoves enumerates the
//     moves available from the blank's current cell; Apply returns the
//     board reached by making a legal move.
//   - Parity/IsSolvable implement the inversion-and-blank-row check that
//     decides whether a configuration can reach the canonical goal.
//
// Why:
//
//   - Search (package idastar) needs a cheap-to-copy state with O(1) move
//     generation and a stable hash for cycle pruning.
//   - Heuristics (packages heuristic and pdb) need to read a tile's cell
//     and a label's cell without re-deriving board geometry.
//
// Complexity:
//
//   - New:          O(N²)
//   - LegalMoves:   O(1)
//   - Apply:        O(1)
//   - Hash/Equal:   O(N²) (Hash packs the cells into one word for N≤4)
//   - Parity:       O(N⁴) worst case (naive inversion count over N²-1 tiles)
//
// Errors:
//
//   - ErrInvalidBoard: labels are not a permutation of 0..N²-1
//   - ErrIllegalMove:  Apply called with a move not legal from the blank
//
// Functions:
//
//   - New(n int, labels []int) (Board, error)
//   - Goal(n int) Board
//   - (Board) LegalMoves(prev Move) []Move
//   - (Board) Apply(m Move) (Board, error)
//   - (Board) IsGoal() bool
//   - (Board) Hash() uint64
//   - (Board) Equal(other Board) bool
//   - (Board) Parity() (inversions int, blankRowFromBottom int)
//   - (Board) IsSolvable() bool
//   - (Board) String() string
package board
