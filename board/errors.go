package board

import "errors"

// ErrInvalidBoard indicates the input labels are not a permutation of
// 0..N²-1 with exactly one zero (the blank).
var ErrInvalidBoard = errors.New("board: labels must be a permutation of 0..n*n-1")

// ErrIllegalMove indicates Apply was called with a move not present in
// LegalMoves for the board's current blank position. Callers are expected
// to only apply moves drawn from LegalMoves; this is a programmer error.
var ErrIllegalMove = errors.New("board: move is not legal from the current blank position")

// ErrSizeOutOfRange indicates n is too small or too large to represent.
var ErrSizeOutOfRange = errors.New("board: n must be between 2 and 5")
