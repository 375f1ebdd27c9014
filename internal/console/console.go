package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/npuzzle/board"
)

// ParseBoard reads one line of whitespace-separated row-major labels
// from r and constructs the Board they describe. The board's side n is
// inferred from the label count (n*n must be a perfect square in
// [4,25]); ErrMalformedInput wraps any parse failure, and board.New's
// own validation error (board.ErrInvalidBoard) is returned as is.
func ParseBoard(r io.Reader) (board.Board, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return board.Board{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		return board.Board{}, fmt.Errorf("%w: empty input", ErrMalformedInput)
	}

	fields := strings.Fields(scanner.Text())
	labels := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return board.Board{}, fmt.Errorf("%w: %q is not an integer", ErrMalformedInput, f)
		}
		labels[i] = v
	}

	n, err := sideLength(len(labels))
	if err != nil {
		return board.Board{}, err
	}
	return board.New(n, labels)
}

// sideLength returns the integer n such that n*n == cellCount, or
// ErrMalformedInput if cellCount is not a perfect square in [4, 25].
func sideLength(cellCount int) (int, error) {
	for n := 2; n <= 5; n++ {
		if n*n == cellCount {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: %d cells is not a supported board size", ErrMalformedInput, cellCount)
}

// FormatMoves renders a move sequence as space-separated letters
// (U/D/L/R), matching ParseBoard's input register.
func FormatMoves(moves []board.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
