package board_test

import (
	"testing"

	"github.com/katalvlaran/npuzzle/board"
)

func BenchmarkApply(b *testing.B) {
	start := board.Goal(4)
	moves := start.LegalMoves(board.NoMove)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = start.Apply(moves[i%len(moves)])
	}
}

func BenchmarkLegalMoves(b *testing.B) {
	start := board.Goal(4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = start.LegalMoves(board.NoMove)
	}
}

func BenchmarkHash(b *testing.B) {
	start := board.Goal(4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = start.Hash()
	}
}
