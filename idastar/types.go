package idastar

import "github.com/katalvlaran/npuzzle/board"

// Heuristic is any admissible lower bound on moves remaining to the
// goal. package heuristic's Heuristic and package pdb's *Tables both
// satisfy it.
type Heuristic interface {
	H(b board.Board) int
}

// Options holds the resolved configuration for a Solve call. It is
// built from DefaultOptions and zero or more Option functions; see
// dijkstra.Option / bfs.Option in the wider lvlath ecosystem for the
// convention this follows.
type Options struct {
	cancel            <-chan struct{}
	nodeBudget        int64
	pathPruning       bool
	heuristicOrdering bool
	err               error
}

// Option mutates an Options value.
type Option func(*Options)

// DefaultOptions returns the default configuration: path-set cycle
// pruning enabled (spec.md §9's recommended choice), fixed
// Up/Down/Left/Right child order, no cancellation, no node budget.
func DefaultOptions() Options {
	return Options{
		pathPruning: true,
	}
}

// WithCancel supplies a cooperative cancellation channel. Solve checks
// it at each node-expansion boundary (spec.md §5) and returns
// ErrCancelled promptly when it fires.
func WithCancel(ch <-chan struct{}) Option {
	return func(o *Options) { o.cancel = ch }
}

// WithNodeBudget caps the number of nodes Solve may expand before giving
// up with ErrNodeBudgetExceeded. n must be positive: a non-positive n
// makes Solve return an option error without searching. Without this
// option the search is unbounded.
func WithNodeBudget(n int64) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = errNonPositiveBudget
			return
		}
		o.nodeBudget = n
	}
}

// WithPathPruning toggles cycle pruning via a set of the boards on the
// current search path (spec.md §9 "Cycle pruning vs. memory"). Enabled by
// default; the inverse-move filter in board.LegalMoves alone is already
// correct, so disabling this only trades memory for potentially more
// node expansions.
func WithPathPruning(enabled bool) Option {
	return func(o *Options) { o.pathPruning = enabled }
}

// WithHeuristicOrdering sorts each node's children by ascending
// heuristic value before recursing, instead of the fixed
// Up/Down/Left/Right order (spec.md §4.5 "optionally sort by child h
// ascending"). Disabled by default to keep the fixed order's
// determinism obvious; enabling it typically reduces node counts.
func WithHeuristicOrdering(enabled bool) Option {
	return func(o *Options) { o.heuristicOrdering = enabled }
}

var errNonPositiveBudget = newOptionError("idastar: node budget must be positive")

func newOptionError(msg string) error { return optionError(msg) }

type optionError string

func (e optionError) Error() string { return string(e) }

// Result is the outcome of a successful Solve.
type Result struct {
	// Moves is the optimal move sequence from the initial board to the
	// goal. Empty (non-nil) when the initial board is already the goal.
	Moves []board.Move
	// Bound is the final IDA* bound, equal to len(Moves) for an
	// admissible heuristic.
	Bound int
	// NodesExpanded counts DFS node expansions across every iteration.
	NodesExpanded int64
}
