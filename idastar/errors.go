package idastar

import "errors"

// ErrUnsolvable is returned when the initial board fails the parity check
// (board.IsSolvable), or when IDA* exhausts the reachable state space
// (every DFS pass's bound candidate stayed at infinity) without finding
// the goal.
var ErrUnsolvable = errors.New("idastar: no solution exists from the given state")

// ErrCancelled is returned when the caller's cancellation channel (see
// WithCancel) fires while a search is in progress.
var ErrCancelled = errors.New("idastar: search cancelled")

// ErrNodeBudgetExceeded is returned when WithNodeBudget's cap on expanded
// nodes is reached before the search concludes.
var ErrNodeBudgetExceeded = errors.New("idastar: node expansion budget exceeded")
