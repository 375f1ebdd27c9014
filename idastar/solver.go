package idastar

import "github.com/katalvlaran/npuzzle/board"

const infBound = int(^uint(0) >> 1) // math.MaxInt, avoided to keep this file import-light

// Solve finds an optimal (shortest) move sequence from initial to its goal
// using iterative-deepening A*, with h as the admissible lower-bound
// heuristic. It returns ErrUnsolvable if initial has no solution
// (checked up front with board.IsSolvable, without searching),
// ErrCancelled if a WithCancel channel fires mid-search, and
// ErrNodeBudgetExceeded if a WithNodeBudget cap is reached first.
func Solve(initial board.Board, h Heuristic, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	if initial.IsGoal() {
		return Result{Moves: []board.Move{}}, nil
	}
	if !initial.IsSolvable() {
		return Result{}, ErrUnsolvable
	}

	s := &searcher{h: h, opts: &o}
	if o.pathPruning {
		s.onPath = map[board.Board]struct{}{initial: {}}
	}

	bound := h.H(initial)
	path := []board.Move{}
	for {
		if s.cancelled() {
			return Result{}, ErrCancelled
		}
		next, found, err := s.dfs(initial, board.NoMove, 0, bound, &path)
		if err != nil {
			return Result{}, err
		}
		if found {
			moves := make([]board.Move, len(path))
			copy(moves, path)
			return Result{Moves: moves, Bound: bound, NodesExpanded: s.nodes}, nil
		}
		if next == infBound {
			return Result{}, ErrUnsolvable
		}
		bound = next
	}
}

// searcher carries the per-Solve-call mutable state threaded through the
// recursive bounded DFS: the node counter, the optional path-pruning set,
// and the resolved options.
type searcher struct {
	h      Heuristic
	opts   *Options
	nodes  int64
	onPath map[board.Board]struct{}
}

func (s *searcher) cancelled() bool {
	if s.opts.cancel == nil {
		return false
	}
	select {
	case <-s.opts.cancel:
		return true
	default:
		return false
	}
}

// dfs explores cur (reached via g moves from the root, having just made
// move lastMove) up to bound. It returns the smallest f = g+h observed
// beyond bound (the next iteration's candidate bound), whether the goal
// was found, and any error (cancellation or budget exhaustion). path is
// extended in place with the move that reached cur's children while the
// goal search is in progress and truncated back before returning.
func (s *searcher) dfs(cur board.Board, lastMove board.Move, g, bound int, path *[]board.Move) (int, bool, error) {
	f := g + s.h.H(cur)
	if f > bound {
		return f, false, nil
	}
	if cur.IsGoal() {
		return f, true, nil
	}

	if s.cancelled() {
		return 0, false, ErrCancelled
	}
	s.nodes++
	if s.opts.nodeBudget > 0 && s.nodes > s.opts.nodeBudget {
		return 0, false, ErrNodeBudgetExceeded
	}

	children := cur.LegalMoves(lastMove)
	next := make([]board.Move, len(children))
	copy(next, children)
	if s.opts.heuristicOrdering {
		s.sortByChildH(cur, next)
	}

	min := infBound
	for _, m := range next {
		child, err := cur.Apply(m)
		if err != nil {
			continue
		}
		if s.onPath != nil {
			if _, onPath := s.onPath[child]; onPath {
				continue
			}
			s.onPath[child] = struct{}{}
		}

		*path = append(*path, m)
		childNext, found, err := s.dfs(child, m, g+1, bound, path)
		if err != nil {
			if s.onPath != nil {
				delete(s.onPath, child)
			}
			return 0, false, err
		}
		if found {
			return childNext, true, nil
		}
		*path = (*path)[:len(*path)-1]

		if s.onPath != nil {
			delete(s.onPath, child)
		}
		if childNext < min {
			min = childNext
		}
	}
	return min, false, nil
}

// sortByChildH orders moves by the heuristic value of the resulting board,
// ascending. Used only when WithHeuristicOrdering is enabled; the extra
// board.Apply calls this costs are paid again (cheaply) inside dfs's main
// loop, trading a little recomputation for simpler code.
func (s *searcher) sortByChildH(cur board.Board, moves []board.Move) {
	hs := make([]int, len(moves))
	for i, m := range moves {
		child, err := cur.Apply(m)
		if err != nil {
			hs[i] = infBound
			continue
		}
		hs[i] = s.h.H(child)
	}
	for i := 1; i < len(moves); i++ {
		for j := i; j > 0 && hs[j] < hs[j-1]; j-- {
			hs[j], hs[j-1] = hs[j-1], hs[j]
			moves[j], moves[j-1] = moves[j-1], moves[j]
		}
	}
}
