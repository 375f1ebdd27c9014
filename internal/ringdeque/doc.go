// Package ringdeque provides a growable ring-buffer double-ended queue,
// generalizing the fixed-capacity index deque that gridgraph.ExpandIsland
// uses for its 0-1 BFS (push front for zero-cost edges, push back for
// unit-cost edges) into a reusable, generic collaborator for package pdb's
// pattern-database builder.
//
// What:
//
//   - Deque[T]: PushFront, PushBack, PopFront, Len, Empty.
//
// Why:
//
//   - 0-1 BFS needs O(1) push/pop at both ends; a slice alone only gives
//     that at one end. The ring buffer avoids the allocation churn of
//     repeated full-slice shifts.
//
// Complexity:
//
//   - All operations O(1) amortized; PushFront/PushBack may trigger an
//     O(n) grow-and-recenter, amortized across subsequent pushes.
package ringdeque
