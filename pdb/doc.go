// Package pdb builds and serves additive disjoint pattern-database
// heuristics for board.Board (spec.md §4.3, §4.4, §6): partition the
// non-blank labels into disjoint groups, compute one exact-distance
// table per group by searching the abstracted state space backward from
// the goal, and sum each group's lookup at query time for a heuristic
// at least as tight as Manhattan distance.
//
// What:
//
//   - BuildTables: runs one 0-1 BFS per group (in parallel across
//     groups), each over "augmented states" — a group's tile positions
//     plus the blank's cell — and stores, per tile-position arrangement,
//     the minimum over blank cells of the exact distance from the
//     group's goal configuration.
//   - Tables.H: sums each group's table lookup for the board's current
//     tile-position arrangement, implementing idastar.Heuristic.
//   - Save/Load: a self-describing binary container (magic, version, N,
//     partition descriptor, entry width, table bodies).
//   - rank/unrank: a deterministic bijection between a group's ordered
//     tile-position tuple and a dense integer index, used both to size
//     each table and to address it at query time.
//
// Why:
//
//   - A single disjoint partition's tables sum to an admissible
//     heuristic strictly dominating Manhattan distance whenever a group
//     has more than one tile, since within-group tile-to-tile
//     interference (tiles blocking each other) is captured exactly,
//     where Manhattan distance assumes every tile moves independently.
//
// Complexity:
//
//   - Build: O(sum over groups of that group's augmented-state count),
//     parallel across groups.
//   - Query: O(number of groups), each a single slice index.
//
// Errors:
//
//   - ErrMissingPDB: Load given a path with no file.
//   - ErrCorruptPDB: the container's header or body fails validation.
//   - ErrIncompatibleN: BuildTables was given n outside [2,5] or an
//     invalid partition (empty group, repeated label, label out of
//     range); callers also use it when a loaded table's N does not match
//     the board size it's asked to score.
//   - ErrBuildFailure: a group's table size computed to zero.
package pdb
