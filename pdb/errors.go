package pdb

import "errors"

// ErrMissingPDB is returned by Load when the named file does not exist.
var ErrMissingPDB = errors.New("pdb: table file not found")

// ErrCorruptPDB is returned when a loaded file's header or body fails
// validation (bad magic, truncated body, entry-width mismatch).
var ErrCorruptPDB = errors.New("pdb: table file is corrupt")

// ErrIncompatibleN reports a size or partition mismatch. BuildTables
// returns it when n is outside [2,5] or when the partition has an empty
// group, a repeated label, or a label outside 1..n*n-1. Tables.H does not
// check the board's size; callers compare Tables.N with the board's N and
// report this error on a mismatch.
var ErrIncompatibleN = errors.New("pdb: table size incompatible with board")

// ErrBuildFailure is returned when BuildTables computes a zero-entry
// table size for some group. Partition errors are reported as
// ErrIncompatibleN instead.
var ErrBuildFailure = errors.New("pdb: failed to build pattern database")
