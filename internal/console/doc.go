// Package console implements the text protocol cmd/npuzzle speaks on
// stdin/stdout (spec.md §6): a whitespace-separated row-major board on
// one line in, a whitespace-separated move-letter sequence out.
package console
