// Command npuzzle solves sliding-tile puzzles (solve) and builds
// pattern-database heuristics for them (build-pdb) from the command
// line.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/npuzzle"
	"github.com/katalvlaran/npuzzle/idastar"
	"github.com/katalvlaran/npuzzle/internal/console"
	"github.com/katalvlaran/npuzzle/pdb"
)

// Exit codes (spec.md §6): 0 success, everything else a distinct
// failure class so scripts can branch on it without parsing stderr.
const (
	exitOK             = 0
	exitInvalidInput   = 1
	exitUnsolvable     = 2
	exitCancelled      = 3
	exitPDBUnavailable = 4
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: npuzzle <solve|build-pdb> [flags]")
	}

	var code int
	switch os.Args[1] {
	case "solve":
		code = runSolve(os.Args[2:])
	case "build-pdb":
		code = runBuildPDB(os.Args[2:])
	default:
		log.Printf("unknown subcommand %q", os.Args[1])
		code = exitInvalidInput
	}
	os.Exit(code)
}

func runSolve(args []string) int {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	pdbPath := fs.String("pdb", "", "path to a pattern database file (optional)")
	allowFallback := fs.Bool("allow-manhattan-fallback", true, "fall back to Manhattan distance when -pdb is not set")
	nodeBudget := fs.Int64("node-budget", 0, "cap on expanded search nodes (0 = unbounded)")
	_ = fs.Parse(args)

	b, err := console.ParseBoard(os.Stdin)
	if err != nil {
		log.Printf("solve: %v", err)
		return exitInvalidInput
	}

	var tables *pdb.Tables
	if *pdbPath != "" {
		tables, err = pdb.Load(*pdbPath)
		if err != nil {
			log.Printf("solve: loading pattern database: %v", err)
			return exitPDBUnavailable
		}
		if tables.N() != b.N() {
			log.Printf("solve: %v", pdb.ErrIncompatibleN)
			return exitPDBUnavailable
		}
	}

	solver, err := npuzzle.NewSolver(tables, *allowFallback)
	if err != nil {
		log.Printf("solve: %v", err)
		return exitInvalidInput
	}

	var opts []idastar.Option
	if *nodeBudget > 0 {
		opts = append(opts, idastar.WithNodeBudget(*nodeBudget))
	}

	res, err := solver.Solve(b, opts...)
	switch {
	case err == nil:
		fmt.Println(console.FormatMoves(res.Moves))
		return exitOK
	case errors.Is(err, idastar.ErrUnsolvable):
		log.Print("solve: no solution exists")
		return exitUnsolvable
	case errors.Is(err, idastar.ErrCancelled):
		log.Print("solve: cancelled")
		return exitCancelled
	case errors.Is(err, idastar.ErrNodeBudgetExceeded):
		log.Printf("solve: %v", err)
		return exitCancelled
	default:
		log.Printf("solve: %v", err)
		return exitInvalidInput
	}
}

func runBuildPDB(args []string) int {
	fs := flag.NewFlagSet("build-pdb", flag.ExitOnError)
	n := fs.Int("n", 4, "board side length")
	partitionSpec := fs.String("partition", "", "semicolon-separated, comma-separated label groups, e.g. \"1,2,3,4;5,6,7,8\"")
	out := fs.String("out", "", "output file path")
	workers := fs.Int("workers", 0, "parallel build workers (0 = runtime.NumCPU)")
	_ = fs.Parse(args)

	if *out == "" {
		log.Print("build-pdb: -out is required")
		return exitInvalidInput
	}

	partition, err := parsePartition(*partitionSpec)
	if err != nil {
		log.Printf("build-pdb: %v", err)
		return exitInvalidInput
	}

	tables, err := pdb.BuildTables(*n, partition, *workers)
	if err != nil {
		log.Printf("build-pdb: %v", err)
		return exitInvalidInput
	}

	if err := pdb.Save(*out, tables); err != nil {
		log.Printf("build-pdb: writing %s: %v", *out, err)
		return exitInvalidInput
	}

	log.Printf("build-pdb: wrote %s (%d groups)", *out, len(partition))
	return exitOK
}

func parsePartition(spec string) ([][]int, error) {
	if spec == "" {
		return nil, fmt.Errorf("-partition must not be empty")
	}
	groups := strings.Split(spec, ";")
	partition := make([][]int, len(groups))
	for gi, g := range groups {
		fields := strings.Split(g, ",")
		labels := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("%q is not an integer label", f)
			}
			labels[i] = v
		}
		partition[gi] = labels
	}
	return partition, nil
}
