// Command relsat runs the built-in group-theory demo theory and prints
// every model it finds, optionally as JSON and/or persisted to a
// SQLite file.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/relsat/engine"
	"github.com/katalvlaran/relsat/export"
	"github.com/katalvlaran/relsat/store"
)

func printMsg(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg+"\n", args...)
}

func lit(sign bool, pred engine.Pred, axes ...int) engine.LiteralSpec {
	return engine.LiteralSpec{Sign: sign, Pred: pred, Axes: axes}
}

// buildGroupTheory axiomatizes a group over a single sort of the given
// size: an equivalence relation equ, a totally-defined multiplication
// mul, a totally-defined inverse inv, a totally-defined identity one,
// plus the group laws (associativity, left inverse, left identity).
// Mirrors the buildGroupTheory test fixture in
// engine/example_group_test.go, reused here as the CLI's demo theory.
func buildGroupTheory(size int, opts ...engine.SolverOption) (*engine.Solver, engine.Pred, error) {
	s := engine.NewSolver(opts...)
	set, err := s.AddDomain("set", size)
	if err != nil {
		return nil, engine.Pred{}, err
	}

	one, err := s.AddPredicate("one", set)
	if err != nil {
		return nil, engine.Pred{}, err
	}
	inv, err := s.AddPredicate("inv", set, set)
	if err != nil {
		return nil, engine.Pred{}, err
	}
	mul, err := s.AddPredicate("mul", set, set, set)
	if err != nil {
		return nil, engine.Pred{}, err
	}
	equ, err := s.AddPredicate("equ", set, set)
	if err != nil {
		return nil, engine.Pred{}, err
	}

	if err := s.AddClause(lit(true, equ, 0, 0)); err != nil {
		return nil, engine.Pred{}, err
	}
	if err := s.AddClause(lit(false, equ, 0, 1), lit(true, equ, 1, 0)); err != nil {
		return nil, engine.Pred{}, err
	}
	if err := s.AddClause(lit(false, equ, 0, 1), lit(false, equ, 1, 2), lit(true, equ, 0, 2)); err != nil {
		return nil, engine.Pred{}, err
	}

	if err := s.AddClause(
		lit(false, mul, 0, 1, 3),
		lit(false, mul, 3, 2, 4),
		lit(false, mul, 1, 2, 5),
		lit(true, mul, 0, 5, 4),
	); err != nil {
		return nil, engine.Pred{}, err
	}

	if err := s.AddClause(lit(false, mul, 0, 1, 2), lit(false, mul, 0, 1, 3), lit(true, equ, 2, 3)); err != nil {
		return nil, engine.Pred{}, err
	}
	s.AddExists(mul)

	if err := s.AddClause(lit(false, inv, 0, 1), lit(false, inv, 0, 2), lit(true, equ, 1, 2)); err != nil {
		return nil, engine.Pred{}, err
	}
	s.AddExists(inv)

	if err := s.AddClause(lit(false, one, 0), lit(false, one, 1), lit(true, equ, 0, 1)); err != nil {
		return nil, engine.Pred{}, err
	}
	s.AddExists(one)

	if err := s.AddClause(lit(false, inv, 0, 1), lit(false, mul, 1, 0, 2), lit(true, one, 2)); err != nil {
		return nil, engine.Pred{}, err
	}
	if err := s.AddClause(lit(false, one, 0), lit(true, mul, 0, 1, 1)); err != nil {
		return nil, engine.Pred{}, err
	}

	return s, equ, nil
}

func main() {
	flag.Usage = func() {
		var b strings.Builder
		b.WriteString("relsat runs the group-theory demo theory over a finite set and\n")
		b.WriteString("enumerates every model (\"group table\") it admits.\n\n")
		fmt.Fprint(os.Stderr, b.String())
		fmt.Fprintln(os.Stderr, "Usage: relsat [flags]")
		flag.PrintDefaults()
	}
	size := flag.Int("size", 2, "size of the underlying set")
	fixEquality := flag.Bool("fix-equality", false, "pin equ to literal equality before searching")
	jsonOut := flag.Bool("json", false, "print each solution as JSON instead of a glyph dump")
	limit := flag.Int("limit", 0, "stop after this many solutions (0 means unbounded)")
	dbPath := flag.String("db", "", "persist every solution into this SQLite file")
	verbose := flag.Bool("verbose", false, "enable debug-level logging")
	flag.Parse()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if *verbose {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	opts := []engine.SolverOption{engine.WithLogger(logger)}
	if *limit > 0 {
		opts = append(opts, engine.WithSolutionLimit(*limit))
	}

	s, equ, err := buildGroupTheory(*size, opts...)
	if err != nil {
		printMsg("failed to build theory: %s", err)
		os.Exit(1)
	}
	if *fixEquality {
		if err := s.SetEquality(equ); err != nil {
			printMsg("failed to fix equality: %s", err)
			os.Exit(1)
		}
	}

	var solStore *store.SolutionStore
	if *dbPath != "" {
		solStore, err = store.Open(*dbPath)
		if err != nil {
			printMsg("failed to open solution store: %s", err)
			os.Exit(1)
		}
		defer solStore.Close()
		if err := solStore.SaveTheory(s); err != nil {
			printMsg("failed to save theory: %s", err)
			os.Exit(1)
		}
	}

	s.SearchAll(func(sol *engine.Solver) {
		sol.EvaluateAll()
		n := sol.Solutions()
		if *jsonOut {
			out, err := export.EncodeSolution(sol, n)
			if err != nil {
				printMsg("failed to encode solution %d: %s", n, err)
				return
			}
			fmt.Println(string(out))
		} else {
			fmt.Printf("--- solution %d ---\n", n)
			sol.Dump(os.Stdout)
		}
		if solStore != nil {
			if err := solStore.Save(sol, n); err != nil {
				printMsg("failed to persist solution %d: %s", n, err)
			}
		}
	})

	printMsg("found %d solution(s)", s.Solutions())
}
