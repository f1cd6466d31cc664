package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/satkit/dpll/config"
	"github.com/satkit/dpll/oracle"
	"github.com/satkit/dpll/solver"
	"go.uber.org/zap"
)

func main() {
	var (
		verbose   bool
		tracePath string
	)
	flag.BoolVar(&verbose, "verbose", false, "sets verbose mode on")
	flag.StringVar(&tracePath, "trace", "", "master execution trace path (default per config)")
	flag.Parse()
	if len(flag.Args()) != 1 {
		fmt.Fprintf(os.Stderr, "Syntax : %s [options] file.cnf\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	logger := newLogger(verbose)
	defer func() { _ = logger.Sync() }()

	if err := config.Load(); err != nil {
		logger.Fatal("could not load config", zap.Error(err))
	}
	if tracePath == "" {
		tracePath = config.TraceFile()
	}

	path := flag.Args()[0]
	fmt.Printf("c solving %s\n", path)
	fm, err := solver.LoadCNF(path)
	if err != nil {
		if errors.Is(err, solver.ErrEmptyFormula) {
			fmt.Println("c empty formula, trivially satisfiable")
			fmt.Println("s SATISFIABLE")
			fmt.Println("v 0")
			return
		}
		fmt.Fprintf(os.Stderr, "could not parse problem: %v\n", err)
		os.Exit(1)
	}
	if verbose {
		fmt.Printf("c number of clauses   : %d\n", len(fm.Clauses))
		fmt.Printf("c number of variables : %d\n", fm.NbVars)
	}

	if err := os.MkdirAll(config.DataDir(), 0o755); err != nil {
		logger.Fatal("could not create exchange directory", zap.Error(err))
	}
	orc, err := oracle.NewClient(config.OracleCommand(), config.RequestFile(), config.ResponseFile(), fm.NbVars, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not build oracle client: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(tracePath), 0o755); err != nil {
		logger.Fatal("could not create trace directory", zap.Error(err))
	}
	traceFile, err := os.Create(tracePath)
	if err != nil {
		logger.Fatal("could not create trace file", zap.String("path", tracePath), zap.Error(err))
	}
	defer func() { _ = traceFile.Close() }()

	s := solver.New(fm, orc)
	s.Tracer = solver.NewTraceWriter(traceFile, path)
	s.Logger = logger
	sat, model, err := s.Solve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "solve aborted: %v\n", err)
		os.Exit(1)
	}
	if verbose {
		fmt.Printf("c nb decisions: %d\nc nb backtracks: %d\n", s.Stats.NbDecisions, s.Stats.NbBacktracks)
	}
	fmt.Printf("c trace written to %s\n", tracePath)
	outputModel(sat, model)
}

func newLogger(verbose bool) *zap.Logger {
	if verbose {
		logger, _ := zap.NewDevelopment()
		return logger
	}
	logger, _ := zap.NewProduction()
	return logger
}

func outputModel(sat bool, model map[int]bool) {
	if !sat {
		fmt.Println("s UNSATISFIABLE")
		return
	}
	fmt.Println("s SATISFIABLE")
	vars := make([]int, 0, len(model))
	for v := range model {
		vars = append(vars, v)
	}
	sort.Ints(vars)
	lits := make([]string, 0, len(vars)+1)
	for _, v := range vars {
		if model[v] {
			lits = append(lits, fmt.Sprintf("%d", v))
		} else {
			lits = append(lits, fmt.Sprintf("-%d", v))
		}
	}
	lits = append(lits, "0")
	fmt.Printf("v %s\n", strings.Join(lits, " "))
}
