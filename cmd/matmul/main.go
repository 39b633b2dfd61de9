// SPDX-License-Identifier: MIT

// Command matmul multiplies two random n×n matrices four ways (sequential,
// parallel, sequential transposed, parallel transposed) and prints the wall
// time of each.
//
// Usage:
//
//	matmul [-seed 1] [-trials 1] [-verify] [-v] <n> <num_threads>
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/katalvlaran/parbench"
	"github.com/katalvlaran/parbench/matrix"
	"github.com/katalvlaran/parbench/trial"
)

// Labels printed in front of each timing.
const (
	labelSeq     = "Sequential Matrix Multiplication"
	labelPar     = "Parallel Matrix Multiplication"
	labelSeqT    = "Sequential Transposed Matrix Multiplication"
	labelParT    = "Parallel Transposed Matrix Multiplication"
	msgArgsCount = "Error: Invalid number of arguments"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type config struct {
	n, threads int
	seed       int64
	trials     int
	verify     bool
	verbose    bool
}

// errArgsCount is reported on stdout as msgArgsCount.
var errArgsCount = errors.New("invalid number of arguments")

func parseArgs(args []string, stderr io.Writer) (config, error) {
	fs := flag.NewFlagSet("matmul", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: matmul [flags] <n> <num_threads>")
		fs.PrintDefaults()
	}

	var cfg config
	fs.Int64Var(&cfg.seed, "seed", matrix.DefaultSeed, "random seed for A and B")
	fs.IntVar(&cfg.trials, "trials", 1, "timed runs per variant")
	fs.BoolVar(&cfg.verify, "verify", false, "check that all variants produce identical results")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging to stderr")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() != 2 {
		return cfg, errArgsCount
	}

	var err error
	if cfg.n, err = strconv.Atoi(fs.Arg(0)); err != nil || cfg.n < 1 {
		return cfg, fmt.Errorf("n must be a positive integer, got %q", fs.Arg(0))
	}
	if cfg.threads, err = strconv.Atoi(fs.Arg(1)); err != nil || cfg.threads < 1 {
		return cfg, fmt.Errorf("num_threads must be a positive integer, got %q", fs.Arg(1))
	}
	if cfg.trials < 1 {
		return cfg, fmt.Errorf("-trials must be >= 1, got %d", cfg.trials)
	}

	return cfg, nil
}

// variant is one timed multiplication into its own destination.
type variant struct {
	label string
	opts  []matrix.Option
	dst   *matrix.Dense
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseArgs(args, stderr)
	switch {
	case errors.Is(err, errArgsCount):
		fmt.Fprintln(stdout, msgArgsCount)
		return 1
	case errors.Is(err, flag.ErrHelp):
		return 2
	case err != nil:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if cfg.verbose {
		parbench.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer parbench.SetLogger(nil)
	}

	rng := matrix.NewRNG(cfg.seed)
	a, err := matrix.NewRandom(cfg.n, cfg.n, rng)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	b, err := matrix.NewRandom(cfg.n, cfg.n, rng)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	parbench.Logger().Info("matmul: start", "n", cfg.n, "threads", cfg.threads, "seed", cfg.seed)

	variants := []*variant{
		{label: labelSeq, opts: []matrix.Option{matrix.WithVariant(matrix.Direct), matrix.WithWorkers(1)}},
		{label: labelPar, opts: []matrix.Option{matrix.WithVariant(matrix.Direct), matrix.WithWorkers(cfg.threads)}},
		{label: labelSeqT, opts: []matrix.Option{matrix.WithVariant(matrix.Transposed), matrix.WithWorkers(1)}},
		{label: labelParT, opts: []matrix.Option{matrix.WithVariant(matrix.Transposed), matrix.WithWorkers(cfg.threads)}},
	}
	rep := trial.NewTextReporter(stdout)
	for _, v := range variants {
		if v.dst, err = matrix.NewDense(cfg.n, cfg.n); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		_, err = trial.Run(cfg.trials, func(int) error { return matrix.MulInto(v.dst, a, b, v.opts...) },
			trial.WithLabel(v.label), trial.WithReporter(rep))
		if err != nil {
			fmt.Fprintf(stderr, "Error: %s: %v\n", v.label, err)
			return 1
		}
	}
	if err = rep.Err(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if cfg.verify {
		ref := variants[0].dst
		for _, v := range variants[1:] {
			if !matrix.Equal(ref, v.dst) {
				fmt.Fprintf(stderr, "Error: %s differs from %s\n", v.label, variants[0].label)
				return 1
			}
		}
		fmt.Fprintln(stdout, "Verification: all variants identical")
	}

	return 0
}
