// SPDX-License-Identifier: MIT

// Command mandelbrot renders the Mandelbrot set in parallel several times,
// prints the time of every trial and their mean, and saves the final image.
//
// Usage:
//
//	mandelbrot [-width 640] [-height 480] [-maxiter 255] [-trials 10]
//	           [-workers 0] [-policy dynamic] [-chunk 1]
//	           [-out mandelbrot_parallel.pgm] [-check] [-v]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/parbench"
	"github.com/katalvlaran/parbench/export"
	"github.com/katalvlaran/parbench/mandelbrot"
	"github.com/katalvlaran/parbench/schedule"
	"github.com/katalvlaran/parbench/trial"
)

const defaultOutput = "mandelbrot_parallel.pgm"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type config struct {
	width, height int
	maxIter       int
	trials        int
	workers       int
	policy        schedule.Policy
	chunk         int
	out           string
	check         bool
	verbose       bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	fs := flag.NewFlagSet("mandelbrot", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		cfg    config
		policy string
	)
	fs.IntVar(&cfg.width, "width", mandelbrot.DefaultWidth, "image width in pixels")
	fs.IntVar(&cfg.height, "height", mandelbrot.DefaultHeight, "image height in pixels")
	fs.IntVar(&cfg.maxIter, "maxiter", mandelbrot.DefaultMaxIter, "iteration cap per pixel")
	fs.IntVar(&cfg.trials, "trials", mandelbrot.DefaultTrials, "number of timed renders")
	fs.IntVar(&cfg.workers, "workers", mandelbrot.DefaultWorkers, "worker goroutines (0 = GOMAXPROCS)")
	fs.StringVar(&policy, "policy", mandelbrot.DefaultPolicy.String(), "row schedule: static or dynamic")
	fs.IntVar(&cfg.chunk, "chunk", mandelbrot.DefaultChunk, "rows claimed per grab (dynamic)")
	fs.StringVar(&cfg.out, "out", defaultOutput, "output image (.pgm, .png, .bmp, .tif); empty skips saving")
	fs.BoolVar(&cfg.check, "check", false, "verify every trial produces the same image")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging to stderr")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() != 0 {
		return cfg, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	var err error
	if cfg.policy, err = schedule.ParsePolicy(policy); err != nil {
		return cfg, err
	}
	switch {
	case cfg.maxIter < 1:
		return cfg, fmt.Errorf("-maxiter must be >= 1, got %d", cfg.maxIter)
	case cfg.trials < 1:
		return cfg, fmt.Errorf("-trials must be >= 1, got %d", cfg.trials)
	case cfg.chunk < 1:
		return cfg, fmt.Errorf("-chunk must be >= 1, got %d", cfg.chunk)
	}
	if cfg.out != "" {
		if _, err = export.FormatFromPath(cfg.out); err != nil {
			return cfg, err
		}
	}

	return cfg, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 2
	}
	if cfg.verbose {
		parbench.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer parbench.SetLogger(nil)
	}

	g, err := mandelbrot.NewGrid(cfg.width, cfg.height)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	rep := trial.NewTextReporter(stdout)
	parbench.Logger().Info("mandelbrot: start",
		"width", cfg.width, "height", cfg.height, "trials", cfg.trials, "policy", cfg.policy.String())
	_, err = mandelbrot.Benchmark(g, mandelbrot.BenchmarkConfig{
		Trials: cfg.trials,
		Render: []mandelbrot.Option{
			mandelbrot.WithMaxIter(cfg.maxIter),
			mandelbrot.WithWorkers(cfg.workers),
			mandelbrot.WithPolicy(cfg.policy),
			mandelbrot.WithChunk(cfg.chunk),
		},
		Trial:            []trial.Option{trial.WithReporter(rep)},
		CheckConsistency: cfg.check,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if err = rep.Err(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if cfg.out != "" {
		if err = export.SaveFile(cfg.out, g); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		parbench.Logger().Info("mandelbrot: saved", "path", cfg.out)
	}

	return 0
}
