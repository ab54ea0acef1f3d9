package main

import (
	"context"
	"errors"
	"fmt"

	"aoc2024/internal/days"
	"aoc2024/internal/input"
	"aoc2024/internal/logging"
	"aoc2024/internal/puzzle"
	"aoc2024/internal/store"
	"aoc2024/internal/ui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	runPart      int
	runInput     string
	runExample   bool
	runWorkers   int
	runNoHistory bool
)

// runCmd solves one or more days
var runCmd = &cobra.Command{
	Use:   "run [day...]",
	Short: "Solve puzzles (all registered days by default)",
	Example: `  aoc run 1 2
  aoc run 16 --part 2
  aoc run 7 --input my-input.txt
  aoc run --example`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntVarP(&runPart, "part", "p", 0, "Only run this part (1 or 2)")
	runCmd.Flags().StringVarP(&runInput, "input", "i", "", "Read input from this file (single day only)")
	runCmd.Flags().BoolVar(&runExample, "example", false, "Run the registered examples and check their answers")
	runCmd.Flags().IntVar(&runWorkers, "workers", 0, "Parallel jobs (default from config)")
	runCmd.Flags().BoolVar(&runNoHistory, "no-history", false, "Do not record answers")
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(true)
	defer cancel()

	reg, err := days.Registry()
	if err != nil {
		return err
	}
	selected, err := parseDays(args)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		selected = reg.Days()
	}

	var part puzzle.Part
	if runPart != 0 {
		if part, err = puzzle.ParsePart(fmt.Sprint(runPart)); err != nil {
			return err
		}
	}

	runner := &puzzle.Runner{
		Registry: reg,
		Inputs:   input.Loader{Dir: cfg.InputDir},
		Workers:  cfg.Workers,
		Logger:   logging.Named(logger, logging.CategoryRunner),
	}
	if runWorkers > 0 {
		runner.Workers = runWorkers
	}
	if runInput != "" {
		if len(selected) != 1 {
			return fmt.Errorf("--input needs exactly one day, got %d", len(selected))
		}
		runner.Inputs = input.File(runInput)
	}

	var jobs []puzzle.Job
	if runExample {
		jobs, err = runner.ExampleJobs(selected, part)
	} else {
		jobs, err = runner.Jobs(selected, part)
	}
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		fmt.Println("Nothing to run.")
		return nil
	}

	logger.Info("Running", zap.Int("jobs", len(jobs)), zap.Ints("days", selected), zap.Bool("example", runExample))
	results, runErr := runner.Run(ctx, jobs)
	fmt.Print(ui.Results(ui.DefaultStyles(), results))

	if !runExample && runInput == "" && !runNoHistory && cfg.History.Enabled {
		recordHistory(ctx, results)
	}
	if runErr != nil {
		return summarizeFailures(results)
	}
	return nil
}

// recordHistory stores every result. Failures to record are logged only.
func recordHistory(ctx context.Context, results []puzzle.Result) {
	log := logging.Named(logger, logging.CategoryStore)
	h, err := store.Open(cfg.History.Path)
	if err != nil {
		log.Warn("History unavailable", zap.Error(err))
		return
	}
	defer h.Close()

	for _, r := range results {
		if errors.Is(r.Err, input.ErrMissing) {
			continue
		}
		if _, err := h.Record(ctx, store.FromResult(r)); err != nil {
			log.Warn("Failed to record result", zap.Int("day", r.Job.Day), zap.Error(err))
			return
		}
	}
	log.Debug("Recorded results", zap.Int("count", len(results)), zap.String("path", h.Path()))
}

func summarizeFailures(results []puzzle.Result) error {
	failed := 0
	missing := map[int]bool{}
	for _, r := range results {
		if r.Err == nil {
			continue
		}
		failed++
		if errors.Is(r.Err, input.ErrMissing) && !missing[r.Job.Day] {
			missing[r.Job.Day] = true
			fmt.Printf("Input for day %d is missing; try `aoc fetch %d`.\n", r.Job.Day, r.Job.Day)
		}
	}
	return fmt.Errorf("%d of %d jobs failed", failed, len(results))
}
