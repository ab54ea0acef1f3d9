package main

import (
	"context"
	"fmt"
	"os"

	"aoc2024/internal/days"
	"aoc2024/internal/input"
	"aoc2024/internal/logging"
	"aoc2024/internal/puzzle"
	"aoc2024/internal/ui"
	"aoc2024/internal/watch"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// watchCmd re-solves days when their inputs change
var watchCmd = &cobra.Command{
	Use:   "watch <day...>",
	Short: "Re-run days whenever their input files change",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	selected, err := parseDays(args)
	if err != nil {
		return err
	}
	reg, err := days.Registry()
	if err != nil {
		return err
	}
	for _, d := range selected {
		if _, err := reg.Get(d); err != nil {
			return err
		}
	}

	ctx, cancel := commandContext(false)
	defer cancel()

	w, err := watch.NewWatcher(cfg.InputDir, cfg.GetDebounce(), logging.Named(logger, logging.CategoryWatch), selected...)
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		return err
	}
	defer w.Stop()

	runner := &puzzle.Runner{
		Registry: reg,
		Inputs:   input.Loader{Dir: cfg.InputDir},
		Workers:  cfg.Workers,
		Logger:   logging.Named(logger, logging.CategoryRunner),
	}
	loader := input.Loader{Dir: cfg.InputDir}
	for _, d := range selected {
		if _, err := os.Stat(loader.Path(d)); err == nil {
			solveDay(ctx, runner, d)
		}
	}
	fmt.Printf("Watching %s for changes (Ctrl+C to stop)\n", cfg.InputDir)

	for day := range w.Events() {
		solveDay(ctx, runner, day)
	}
	return nil
}

// solveDay runs both parts of day and prints the results. Errors are shown
// in the table; watching continues.
func solveDay(ctx context.Context, runner *puzzle.Runner, day int) {
	jobs, err := runner.Jobs([]int{day}, 0)
	if err != nil {
		logger.Warn("Cannot run day", zap.Int("day", day), zap.Error(err))
		return
	}
	results, _ := runner.Run(ctx, jobs)
	fmt.Print(ui.Results(ui.DefaultStyles(), results))
}
