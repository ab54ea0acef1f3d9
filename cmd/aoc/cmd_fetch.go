package main

import (
	"fmt"
	"net/http"
	"os"

	"aoc2024/internal/input"
	"aoc2024/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fetchForce bool

// fetchCmd downloads puzzle inputs
var fetchCmd = &cobra.Command{
	Use:   "fetch <day...>",
	Short: "Download puzzle inputs using your session cookie",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFetch,
}

func init() {
	fetchCmd.Flags().BoolVarP(&fetchForce, "force", "f", false, "Overwrite existing input files")
}

func runFetch(cmd *cobra.Command, args []string) error {
	selected, err := parseDays(args)
	if err != nil {
		return err
	}
	session, err := cfg.SessionToken()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext(true)
	defer cancel()

	loader := input.Loader{Dir: cfg.InputDir}
	fetcher := &input.Fetcher{
		BaseURL:  cfg.Fetch.BaseURL,
		Year:     cfg.Year,
		Session:  session,
		Attempts: uint(cfg.Fetch.Attempts),
		Delay:    cfg.GetFetchDelay(),
		Client:   &http.Client{Timeout: cfg.GetFetchTimeout()},
		Logger:   logging.Named(logger, logging.CategoryFetch),
	}

	for _, day := range selected {
		if _, err := os.Stat(loader.Path(day)); err == nil && !fetchForce {
			fmt.Printf("Day %d: %s already exists (use --force to replace)\n", day, loader.Path(day))
			continue
		}
		path, err := fetcher.Download(ctx, day, loader)
		if err != nil {
			return err
		}
		logger.Info("Fetched input", zap.Int("day", day), zap.String("path", path))
		fmt.Printf("Day %d: saved %s\n", day, path)
	}
	return nil
}
