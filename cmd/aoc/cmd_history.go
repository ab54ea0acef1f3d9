package main

import (
	"fmt"

	"aoc2024/internal/store"
	"aoc2024/internal/ui"

	"github.com/spf13/cobra"
)

var historyLimit int

// historyCmd shows recorded answers
var historyCmd = &cobra.Command{
	Use:   "history [day]",
	Short: "Show recorded answers",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Show at most this many runs (0 = all)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	day := 0
	if len(args) == 1 {
		selected, err := parseDays(args)
		if err != nil {
			return err
		}
		day = selected[0]
	}

	ctx, cancel := commandContext(true)
	defer cancel()

	h, err := store.Open(cfg.History.Path)
	if err != nil {
		return err
	}
	defer h.Close()

	entries, err := h.List(ctx, day)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}
	if historyLimit > 0 && len(entries) > historyLimit {
		entries = entries[:historyLimit]
	}
	fmt.Print(ui.History(ui.DefaultStyles(), entries))
	return nil
}
