package main

import (
	"fmt"

	"aoc2024/internal/days"
	"aoc2024/internal/ui"

	"github.com/spf13/cobra"
)

// listCmd shows the registered days
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered days",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := days.Registry()
		if err != nil {
			return err
		}
		fmt.Print(ui.Days(ui.DefaultStyles(), reg))
		return nil
	},
}
