package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"chorechum/pkg/recurrence"
)

var (
	nextRule  string
	nextCount int
)

var nextCmd = &cobra.Command{
	Use:   "next [due-date]",
	Short: "Compute the next due date of a recurring chore",
	Long: `Print the due dates that follow due-date (YYYY-MM-DD, default today).

--rule accepts the stored encoding: daily, weekly, monthly, none,
or custom:<unit>:<interval>[:<until>], e.g. custom:monthly:2:2025-12-31.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNext,
}

func init() {
	nextCmd.Flags().StringVar(&nextRule, "rule", "weekly", "recurrence rule")
	nextCmd.Flags().IntVarP(&nextCount, "count", "n", 1, "number of occurrences to print")
}

func runNext(cmd *cobra.Command, args []string) error {
	rule := recurrence.Parse(nextRule)
	if rule.IsNone() {
		return fmt.Errorf("rule %q does not repeat", nextRule)
	}

	anchor := time.Now().UTC().Truncate(24 * time.Hour)
	if len(args) == 1 {
		var err error
		anchor, err = time.Parse("2006-01-02", args[0])
		if err != nil {
			return fmt.Errorf("invalid due date: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	for i := 0; i < nextCount; i++ {
		next, ok := rule.Next(anchor)
		if !ok {
			fmt.Fprintln(out, "recurrence ended")
			return nil
		}
		fmt.Fprintln(out, next.Format("2006-01-02"))
		anchor = next
	}
	return nil
}
