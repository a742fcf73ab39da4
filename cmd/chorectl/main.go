// Command chorectl exercises the smart input parser and the recurrence engine
// from the terminal without a running API.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chorectl",
	Short: "ChoreChum command line tools",
	Long: `Offline tools for ChoreChum.

Available subcommands:
  parse - Turn one line of text into a chore draft
  next  - Compute the next due date of a recurring chore`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(parseCmd, nextCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
