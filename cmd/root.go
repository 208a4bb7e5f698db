package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "deepwork",
	Short: "Track deep work sessions from the command line",
	Long: `deepwork is a CLI for tracking focused work sessions. It records each
session with a category and description to a single local data file,
reports totals, per-category breakdowns and weekly goal progress, and
renders a per-category bar chart in the terminal.`,
}

var dataFile string

func init() {
	rootCmd.PersistentFlags().StringVar(&dataFile, "file", "", "Path to the data file (overrides DEEPWORK_DATA_FILE and config)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
