package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start <category>",
	Short: "Start a deep work session",
	Args:  cobra.ExactArgs(1),
	RunE:  runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	l, _, err := openLedger()
	if err != nil {
		return err
	}

	p, err := l.Begin(args[0], time.Now())
	if err != nil {
		return err
	}
	if err := l.Save(); err != nil {
		return err
	}

	fmt.Printf("Started %q session at %s\n", p.Category, p.StartTime.Format(time.RFC3339))
	return nil
}
