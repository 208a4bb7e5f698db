package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var endCmd = &cobra.Command{
	Use:   "end",
	Short: "End the session in progress",
	RunE:  runEnd,
}

var endDescription string

func init() {
	endCmd.Flags().StringVar(&endDescription, "description", "", "Description of the work done")
	rootCmd.AddCommand(endCmd)
}

func runEnd(cmd *cobra.Command, args []string) error {
	l, _, err := openLedger()
	if err != nil {
		return err
	}

	s, err := l.End(endDescription, time.Now())
	if err != nil {
		return err
	}
	if err := l.Save(); err != nil {
		return err
	}

	fmt.Printf("Session ended. Duration: %.2f hours\n", s.Duration)
	return nil
}
