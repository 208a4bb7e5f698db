package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var totalCmd = &cobra.Command{
	Use:   "total",
	Short: "Show cumulative deep work hours",
	RunE:  runTotal,
}

func init() {
	rootCmd.AddCommand(totalCmd)
}

func runTotal(cmd *cobra.Command, args []string) error {
	l, _, err := openLedger()
	if err != nil {
		return err
	}
	fmt.Printf("Total deep work time: %.2f hours\n", l.TotalTime())
	return nil
}
