package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <filename>",
	Short: "Export all sessions to a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	l, _, err := openLedger()
	if err != nil {
		return err
	}
	if err := l.ExportCSV(args[0]); err != nil {
		return err
	}
	fmt.Printf("Exported %d sessions to %s\n", len(l.Sessions), args[0])
	return nil
}
