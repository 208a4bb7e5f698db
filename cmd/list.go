package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all sessions, optionally filtered by category",
	RunE:  runList,
}

var listCategory string

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", "Filter by category (exact or glob)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	l, _, err := openLedger()
	if err != nil {
		return err
	}

	sessions, err := filterByCategory(l.Sessions, listCategory)
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded.")
	}
	for i, s := range sessions {
		fmt.Printf("Session %d:\n", i+1)
		fmt.Printf("  Start:       %s\n", s.StartTime.Format(time.RFC3339))
		fmt.Printf("  End:         %s\n", s.EndTime.Format(time.RFC3339))
		fmt.Printf("  Duration:    %.2f hours\n", s.Duration)
		fmt.Printf("  Category:    %s\n", s.Category)
		fmt.Printf("  Description: %s\n", s.Description)
		fmt.Println()
	}

	if l.Pending != nil {
		fmt.Printf("In progress: %q since %s\n", l.Pending.Category, l.Pending.StartTime.Format(time.RFC3339))
	}
	return nil
}
