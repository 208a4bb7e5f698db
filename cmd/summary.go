package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/0binna-oss/deep-work-tracker/internal/ledger"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show aggregate stats for a period",
	RunE:  runSummary,
}

var (
	summaryPeriod   string
	summaryCategory string
)

func init() {
	summaryCmd.Flags().StringVar(&summaryPeriod, "period", "all", "Period: daily, weekly, or all")
	summaryCmd.Flags().StringVar(&summaryCategory, "category", "", "Filter by category (exact or glob)")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	period, err := ledger.ParsePeriod(summaryPeriod)
	if err != nil {
		return err
	}

	l, _, err := openLedger()
	if err != nil {
		return err
	}

	sessions, err := filterByCategory(l.Sessions, summaryCategory)
	if err != nil {
		return err
	}

	view := ledger.Ledger{Sessions: sessions}
	sum := view.SummaryAt(time.Now(), period)

	fmt.Printf("Summary for %s period:\n", period)
	fmt.Printf("  Total time: %.2f hours\n", sum.TotalTime)
	fmt.Println("  Time by category:")
	for _, c := range sortedCategories(sum.CategoryTime) {
		fmt.Printf("    %s: %.2f hours\n", c, sum.CategoryTime[c])
	}
	fmt.Printf("  Sessions: %d\n", sum.NumSessions)
	return nil
}
