package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/0binna-oss/deep-work-tracker/internal/chart"
	"github.com/0binna-oss/deep-work-tracker/internal/ledger"
)

var visualizeCmd = &cobra.Command{
	Use:   "visualize",
	Short: "Render a bar chart of hours per category",
	RunE:  runVisualize,
}

func init() {
	rootCmd.AddCommand(visualizeCmd)
}

func runVisualize(cmd *cobra.Command, args []string) error {
	l, cfg, err := openLedger()
	if err != nil {
		return err
	}

	sum := l.Summary(ledger.PeriodAll)
	if sum.NumSessions == 0 {
		fmt.Println("No sessions recorded.")
		return nil
	}

	labels := sortedCategories(sum.CategoryTime)
	values := make([]float64, len(labels))
	for i, c := range labels {
		values[i] = sum.CategoryTime[c]
	}

	var r chart.Renderer = chart.Terminal{
		Title: "Time Distribution by Category",
		Width: cfg.ChartWidth,
	}
	return r.Render(labels, values)
}
