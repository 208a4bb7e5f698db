package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var trackGoalsCmd = &cobra.Command{
	Use:   "track_goals",
	Short: "Show weekly progress toward each goal",
	RunE:  runTrackGoals,
}

func init() {
	rootCmd.AddCommand(trackGoalsCmd)
}

func runTrackGoals(cmd *cobra.Command, args []string) error {
	l, _, err := openLedger()
	if err != nil {
		return err
	}

	if len(l.Goals) == 0 {
		fmt.Println("No goals set. Use 'deepwork set_goal' to create one.")
		return nil
	}

	fmt.Println("Weekly goal progress:")
	for _, p := range l.GoalProgressAt(time.Now()) {
		fmt.Printf("  %s:\n", p.Category)
		fmt.Printf("    Goal:     %.2f hours\n", p.GoalHours)
		fmt.Printf("    Actual:   %.2f hours\n", p.ActualHours)
		fmt.Printf("    Progress: %.2f%%\n", p.ProgressPct)
	}
	return nil
}
