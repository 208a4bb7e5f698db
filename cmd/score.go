package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Show this week's productivity score",
	Long: `Show this week's productivity score: total hours worked plus half a
point per session. A simple linear heuristic, nothing more.`,
	RunE: runScore,
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	l, _, err := openLedger()
	if err != nil {
		return err
	}
	fmt.Printf("Your current productivity score is: %.2f\n", l.ProductivityScoreAt(time.Now()))
	return nil
}
