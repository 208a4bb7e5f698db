package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var setGoalCmd = &cobra.Command{
	Use:   "set_goal <category> <hours>",
	Short: "Set a weekly hours goal for a category",
	Args:  cobra.ExactArgs(2),
	RunE:  runSetGoal,
}

func init() {
	rootCmd.AddCommand(setGoalCmd)
}

func runSetGoal(cmd *cobra.Command, args []string) error {
	hours, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid hours %q: %w", args[1], err)
	}

	l, _, err := openLedger()
	if err != nil {
		return err
	}
	if err := l.SetGoal(args[0], hours); err != nil {
		return err
	}
	if err := l.Save(); err != nil {
		return err
	}

	fmt.Printf("Goal set for %q: %g hours per week\n", args[0], hours)
	return nil
}
