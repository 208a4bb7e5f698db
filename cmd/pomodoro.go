package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/0binna-oss/deep-work-tracker/internal/config"
	"github.com/0binna-oss/deep-work-tracker/internal/pomodoro"
)

var pomodoroCmd = &cobra.Command{
	Use:   "pomodoro",
	Short: "Run a blocking pomodoro countdown",
	RunE:  runPomodoro,
}

var pomodoroMinutes int

func init() {
	pomodoroCmd.Flags().IntVar(&pomodoroMinutes, "duration", 0, "Duration in minutes (default from config, 25)")
	rootCmd.AddCommand(pomodoroCmd)
}

func runPomodoro(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	minutes := pomodoroMinutes
	if minutes == 0 {
		minutes = cfg.PomodoroMinutes
	}
	if minutes < 1 {
		return fmt.Errorf("duration must be at least 1 minute, got %d", minutes)
	}

	fmt.Printf("Starting pomodoro timer for %d minutes...\n", minutes)
	if err := pomodoro.Run(time.Duration(minutes) * time.Minute); err != nil {
		return err
	}
	fmt.Println("Pomodoro session completed!")
	return nil
}
