package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Export the schedule as an iCalendar file",
	RunE:  runCalendar,
}

func init() {
	calendarCmd.Flags().String("track", "", "Track code, e.g. DA (required)")
	calendarCmd.Flags().String("out", "", "Output file (default stdout)")
	_ = calendarCmd.MarkFlagRequired("track")
}

func runCalendar(cmd *cobra.Command, args []string) error {
	track, _ := cmd.Flags().GetString("track")
	out, _ := cmd.Flags().GetString("out")

	eng, _, err := loadEngine()
	if err != nil {
		return err
	}

	feed, err := eng.Calendar(track, time.Now())
	if err != nil {
		return err
	}

	if out == "" {
		fmt.Print(feed)
		return nil
	}
	if err := os.WriteFile(out, []byte(feed), 0644); err != nil {
		return fmt.Errorf("failed to write calendar: %w", err)
	}
	fmt.Printf("Wrote %s\n", out)
	return nil
}
