package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ksylvia16/weekly-messaging/internal/config"
	"github.com/ksylvia16/weekly-messaging/internal/history"
)

const dateFlagLayout = "2006-01-02"

var weeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "Generate the Monday digest for a track",
	RunE:  runWeekly,
}

func init() {
	weeklyCmd.Flags().String("track", "", "Track code, e.g. DA (required)")
	weeklyCmd.Flags().String("monday", "", "Week to announce, YYYY-MM-DD (snapped to its Monday; default this week)")
	weeklyCmd.Flags().Bool("save", false, "Record the generated message to history")
	_ = weeklyCmd.MarkFlagRequired("track")
}

// startOfWeek returns the Monday of d's week.
func startOfWeek(d time.Time) time.Time {
	return d.AddDate(0, 0, -((int(d.Weekday()) + 6) % 7))
}

func parseDateFlag(cmd *cobra.Command, name string) (time.Time, error) {
	raw, _ := cmd.Flags().GetString(name)
	if raw == "" {
		return time.Now(), nil
	}
	d, err := time.Parse(dateFlagLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s must be YYYY-MM-DD, got %q", name, raw)
	}
	return d, nil
}

func runWeekly(cmd *cobra.Command, args []string) error {
	track, _ := cmd.Flags().GetString("track")
	save, _ := cmd.Flags().GetBool("save")

	day, err := parseDateFlag(cmd, "monday")
	if err != nil {
		return err
	}
	monday := startOfWeek(day)

	eng, _, err := loadEngine()
	if err != nil {
		return err
	}

	msg, err := eng.Weekly(track, monday)
	if err != nil {
		return err
	}
	fmt.Println(msg)

	if save {
		return saveToHistory("weekly", track, "", msg)
	}
	return nil
}

func saveToHistory(kind, track, section, message string) error {
	path, err := history.Save(config.ProjectStatePath(), &history.Entry{
		Kind:    kind,
		Track:   track,
		Section: section,
		Message: message,
	})
	if err != nil {
		return err
	}
	fmt.Printf("\nSaved to %s\n", path)
	return nil
}
