package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ksylvia16/weekly-messaging/internal/config"
	"github.com/ksylvia16/weekly-messaging/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage generated announcement history",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recently generated announcements",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a recorded announcement",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)

	historyListCmd.Flags().Int("limit", 10, "Number of entries to show")
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	entries, err := history.LoadRecent(config.ProjectStatePath(), limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No announcement history found.")
		return nil
	}

	fmt.Printf("Recent announcements (%d):\n\n", len(entries))
	for _, e := range entries {
		scope := e.Track
		if e.Section != "" {
			scope += " " + e.Section
		}
		if scope == "" {
			scope = "-"
		}
		fmt.Printf("  %s  %-12s %-8s %s\n",
			e.GeneratedAt.Format("2006-01-02 15:04"),
			e.Kind,
			scope,
			history.ShortID(e.ID))
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	id := args[0]

	entries, err := history.LoadRecent(config.ProjectStatePath(), 0)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.ID == id || strings.HasPrefix(e.ID, id) {
			fmt.Println(e.Message)
			return nil
		}
	}
	return fmt.Errorf("no announcement with id %s", id)
}
