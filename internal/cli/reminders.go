package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var remindersCmd = &cobra.Command{
	Use:   "reminders",
	Short: "Generate end-of-lab reminders",
	Long: `Generate one reminder block per session listing what to watch and what
is due before the class meets again.`,
	RunE: runReminders,
}

func init() {
	remindersCmd.Flags().String("track", "", "Track code, e.g. DA")
	remindersCmd.Flags().String("section", "", "Limit to one section code, e.g. 1A")
	remindersCmd.Flags().Bool("save", false, "Record the generated blocks to history")
}

func runReminders(cmd *cobra.Command, args []string) error {
	track, _ := cmd.Flags().GetString("track")
	section, _ := cmd.Flags().GetString("section")
	save, _ := cmd.Flags().GetBool("save")

	eng, _, err := loadEngine()
	if err != nil {
		return err
	}

	blocks, err := eng.Reminders(track, section)
	if err != nil {
		return err
	}
	if len(blocks) == 0 {
		fmt.Println("No sessions found.")
		return nil
	}

	rendered := make([]string, 0, len(blocks))
	for _, b := range blocks {
		rendered = append(rendered, b.Render())
	}
	out := strings.Join(rendered, "\n\n---\n\n")
	fmt.Println(out)

	if save {
		return saveToHistory("reminders", track, section, out)
	}
	return nil
}
