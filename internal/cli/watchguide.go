package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var watchGuideCmd = &cobra.Command{
	Use:   "watch-guide",
	Short: "Generate the SkillBuilder watch-by guide",
	Long: `Generate the per-part SkillBuilder watch-by guide for a section. The
schedule splits into parts where the session numbering resets.`,
	RunE: runWatchGuide,
}

func init() {
	watchGuideCmd.Flags().String("track", "", "Track code, e.g. DA")
	watchGuideCmd.Flags().String("section", "", "Limit to one section code, e.g. 1A")
	watchGuideCmd.Flags().Bool("save", false, "Record the generated guides to history")
}

func runWatchGuide(cmd *cobra.Command, args []string) error {
	track, _ := cmd.Flags().GetString("track")
	section, _ := cmd.Flags().GetString("section")
	save, _ := cmd.Flags().GetBool("save")

	eng, _, err := loadEngine()
	if err != nil {
		return err
	}

	guides, err := eng.WatchGuides(track, section)
	if err != nil {
		return err
	}
	if len(guides) == 0 {
		fmt.Println("No schedule rows found.")
		return nil
	}

	for i, g := range guides {
		if i > 0 {
			fmt.Println("\n---")
		}
		fmt.Printf("\n=== Part %d ===\n\n", i+1)
		fmt.Println(g)
	}

	if save {
		return saveToHistory("watch-guide", track, section, strings.Join(guides, "\n\n---\n\n"))
	}
	return nil
}
