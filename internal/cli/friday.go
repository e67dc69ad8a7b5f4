package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var fridayCmd = &cobra.Command{
	Use:   "friday",
	Short: "Generate the Friday recap for a track",
	RunE:  runFriday,
}

func init() {
	fridayCmd.Flags().String("track", "", "Track code, e.g. DA (required)")
	fridayCmd.Flags().String("date", "", "Recap date, YYYY-MM-DD (non-Fridays adjust backward; default today)")
	fridayCmd.Flags().String("section", "", "Limit to one section code, e.g. 1A")
	fridayCmd.Flags().Bool("save", false, "Record the generated messages to history")
	_ = fridayCmd.MarkFlagRequired("track")
}

func runFriday(cmd *cobra.Command, args []string) error {
	track, _ := cmd.Flags().GetString("track")
	section, _ := cmd.Flags().GetString("section")
	save, _ := cmd.Flags().GetBool("save")

	day, err := parseDateFlag(cmd, "date")
	if err != nil {
		return err
	}

	eng, _, err := loadEngine()
	if err != nil {
		return err
	}

	res, err := eng.Friday(track, day, section)
	if err != nil {
		return err
	}

	for _, n := range res.Notices {
		fmt.Println("⚠️", n)
	}

	var saved []string
	for _, block := range res.Blocks {
		fmt.Printf("\n--- Section %s (post on %s) ---\n\n", block.Section, block.PostOn.Format(dateFlagLayout))
		fmt.Println(block.Text)
		saved = append(saved, fmt.Sprintf("## Section %s\n\n%s", block.Section, block.Text))
	}
	if len(res.Blocks) == 0 {
		fmt.Println("No recap messages to post.")
		return nil
	}

	if save {
		return saveToHistory("friday", track, section, strings.Join(saved, "\n\n"))
	}
	return nil
}
