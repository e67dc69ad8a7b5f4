package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List the sections found in the roster directory",
	RunE:  runSections,
}

func init() {
	sectionsCmd.Flags().Bool("tracks", false, "List track codes instead of sections")
}

func runSections(cmd *cobra.Command, args []string) error {
	tracksOnly, _ := cmd.Flags().GetBool("tracks")

	eng, cfg, err := loadEngine()
	if err != nil {
		return err
	}

	if tracksOnly {
		tracks, err := eng.Tracks()
		if err != nil {
			return err
		}
		if len(tracks) == 0 {
			fmt.Printf("No rosters found in %s.\n", cfg.Data.Dir)
			return nil
		}
		for _, t := range tracks {
			fmt.Println(t)
		}
		return nil
	}

	sections, err := eng.Sections()
	if err != nil {
		return err
	}
	if len(sections) == 0 {
		fmt.Printf("No rosters found in %s.\n", cfg.Data.Dir)
		return nil
	}
	for _, s := range sections {
		fmt.Println(s)
	}
	return nil
}
