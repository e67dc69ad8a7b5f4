package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ksylvia16/weekly-messaging/internal/config"
	"github.com/ksylvia16/weekly-messaging/internal/engine"
	"github.com/ksylvia16/weekly-messaging/pkg/logger"
)

var (
	verbose bool
	rootCmd *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "weekly-messaging",
		Short: "Weekly Messaging - curriculum announcement generator",
		Long: `Weekly Messaging turns curriculum schedule rosters into the recurring
announcements a program team posts every week: Monday digests, Friday
recaps, end-of-lab reminders, and SkillBuilder watch-by guides.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// Execute runs the root command
func Execute(version string) error {
	// Add subcommands here to ensure proper initialization order
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(weeklyCmd)
	rootCmd.AddCommand(fridayCmd)
	rootCmd.AddCommand(remindersCmd)
	rootCmd.AddCommand(watchGuideCmd)
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(sectionsCmd)
	rootCmd.AddCommand(historyCmd)

	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// loadEngine builds the engine from merged configuration.
func loadEngine() (*engine.Engine, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	log := zap.NewNop()
	if verbose {
		log, err = logger.New("console", "debug")
		if err != nil {
			return nil, nil, err
		}
	}

	return engine.New(cfg, log), cfg, nil
}
