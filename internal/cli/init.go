package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ksylvia16/weekly-messaging/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a project configuration file",
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	path := config.ProjectConfigPath()

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists at %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := config.WriteDefault(path); err != nil {
		return err
	}

	fmt.Printf("Created %s\n", path)
	fmt.Println("Edit it to point at your roster directory and instructors.")
	return nil
}
