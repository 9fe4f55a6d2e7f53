package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/monorkin/room-history-import/internal/config"
	"github.com/spf13/cobra"
)

var configForce bool

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the settings file",
	// The settings file may be missing or broken, which is what these commands fix.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings file with the default values",
	Long: `Write a settings file containing the built-in defaults so they can be
edited. An existing file is left alone unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.DefaultSettingsPath()
		}

		if err := writeDefaultSettings(path, configForce); err != nil {
			return err
		}

		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", path)
		return nil
	},
}

func writeDefaultSettings(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("settings file %s already exists (use --force to overwrite)", path)
	}

	if err := config.DefaultSettings().SaveTo(path); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return nil
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing settings file")

	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
}
