package cli

import (
	"github.com/fatih/color"
	"github.com/monorkin/room-history-import/internal/config"
	"github.com/monorkin/room-history-import/internal/database"
	"github.com/monorkin/room-history-import/internal/globals"
	"github.com/spf13/cobra"
)

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Create the database schema without importing",
	Long: `Create the rooms and sensor_data_history tables and their indexes if they
do not exist yet. Safe to run against an existing database.`,
	Args: cobra.NoArgs,
	RunE: runSchema,
}

func runSchema(cmd *cobra.Command, args []string) error {
	globals.MustBeInitialized()

	path := config.DBPath(globals.Settings)
	if cmd.Flags().Changed("db") {
		path = dbPath
	}

	db, err := database.SetupDatabase(path, globals.Logger)
	if err != nil {
		return err
	}
	defer database.Close(db)

	globals.Logger.Debug("Schema ensured", "db", path)
	color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Schema ready in %s\n", path)

	return nil
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
