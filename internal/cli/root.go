package cli

import (
	"github.com/monorkin/room-history-import/internal/globals"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	sourcePath string
	dbPath     string
	batchSize  int
	timezone   string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "room-history-import",
	Short: "Import historical room sensor readings into SQLite",
	Long: `Imports a CSV export of per-room sensor readings (temperature, air quality,
daylight and light) into a SQLite database.

Room labels such as "2104" are split into a floor (the first digit) and a
room number (the rest) and stored once in the rooms table. Every CSV row is
appended to sensor_data_history. Rows are committed in batches, so an
interrupted run keeps every batch committed before the failure.

Running without a subcommand creates the schema if needed and imports the
source file.

Configuration is read from flags, then ROOM_HISTORY_IMPORT_* environment
variables, then the settings file, then built-in defaults.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return globals.Initialize(verbose, configPath)
	},
	RunE: runImport,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose (debug) logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the settings file (default is $XDG_CONFIG_HOME/room-history-import/settings.json)")
	rootCmd.PersistentFlags().StringVarP(&sourcePath, "source", "s", "", "CSV file to import (default lab42cc_6_new.csv)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database to write to (default room_data.db)")
	rootCmd.PersistentFlags().IntVarP(&batchSize, "batch-size", "b", 0, "Rows per commit (default 1000)")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "", "Time zone epoch timestamps are stored in (default local)")
}
