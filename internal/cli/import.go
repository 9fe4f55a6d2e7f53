package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/monorkin/room-history-import/internal/config"
	"github.com/monorkin/room-history-import/internal/database"
	"github.com/monorkin/room-history-import/internal/globals"
	"github.com/monorkin/room-history-import/internal/importer"
	"github.com/spf13/cobra"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Create the schema if needed and import the source file",
	Long: `Create the rooms and sensor_data_history tables if they are missing, then
append every row of the source CSV to the database.

The source must have the columns room, ts, temperature, airquality, daylight
and light. Numeric ts values are treated as epoch seconds, anything else is
stored verbatim.

Examples:
  room-history-import import
  room-history-import import --source export.csv --db history.db --batch-size 500`,
	Args: cobra.NoArgs,
	RunE: runImport,
}

// pipelineOptions is the resolved configuration of one run.
type pipelineOptions struct {
	SourcePath string
	DBPath     string
	BatchSize  int
	Location   *time.Location
}

func resolvePipelineOptions(cmd *cobra.Command, settings *config.Settings) (pipelineOptions, error) {
	options := pipelineOptions{
		SourcePath: config.SourcePath(settings),
		DBPath:     config.DBPath(settings),
	}

	var err error
	options.BatchSize, err = config.BatchSize(settings)
	if err != nil {
		return options, err
	}

	options.Location, err = config.Location(settings)
	if err != nil {
		return options, err
	}

	flags := cmd.Flags()
	if flags.Changed("source") {
		options.SourcePath = sourcePath
	}
	if flags.Changed("db") {
		options.DBPath = dbPath
	}
	if flags.Changed("batch-size") {
		if batchSize <= 0 {
			return options, fmt.Errorf("batch size must be positive, got %d", batchSize)
		}
		options.BatchSize = batchSize
	}
	if flags.Changed("timezone") {
		options.Location, err = config.LoadLocation(timezone)
		if err != nil {
			return options, err
		}
	}

	return options, nil
}

func runImport(cmd *cobra.Command, args []string) error {
	globals.MustBeInitialized()

	options, err := resolvePipelineOptions(cmd, globals.Settings)
	if err != nil {
		return err
	}

	_, err = runPipeline(cmd.Context(), options, globals.Logger, cmd.OutOrStdout())
	return err
}

// runPipeline ensures the schema exists and then imports the source.
func runPipeline(ctx context.Context, options pipelineOptions, logger *slog.Logger, out io.Writer) (importer.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	logger.Debug(
		"Resolved configuration",
		"source", options.SourcePath,
		"db", options.DBPath,
		"batch_size", options.BatchSize,
		"timezone", options.Location.String(),
	)

	db, err := database.SetupDatabase(options.DBPath, logger)
	if err != nil {
		return importer.Result{}, err
	}
	defer database.Close(db)

	imp, err := importer.New(db, importer.Options{
		BatchSize: options.BatchSize,
		Location:  options.Location,
		Logger:    logger,
		Progress:  out,
	})
	if err != nil {
		return importer.Result{}, err
	}

	return imp.ImportFile(ctx, options.SourcePath)
}

func init() {
	rootCmd.AddCommand(importCmd)
}
