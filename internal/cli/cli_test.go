package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/monorkin/room-history-import/internal/config"
	"github.com/monorkin/room-history-import/internal/database"
	"github.com/monorkin/room-history-import/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const source = "room,ts,temperature,airquality,daylight,light\n" +
	"2104,0,21.5,400,0.5,1\n" +
	"2105,1700000000,21.0,410,0.4,0\n" +
	"2104,not-a-number,20.9,420,0.3,2\n"

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func writeSource(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))

	return path
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunPipelineCreatesSchemaAndImports(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "room_data.db")
	var out bytes.Buffer

	result, err := runPipeline(context.Background(), pipelineOptions{
		SourcePath: writeSource(t),
		DBPath:     dbPath,
		BatchSize:  2,
		Location:   time.UTC,
	}, discardLogger(), &out)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Rows)
	assert.Equal(t, 2, result.RoomsCreated)
	assert.Equal(t, "Committed 2 rows...\nImport complete. Total rows processed: 3\n", out.String())

	db, err := database.Open(dbPath, nil)
	require.NoError(t, err)
	defer database.Close(db)

	var readings, rooms int64
	require.NoError(t, db.Model(&models.SensorReading{}).Count(&readings).Error)
	require.NoError(t, db.Model(&models.Room{}).Count(&rooms).Error)
	assert.Equal(t, int64(3), readings)
	assert.Equal(t, int64(2), rooms)
}

func TestRunPipelineMissingSourceStillCreatesSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "room_data.db")

	_, err := runPipeline(context.Background(), pipelineOptions{
		SourcePath: filepath.Join(t.TempDir(), "missing.csv"),
		DBPath:     dbPath,
		BatchSize:  config.DEFAULT_BATCH_SIZE,
		Location:   time.UTC,
	}, discardLogger(), io.Discard)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestWriteDefaultSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	require.NoError(t, writeDefaultSettings(path, false))
	assert.Error(t, writeDefaultSettings(path, false))
	assert.NoError(t, writeDefaultSettings(path, true))

	settings, err := config.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSettings(), settings)
}

func TestExecuteImport(t *testing.T) {
	t.Setenv(config.ENV_SOURCE_PATH, "")
	t.Setenv(config.ENV_DB_PATH, "")
	t.Setenv(config.ENV_BATCH_SIZE, "")
	t.Setenv(config.ENV_TIMEZONE, "")

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "room_data.db")
	var out bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{
		"import",
		"--source", writeSource(t),
		"--db", dbPath,
		"--batch-size", "1",
		"--timezone", "UTC",
		"--config", filepath.Join(dir, "settings.json"),
	})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, Execute())
	assert.Equal(t,
		"Committed 1 rows...\n"+
			"Committed 2 rows...\n"+
			"Committed 3 rows...\n"+
			"Import complete. Total rows processed: 3\n",
		out.String())

	db, err := database.Open(dbPath, nil)
	require.NoError(t, err)
	defer database.Close(db)

	var timestamps []string
	require.NoError(t, db.Raw("SELECT CAST(timestamp AS TEXT) FROM sensor_data_history ORDER BY rowid").Scan(&timestamps).Error)
	assert.Equal(t, []string{"1970-01-01T00:00:00", "2023-11-14T22:13:20", "not-a-number"}, timestamps)
}
