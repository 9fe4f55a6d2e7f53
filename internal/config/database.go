package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	DB_NAME            = "room_data.db"
	SOURCE_NAME        = "lab42cc_6_new.csv"
	DEFAULT_BATCH_SIZE = 1000

	ENV_SOURCE_PATH = "ROOM_HISTORY_IMPORT_SOURCE_PATH"
	ENV_DB_PATH     = "ROOM_HISTORY_IMPORT_DB_PATH"
	ENV_BATCH_SIZE  = "ROOM_HISTORY_IMPORT_BATCH_SIZE"
	ENV_TIMEZONE    = "ROOM_HISTORY_IMPORT_TIMEZONE"
)

// DBPath resolves the store location: environment, then settings, then the
// built-in name in the working directory.
func DBPath(settings *Settings) string {
	if dbPath := os.Getenv(ENV_DB_PATH); dbPath != "" {
		return dbPath
	}

	if settings != nil && settings.DBPath != nil && *settings.DBPath != "" {
		return *settings.DBPath
	}

	return DB_NAME
}

func SourcePath(settings *Settings) string {
	if sourcePath := os.Getenv(ENV_SOURCE_PATH); sourcePath != "" {
		return sourcePath
	}

	if settings != nil && settings.SourcePath != nil && *settings.SourcePath != "" {
		return *settings.SourcePath
	}

	return SOURCE_NAME
}

func BatchSize(settings *Settings) (int, error) {
	if value := os.Getenv(ENV_BATCH_SIZE); value != "" {
		batchSize, err := strconv.Atoi(value)
		if err != nil || batchSize <= 0 {
			return 0, fmt.Errorf("invalid %s: %q", ENV_BATCH_SIZE, value)
		}

		return batchSize, nil
	}

	if settings != nil && settings.BatchSize != nil {
		if *settings.BatchSize <= 0 {
			return 0, fmt.Errorf("invalid batch_size in settings: %d", *settings.BatchSize)
		}

		return *settings.BatchSize, nil
	}

	return DEFAULT_BATCH_SIZE, nil
}

// Location is the zone epoch timestamps are rendered in. Defaults to the
// local zone.
func Location(settings *Settings) (*time.Location, error) {
	name := os.Getenv(ENV_TIMEZONE)
	if name == "" && settings != nil && settings.Timezone != nil {
		name = *settings.Timezone
	}

	return LoadLocation(name)
}

func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", name, err)
	}

	return loc, nil
}
