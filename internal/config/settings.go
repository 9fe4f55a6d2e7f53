package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings are optional overrides read from settings.json. Unset fields fall
// back to the environment and the built-in defaults.
type Settings struct {
	SourcePath *string `json:"source_path,omitempty"`
	DBPath     *string `json:"db_path,omitempty"`
	BatchSize  *int    `json:"batch_size,omitempty"`
	Timezone   *string `json:"timezone,omitempty"`
}

func DefaultSettingsPath() string {
	return filepath.Join(ConfigDir(), "settings.json")
}

// DefaultSettings spells out the built-in values.
func DefaultSettings() *Settings {
	sourcePath := SOURCE_NAME
	dbPath := DB_NAME
	batchSize := DEFAULT_BATCH_SIZE
	timezone := "Local"

	return &Settings{
		SourcePath: &sourcePath,
		DBPath:     &dbPath,
		BatchSize:  &batchSize,
		Timezone:   &timezone,
	}
}

// LoadOrEmptySettings returns the settings at path, or empty settings when no
// file exists there. A file that exists but cannot be parsed is an error.
func LoadOrEmptySettings(path string) (*Settings, error) {
	settings, err := LoadSettings(path)
	if os.IsNotExist(err) {
		return &Settings{}, nil
	}
	if err != nil {
		return nil, err
	}

	return settings, nil
}

func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

func (s *Settings) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
