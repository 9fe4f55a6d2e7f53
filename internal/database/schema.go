package database

import (
	"embed"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strconv"

	"gorm.io/gorm"
)

//go:embed schema/*.sql
var schemaFS embed.FS

var schemaOrdinalRegex = regexp.MustCompile(`^(\d+)_.+\.sql$`)

// SchemaFile is one create-if-absent step of the schema.
type SchemaFile struct {
	Ordinal uint64
	Name    string
}

func (file SchemaFile) SQL() (string, error) {
	sql, err := fs.ReadFile(schemaFS, "schema/"+file.Name)
	if err != nil {
		return "", fmt.Errorf("failed to read schema file %s: %w", file.Name, err)
	}

	return string(sql), nil
}

// SchemaFiles returns the embedded schema files ordered by their numeric prefix.
func SchemaFiles() ([]SchemaFile, error) {
	entries, err := fs.ReadDir(schemaFS, "schema")
	if err != nil {
		return nil, err
	}

	var files []SchemaFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		match := schemaOrdinalRegex.FindStringSubmatch(entry.Name())
		if len(match) != 2 {
			return nil, fmt.Errorf("invalid schema file name: %s", entry.Name())
		}

		ordinal, err := strconv.ParseUint(match[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid schema ordinal: %s - %w", match[1], err)
		}

		files = append(files, SchemaFile{Ordinal: ordinal, Name: entry.Name()})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Ordinal < files[j].Ordinal
	})

	return files, nil
}

// EnsureSchema creates the rooms and sensor_data_history tables and their
// indexes unless they already exist. Existing data is never touched.
func EnsureSchema(db *gorm.DB) error {
	files, err := SchemaFiles()
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, file := range files {
			sql, err := file.SQL()
			if err != nil {
				return err
			}

			if err := tx.Exec(sql).Error; err != nil {
				return fmt.Errorf("failed to apply schema file %s: %w", file.Name, err)
			}
		}

		return nil
	})
}
