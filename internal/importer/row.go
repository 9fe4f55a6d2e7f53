package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/monorkin/room-history-import/internal/models"
)

const (
	COLUMN_ROOM        = "room"
	COLUMN_TIMESTAMP   = "ts"
	COLUMN_TEMPERATURE = "temperature"
	COLUMN_AIR_QUALITY = "airquality"
	COLUMN_DAYLIGHT    = "daylight"
	COLUMN_LIGHT       = "light"
)

var RequiredColumns = []string{
	COLUMN_ROOM,
	COLUMN_TIMESTAMP,
	COLUMN_TEMPERATURE,
	COLUMN_AIR_QUALITY,
	COLUMN_DAYLIGHT,
	COLUMN_LIGHT,
}

// sourceRow is one data record keyed by header column name.
type sourceRow struct {
	line   int
	fields map[string]string
}

func newSourceRow(line int, header []string, record []string) sourceRow {
	fields := make(map[string]string, len(header))
	for i, column := range header {
		if i >= len(record) {
			break
		}
		fields[column] = record[i]
	}

	return sourceRow{line: line, fields: fields}
}

func (row sourceRow) value(column string) (string, error) {
	value, ok := row.fields[column]
	if !ok {
		return "", &MissingColumnError{Line: row.line, Column: column}
	}

	return value, nil
}

func (row sourceRow) float(column string) (float64, error) {
	value, err := row.value(column)
	if err != nil {
		return 0, err
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, &FieldError{Line: row.line, Column: column, Value: value, Err: err}
	}

	return f, nil
}

func (row sourceRow) integer(column string) (int64, error) {
	value, err := row.value(column)
	if err != nil {
		return 0, err
	}

	i, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, &FieldError{Line: row.line, Column: column, Value: value, Err: err}
	}

	return i, nil
}

// reading converts the row, resolving its room first.
func (row sourceRow) reading(resolver *RoomResolver, loc *time.Location) (models.SensorReading, error) {
	var reading models.SensorReading

	label, err := row.value(COLUMN_ROOM)
	if err != nil {
		return reading, err
	}

	roomID, err := resolver.Resolve(label)
	if err != nil {
		return reading, fmt.Errorf("line %d: %w", row.line, err)
	}

	rawTimestamp, err := row.value(COLUMN_TIMESTAMP)
	if err != nil {
		return reading, err
	}

	temperature, err := row.float(COLUMN_TEMPERATURE)
	if err != nil {
		return reading, err
	}

	airQuality, err := row.float(COLUMN_AIR_QUALITY)
	if err != nil {
		return reading, err
	}

	daylight, err := row.float(COLUMN_DAYLIGHT)
	if err != nil {
		return reading, err
	}

	light, err := row.integer(COLUMN_LIGHT)
	if err != nil {
		return reading, err
	}

	return models.SensorReading{
		RoomID:      roomID,
		Timestamp:   models.ParseTimestamp(rawTimestamp, loc),
		Temperature: temperature,
		AirQuality:  airQuality,
		Daylight:    daylight,
		Light:       light,
	}, nil
}
