package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	gormlogger "gorm.io/gorm/logger"
)

type slogWriter struct {
	logger *slog.Logger
	level  slog.Level
}

func (w slogWriter) Printf(format string, args ...any) {
	w.logger.Log(context.Background(), w.level, fmt.Sprintf(format, args...), "component", "gorm")
}

// NewLogger routes gorm's logging into logger. SQL tracing is only enabled
// when logger has debug output turned on.
func NewLogger(logger *slog.Logger) gormlogger.Interface {
	if logger == nil {
		return gormlogger.Discard
	}

	writer := slogWriter{logger: logger, level: slog.LevelWarn}
	level := gormlogger.Warn
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		writer.level = slog.LevelDebug
		level = gormlogger.Info
	}

	return gormlogger.New(writer, gormlogger.Config{
		SlowThreshold:             time.Second,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
