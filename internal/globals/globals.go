package globals

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/monorkin/room-history-import/internal/config"
)

var (
	// Global instances
	Settings *config.Settings
	Logger   *slog.Logger

	// Ensure initialization happens only once
	initOnce sync.Once
	initErr  error
)

// Initialize sets up the logger and loads settings from settingsPath exactly
// once. An empty settingsPath means the default location.
func Initialize(verbose bool, settingsPath string) error {
	initOnce.Do(func() {
		setupLogger(os.Stderr, verbose)

		if settingsPath == "" {
			settingsPath = config.DefaultSettingsPath()
		}

		Logger.Debug("Loading settings", "path", settingsPath)

		Settings, initErr = config.LoadOrEmptySettings(settingsPath)
		if initErr != nil {
			Logger.Error("Failed to load settings", "path", settingsPath, "error", initErr)
			return
		}

		Logger.Debug("Global initialization completed", "verbose", verbose)
	})

	return initErr
}

// setupLogger configures the global logger
func setupLogger(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	Logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))

	// Set as default logger
	slog.SetDefault(Logger)
}

// MustBeInitialized panics if globals haven't been initialized
func MustBeInitialized() {
	if Settings == nil || Logger == nil {
		panic("globals not initialized - call globals.Initialize() first")
	}
}
