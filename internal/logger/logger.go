// Package logger exposes a process-wide slog logger configured once at
// startup from the application config.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

var root *slog.Logger

// Initialize builds the shared logger. Level is one of debug, info, warn
// or error; format is "json" or "text". Unknown values fall back to info
// and text.
func Initialize(level, format string) {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	root = slog.New(handler)
	slog.SetDefault(root)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Get returns the shared logger, building a text/info one when Initialize
// has not run yet (tests, early startup failures).
func Get() *slog.Logger {
	if root == nil {
		Initialize("info", "text")
	}
	return root
}

// Debug logs at debug level through the shared logger.
func Debug(msg string, args ...any) {
	Get().Debug(msg, args...)
}

// Info logs at info level through the shared logger.
func Info(msg string, args ...any) {
	Get().Info(msg, args...)
}

// Warn logs at warn level through the shared logger.
func Warn(msg string, args ...any) {
	Get().Warn(msg, args...)
}

// Error logs at error level through the shared logger.
func Error(msg string, args ...any) {
	Get().Error(msg, args...)
}

// With returns a child of the shared logger carrying the given attributes.
func With(args ...any) *slog.Logger {
	return Get().With(args...)
}
