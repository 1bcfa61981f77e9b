// Package log provides structured logging for go-skinview.
// It wraps slog behind a mutable level so the preview server can be
// re-leveled from config without rebuilding handlers.
package log

import (
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	logger *slog.Logger
	level  slog.LevelVar
	once   sync.Once
)

// Init installs the global handler and sets the log level.
// Later calls only adjust the level; the handler is built once.
// Valid levels: "debug", "info", "warn", "error".
func Init(lvl string) {
	level.Set(parseLevel(lvl))
	once.Do(func() {
		opts := &slog.HandlerOptions{
			Level: &level,
		}

		var h slog.Handler
		if os.Getenv("SKINVIEW_LOG_FORMAT") == "json" {
			h = slog.NewJSONHandler(os.Stdout, opts)
		} else {
			h = slog.NewTextHandler(os.Stdout, opts)
		}

		logger = slog.New(h)
		slog.SetDefault(logger)
	})
}

// parseLevel maps a level name to its slog level; unknown names get info.
func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// L returns the global logger instance.
func L() *slog.Logger {
	if logger == nil {
		Init("info")
	}
	return logger
}

// Debug logs at debug level.
func Debug(msg string, args ...any) {
	L().Debug(msg, args...)
}

// Info logs at info level.
func Info(msg string, args ...any) {
	L().Info(msg, args...)
}

// Warn logs at warn level.
func Warn(msg string, args ...any) {
	L().Warn(msg, args...)
}

// Error logs at error level.
func Error(msg string, args ...any) {
	L().Error(msg, args...)
}

// With returns a logger with the given attributes.
func With(args ...any) *slog.Logger {
	return L().With(args...)
}
