// SPDX-License-Identifier: EPL-2.0

// Package logger configures the process-wide slog logger for the CLI. The
// library packages stay log-free; in particular nothing may log on the
// audio callback path.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Setup installs the default slog logger with the given level ("debug",
// "info", "warn", "error") and format ("text" or "json"). Unknown values
// fall back to info/text.
func Setup(level, format string) {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn", "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}
