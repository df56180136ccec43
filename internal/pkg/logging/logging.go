// Package logging configures the application-wide slog logger.
// Console output uses the tint handler with color when attached to a
// terminal; otherwise a plain text handler is used so piped output stays
// machine-friendly.
package logging

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// NewLogger builds a slog.Logger writing to stderr at the given level.
// Accepted levels are "debug", "info", "warn" and "error"; anything else
// falls back to info.
func NewLogger(level string) *slog.Logger {
	lvl := parseLevel(level)

	if isatty.IsTerminal(os.Stderr.Fd()) {
		return slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: lvl}))
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
