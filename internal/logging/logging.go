// Package logging configures the process-wide slog logger for the
// fooder server. Every subsystem logs through a child logger tagged
// with a component attribute so one request can be traced across the
// HTTP layer, the scraper, and the websocket hub.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup creates a text logger on stderr at the given level, sets it as
// the default, and returns it. The level comes from FOODER_LOG_LEVEL;
// an empty or unrecognized value falls back to info, and unrecognized
// non-empty values get a warning so typos don't silently drop debug
// output from the scraper.
func Setup(level string) *slog.Logger {
	lvl, known := parseLevel(level)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: lvl,
	}))
	slog.SetDefault(logger)

	if !known && strings.TrimSpace(level) != "" {
		logger.Warn("unrecognized log level, using info", "value", level)
	}
	return logger
}

// Component returns a child logger tagged for one part of the server,
// e.g. "scraper" or "websocket".
func Component(logger *slog.Logger, name string) *slog.Logger {
	return logger.With(slog.String("component", name))
}

func parseLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}
