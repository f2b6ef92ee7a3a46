// Package logging configures the process-wide slog logger. The window or the
// terminal owns stdout while the game runs, so logs go to a file.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ParseLevel maps debug/info/warn/error to a slog level
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(s)))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", s, err)
	}
	return lvl, nil
}

// New returns a text logger writing to w
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Setup opens path for appending, installs a logger on it as the default and
// returns it with a close func. An empty path discards all output.
func Setup(path string, level slog.Level) (*slog.Logger, func() error, error) {
	if path == "" {
		logger := New(io.Discard, level)
		slog.SetDefault(logger)
		return logger, func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log %s: %w", path, err)
	}
	logger := New(f, level)
	slog.SetDefault(logger)
	return logger, f.Close, nil
}
