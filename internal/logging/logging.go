// Package logging configures the process-wide structured logger
package logging

import (
	"io"
	"log/slog"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 28
)

// Config holds logger configuration
type Config struct {
	// Writer overrides the rotating log file. Used in tests.
	Writer io.Writer
	// Path is the log file, rotated once it grows past a few megabytes.
	Path      string
	Level     string
	Component string
}

// ParseLevel maps a config level name to a slog level. Unknown names fall
// back to info.
func ParseLevel(s string) slog.Level {
	var level slog.Level

	err := level.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(s))))
	if err != nil {
		return slog.LevelInfo
	}

	return level
}

// New creates a JSON logger writing to cfg.Writer, or to a rotating file at
// cfg.Path. The returned closer releases the file.
func New(cfg Config) (*slog.Logger, io.Closer) {
	w := cfg.Writer

	var closer io.Closer = nopCloser{}

	if w == nil {
		lj := &lumberjack.Logger{
			Filename:   cfg.Path,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
		}

		w, closer = lj, lj
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
	})

	logger := slog.New(handler)

	if cfg.Component != "" {
		logger = logger.With(slog.String("component", cfg.Component))
	}

	return logger, closer
}

// Setup creates a logger with New and installs it as the slog default.
func Setup(cfg Config) io.Closer {
	logger, closer := New(cfg)

	slog.SetDefault(logger)

	return closer
}

type nopCloser struct{}

func (nopCloser) Close() error {
	return nil
}
