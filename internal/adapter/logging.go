package adapter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// SetupLogger opens the configured log file and returns a JSON logger writing
// to it, plus a function that closes the file. An empty path discards output.
func SetupLogger(cfg *LoggingConfig) (*slog.Logger, func() error, error) {
	logPath := expandHome(cfg.File)
	if logPath == "" {
		return NullLogger(), func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	level := parseLogLevel(cfg.Level)
	handler := slog.NewJSONHandler(logFile, &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
	})

	return slog.New(handler).With("app", "reel"), logFile.Close, nil
}

// WithSession tags every record of logger with a fresh run id
func WithSession(logger *slog.Logger) *slog.Logger {
	return logger.With("session", uuid.NewString())
}

// parseLogLevel converts a level name ("debug", "WARN", "error+2") to a
// slog.Level. Unknown names fall back to INFO.
func parseLogLevel(level string) slog.Level {
	level = strings.TrimSpace(level)
	if strings.EqualFold(level, "warning") {
		return slog.LevelWarn
	}

	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// NullLogger returns a logger that discards all output
func NullLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
