// Package log builds the file-backed slog logger. The TUI owns
// stdout, so a log file is the only sink.
package log

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"flickdash/internal/config"
)

var levelNames = map[string]slog.Level{
	"DEBUG":   slog.LevelDebug,
	"INFO":    slog.LevelInfo,
	"WARN":    slog.LevelWarn,
	"WARNING": slog.LevelWarn,
	"ERROR":   slog.LevelError,
}

// SetupLogger opens the configured log file (creating its directory)
// and returns a JSON logger at the configured level.
func SetupLogger(cfg *config.LoggingConfig) (*slog.Logger, error) {
	path, err := expandHome(cfg.File)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	handler := slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level: levelFor(cfg.Level),
	})
	return slog.New(handler), nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// levelFor maps a config level name to slog, defaulting to info
func levelFor(name string) slog.Level {
	if lvl, ok := levelNames[strings.ToUpper(name)]; ok {
		return lvl
	}
	return slog.LevelInfo
}

// NullLogger returns a logger that discards everything
func NullLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
