package log

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flickdash/internal/config"
)

func TestSetupLogger(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "flickdash.log")
	cfg := &config.LoggingConfig{File: logPath, Level: "DEBUG"}

	logger, err := SetupLogger(cfg)
	require.NoError(t, err)

	logger.Info("hello", "key", "value")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"key":"value"`)
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"garbage", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, levelFor(tt.in), "level for %q", tt.in)
	}
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	got, err := expandHome("~/logs/app.log")
	require.NoError(t, err)
	assert.Equal(t, "/home/tester/logs/app.log", got)

	got, err = expandHome("/var/log/app.log")
	require.NoError(t, err)
	assert.Equal(t, "/var/log/app.log", got)
}

func TestNullLogger(t *testing.T) {
	logger := NullLogger()
	assert.NotPanics(t, func() {
		logger.Info("discarded")
		logger.Error("also discarded")
	})
}
