package infrastructure

import (
	"bufio"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"samplegen/internal/config"
)

func TestInitializeLogger_FileOutput(t *testing.T) {
	ResetLoggerForTesting()
	t.Cleanup(ResetLoggerForTesting)

	logPath := filepath.Join(t.TempDir(), "logs", "samplegen.log")

	logger, err := InitializeLogger(config.LoggingConfig{
		Level:    "debug",
		Output:   "file",
		FilePath: logPath,
	})
	require.NoError(t, err)
	require.NotNil(t, logger)

	logger.Info("datasets written", slog.Int("count", 5))
	logger.Debug("debug detail")
	require.NoError(t, CloseLogFile())

	f, err := os.Open(logPath)
	require.NoError(t, err)
	defer f.Close()

	var lines []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		lines = append(lines, entry)
	}
	require.NoError(t, scanner.Err())
	require.Len(t, lines, 2)

	assert.Equal(t, "datasets written", lines[0]["msg"])
	assert.Equal(t, float64(5), lines[0]["count"])
	assert.Equal(t, "DEBUG", lines[1]["level"])
}

func TestInitializeLogger_Once(t *testing.T) {
	ResetLoggerForTesting()
	t.Cleanup(ResetLoggerForTesting)

	first, err := InitializeLogger(config.LoggingConfig{Level: "info", Output: "stdout"})
	require.NoError(t, err)

	second, err := InitializeLogger(config.LoggingConfig{Level: "error", Output: "stdout"})
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestGetLogger_Uninitialized(t *testing.T) {
	ResetLoggerForTesting()
	t.Cleanup(ResetLoggerForTesting)

	assert.NotNil(t, GetLogger())
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"DEBUG", slog.LevelDebug},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogLevel(tt.input))
		})
	}
}

func TestWithComponent(t *testing.T) {
	ResetLoggerForTesting()
	t.Cleanup(ResetLoggerForTesting)

	logPath := filepath.Join(t.TempDir(), "component.log")
	logger, err := InitializeLogger(config.LoggingConfig{
		Level:    "info",
		Output:   "file",
		FilePath: logPath,
	})
	require.NoError(t, err)

	WithComponent(logger, "generator").Info("starting")
	require.NoError(t, CloseLogFile())

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(content, &entry))
	assert.Equal(t, "generator", entry["component"])
}
