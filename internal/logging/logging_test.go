package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bagdasarian/users-service/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: " warning ", want: slog.LevelWarn},
		{input: "warn", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "", want: slog.LevelInfo},
		{input: "verbose", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("json в stdout", func(t *testing.T) {
		var buf bytes.Buffer

		logger, closer, err := newWithWriter(config.LogConfig{Level: "info", Format: "json"}, &buf)
		require.NoError(t, err)
		defer closer.Close()

		logger.Debug("hidden")
		logger.Info("user created", "email", "logan@gmail.com")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "user created", entry["msg"])
		assert.Equal(t, "logan@gmail.com", entry["email"])
		assert.Equal(t, "users", entry["service"])
	})

	t.Run("запись в файл при заданном Dir", func(t *testing.T) {
		var buf bytes.Buffer
		dir := filepath.Join(t.TempDir(), "logs")

		logger, closer, err := newWithWriter(config.LogConfig{Level: "debug", Dir: dir}, &buf)
		require.NoError(t, err)

		logger.Debug("recreating database")
		require.NoError(t, closer.Close())

		data, err := os.ReadFile(filepath.Join(dir, logFileName))
		require.NoError(t, err)
		assert.Contains(t, string(data), "recreating database")
		assert.Contains(t, buf.String(), "recreating database")
	})
}
