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

	"github.com/samdwyer/guildsim/internal/errors"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
		ok    bool
	}{
		{"DEBUG", slog.LevelDebug, true},
		{"info", slog.LevelInfo, true},
		{"", slog.LevelInfo, true},
		{"WARNING", slog.LevelWarn, true},
		{"warn", slog.LevelWarn, true},
		{"ERROR", slog.LevelError, true},
		{"LOUD", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		got, ok := parseLevel(tt.input)
		assert.Equal(t, tt.want, got, tt.input)
		assert.Equal(t, tt.ok, ok, tt.input)
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Config{}.Validate())
	assert.NoError(t, Config{Level: "debug", Format: "JSON"}.Validate())

	err := Config{Level: "LOUD", Format: "xml"}.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "format")
	assert.Contains(t, err.Error(), "level")
}

func TestNewConsoleOnly(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := New(Config{Level: "WARN", Format: "json", Console: &buf})
	require.NoError(t, err)
	defer closer.Close()

	logger.Info("hidden")
	logger.Warn("shown", "floor", 4)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "shown", record["msg"])
	assert.Equal(t, float64(4), record["floor"])
}

func TestNewWithFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "guildsim.log")

	logger, closer, err := New(Config{Level: "DEBUG", Console: &buf, FilePath: path})
	require.NoError(t, err)

	logger.With("composition", "Warrior").Debug("floor cleared", "floor", 2)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "floor cleared")
	assert.Contains(t, string(data), "composition=Warrior")
	assert.Contains(t, buf.String(), "floor cleared")
}

func TestNewRejectsBadConfig(t *testing.T) {
	_, _, err := New(Config{Format: "xml"})
	assert.True(t, errors.IsInvalidArgument(err))
}
