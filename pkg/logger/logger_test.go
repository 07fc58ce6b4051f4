package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_WritesJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "service.log")

	log, err := New(path, "debug")
	require.NoError(t, err)

	log.Info("booking id=%d created", 42)
	log.Debug("details")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"booking id=42 created"`)
	assert.Contains(t, string(data), `"msg":"details"`)
}

func TestNew_LevelFiltersFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.log")

	log, err := New(path, "warn")
	require.NoError(t, err)

	log.Info("skipped")
	log.Warn("kept")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "skipped")
	assert.Contains(t, string(data), "kept")
}

func TestParseLevel(t *testing.T) {
	lvl, err := parseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, lvl)

	lvl, err = parseLevel("ERROR")
	require.NoError(t, err)
	assert.Equal(t, zapcore.ErrorLevel, lvl)

	_, err = parseLevel("verbose")
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	log := NewNop()
	assert.NotPanics(t, func() {
		log.Info("x")
		log.Error("y %v", 1)
	})
	assert.NoError(t, log.Close())
}
