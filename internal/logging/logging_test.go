package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/swipedeck/internal/config"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "deck.log")

	logger, err := New(config.LogConfig{Path: path, Level: "info"}, false)
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("card rendered")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"card rendered"`)
	require.NotContains(t, string(data), "hidden")
}

func TestVerboseEnablesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.log")

	logger, err := New(config.LogConfig{Path: path, Level: "warn"}, true)
	require.NoError(t, err)
	logger.Debug("gesture step")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(data), "gesture step"))
}

func TestBadLevel(t *testing.T) {
	_, err := New(config.LogConfig{Path: filepath.Join(t.TempDir(), "x.log"), Level: "chatty"}, false)
	require.Error(t, err)
}

func TestEmptyPathIsNop(t *testing.T) {
	logger, err := New(config.LogConfig{}, false)
	require.NoError(t, err)
	logger.Info("dropped")
}
