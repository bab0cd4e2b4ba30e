package logger_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cognasim/internal/logger"
)

func TestSetup_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "cognasim.log")

	cleanup, err := logger.Setup(logger.Config{Path: path, Debug: true})
	require.NoError(t, err)
	require.NoError(t, logger.IsReady())

	logger.L().Info("replicate.done", "model", "dollo", "index", 3)
	require.NoError(t, cleanup())
	require.Error(t, logger.IsReady())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &rec))
	require.Equal(t, "replicate.done", rec["msg"])
	require.Equal(t, "dollo", rec["model"])
	require.True(t, strings.HasSuffix(rec["time"].(string), "Z"))
	require.Contains(t, rec, "source")
}

func TestSetup_TextFormatHidesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cognasim.log")

	cleanup, err := logger.Setup(logger.Config{Path: path, Format: "text"})
	require.NoError(t, err)
	logger.L().Debug("hidden")
	logger.L().Warn("shown", "k", "v")
	require.NoError(t, cleanup())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "hidden")
	require.Contains(t, string(raw), "msg=shown k=v")
}
