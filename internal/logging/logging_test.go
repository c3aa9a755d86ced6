package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "typereader.log")
	logger, err := New(Options{Path: path, Debug: true})
	require.NoError(t, err)

	logger.Debug("chunk loaded", zap.Int("chunk", 3))
	logger.Info("chunk complete", zap.String("book", "b.txt"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	require.True(t, strings.Contains(out, `"msg":"chunk loaded"`), out)
	require.True(t, strings.Contains(out, `"chunk":3`), out)
	require.True(t, strings.Contains(out, `"book":"b.txt"`), out)
}

func TestNewInfoLevelDropsDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typereader.log")
	logger, err := New(Options{Path: path})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("shown")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(data), "hidden")
	require.Contains(t, string(data), "shown")
}

func TestNewWithoutPathIsNop(t *testing.T) {
	logger, err := New(Options{})
	require.NoError(t, err)
	require.NotNil(t, logger)
	logger.Info("discarded")
}
