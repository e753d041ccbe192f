package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/havfo/reversi-board/internal/log"
)

func TestSetupLoggerRejectsBadLevel(t *testing.T) {
	_, err := setupLogger("chatty", "")
	assert.Error(t, err)
}

func TestSetupLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reversi.log")

	closeLog, err := setupLogger("debug", path)
	require.NoError(t, err)
	defer log.SetDefaultLogger(log.Discard())

	log.Debug("hello %d", 42)
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"Log level set to debug"`)
	assert.Contains(t, string(data), `"msg":"hello 42"`)
}

func TestSetupLoggerBadPath(t *testing.T) {
	_, err := setupLogger("info", filepath.Join(t.TempDir(), "missing", "reversi.log"))
	assert.Error(t, err)
}
