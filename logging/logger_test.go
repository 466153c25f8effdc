package logging

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_ConsoleOnly(t *testing.T) {
	var console bytes.Buffer
	logger, err := NewLogger(&console, "")
	require.NoError(t, err)

	logger.Logf("Sizes: V1: %d V2: %d", 3, 4)
	logger.Log("file only")
	logger.Error("ignored", errors.New("no sink"))
	require.NoError(t, logger.Close())

	assert.Equal(t, "Sizes: V1: 3 V2: 4\n", console.String())
}

func TestLogger_WritesLogFile(t *testing.T) {
	var console bytes.Buffer
	logFile := filepath.Join(t.TempDir(), "main-log.txt")
	logger, err := NewLogger(&console, logFile)
	require.NoError(t, err)

	logger.Logf("Writing V1 vectors")
	logger.Log("wrote set", "path", "vectors_1.txt", "size", 3)
	logger.Error("write failed", errors.New("disk full"))
	require.NoError(t, logger.Close())

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), `msg="Writing V1 vectors"`)
	assert.Contains(t, string(content), "path=vectors_1.txt size=3")
	assert.Contains(t, string(content), `err="disk full"`)
	assert.Equal(t, "Writing V1 vectors\n", console.String())
}

func TestLogger_UnopenableLogFile(t *testing.T) {
	_, err := NewLogger(&bytes.Buffer{}, filepath.Join(t.TempDir(), "missing", "log.txt"))

	assert.Error(t, err)
}
