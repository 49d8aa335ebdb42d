package usecase

import (
	"context"
	"os"
	"testing"

	"github.com/genesis-cli/genesis/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowLogs_Execute_Success(t *testing.T) {
	// Setup
	logDir := t.TempDir()
	logContent := "line1\nline2\nline3\nline4\nline5\n"
	logPath := domain.LogPath(logDir)
	require.NoError(t, os.WriteFile(logPath, []byte(logContent), 0644))

	uc := NewShowLogs(logDir)

	// Execute
	out, err := uc.Execute(context.Background(), ShowLogsInput{})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, logPath, out.LogPath)
	assert.Equal(t, "line1\nline2\nline3\nline4\nline5", out.Content)
}

func TestShowLogs_Execute_WithLines(t *testing.T) {
	logDir := t.TempDir()
	require.NoError(t, os.WriteFile(domain.LogPath(logDir), []byte("line1\nline2\nline3\nline4\nline5\n"), 0644))

	uc := NewShowLogs(logDir)

	out, err := uc.Execute(context.Background(), ShowLogsInput{Lines: 2})

	require.NoError(t, err)
	assert.Equal(t, "line4\nline5", out.Content)
}

func TestShowLogs_Execute_MoreLinesThanFile(t *testing.T) {
	logDir := t.TempDir()
	require.NoError(t, os.WriteFile(domain.LogPath(logDir), []byte("only\n"), 0644))

	uc := NewShowLogs(logDir)

	out, err := uc.Execute(context.Background(), ShowLogsInput{Lines: 10})

	require.NoError(t, err)
	assert.Equal(t, "only", out.Content)
}

func TestShowLogs_Execute_NoLogFile(t *testing.T) {
	uc := NewShowLogs(t.TempDir())

	out, err := uc.Execute(context.Background(), ShowLogsInput{})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrNoLogFile)
}
