package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/genesis-cli/genesis/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("loud"))
}

func TestFormatLog(t *testing.T) {
	ts := time.Date(2025, 12, 30, 9, 32, 51, 0, time.UTC)
	got := formatLog(ts, slog.LevelWarn, "replay", "line 3 skipped")
	assert.Equal(t, "[2025-12-30 09:32:51] [WARN] [replay] line 3 skipped\n", got)
}

func TestLogger_WritesAboveLevel(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	l := New(dir, slog.LevelInfo)
	l.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }

	l.Debug("task", "hidden")
	l.Info("task", "added: read book")
	l.Error("store", "save failed")
	require.NoError(t, l.Close())

	content, err := os.ReadFile(domain.LogPath(dir))
	require.NoError(t, err)
	assert.Equal(t,
		"[2025-01-02 03:04:05] [INFO] [task] added: read book\n"+
			"[2025-01-02 03:04:05] [ERROR] [store] save failed\n",
		string(content))
}

func TestLogger_Disabled(t *testing.T) {
	l := New("", slog.LevelDebug)
	l.Info("task", "nothing happens")
	assert.NoError(t, l.Close())
}
