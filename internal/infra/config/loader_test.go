package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/genesis-cli/genesis/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoader_Load_Defaults(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir())

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.NewDefaultConfig(), cfg)
}

func TestLoader_Load_LocalConfigOnly(t *testing.T) {
	workDir := t.TempDir()
	writeFile(t, domain.LocalConfigPath(workDir), `
[storage]
path = "store/list.txt"

[log]
level = "debug"

[ui]
prompt = "> "
no_color = true
`)

	loader := NewLoaderWithGlobalDir(workDir, t.TempDir())
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "store/list.txt", cfg.Storage.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "> ", cfg.UI.Prompt)
	assert.True(t, cfg.UI.NoColor)
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_LocalOverridesGlobal(t *testing.T) {
	workDir := t.TempDir()
	globalDir := t.TempDir()
	writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), `
[storage]
path = "/var/genesis/tasks.txt"

[log]
level = "warn"
`)
	writeFile(t, domain.LocalConfigPath(workDir), `
[log]
level = "error"
`)

	cfg, err := NewLoaderWithGlobalDir(workDir, globalDir).Load()
	require.NoError(t, err)
	assert.Equal(t, "/var/genesis/tasks.txt", cfg.Storage.Path)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoader_Load_UnknownKeysWarn(t *testing.T) {
	workDir := t.TempDir()
	writeFile(t, domain.LocalConfigPath(workDir), `
name = "x"

[storage]
path = "a.txt"
format = "json"

[colors]
primary = "red"
`)

	cfg, err := NewLoaderWithGlobalDir(workDir, t.TempDir()).Load()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"unknown section: [colors]",
		"unknown top-level key: name",
		"unknown key in [storage]: format",
	}, cfg.Warnings)
	assert.Equal(t, "a.txt", cfg.Storage.Path)
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	workDir := t.TempDir()
	writeFile(t, domain.LocalConfigPath(workDir), "[storage\npath = ")

	_, err := NewLoaderWithGlobalDir(workDir, t.TempDir()).Load()
	assert.Error(t, err)
}

func TestLoader_LoadGlobal_NoDir(t *testing.T) {
	_, err := NewLoaderWithGlobalDir(t.TempDir(), "").LoadGlobal()
	assert.ErrorIs(t, err, os.ErrNotExist)
}
