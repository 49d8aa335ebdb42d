package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/genesis-cli/genesis/internal/app"
	"github.com/genesis-cli/genesis/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newConfigTestContainer creates an app.Container with real config infrastructure.
// The global config directory is isolated under a temporary XDG_CONFIG_HOME.
func newConfigTestContainer(t *testing.T) (*app.Container, string, string) {
	t.Helper()

	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	dir := t.TempDir()

	c, err := app.New(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	return c, dir, configHome
}

func TestConfigCommand_NoSubcommand_ShowsHelp(t *testing.T) {
	c, _, _ := newConfigTestContainer(t)

	stdout, _, err := runRoot(t, c, "", "config")

	require.NoError(t, err)
	assert.Contains(t, stdout, "show")
	assert.Contains(t, stdout, "init")
}

func TestConfigShow_Defaults(t *testing.T) {
	c, dir, configHome := newConfigTestContainer(t)

	stdout, _, err := runRoot(t, c, "", "config", "show")

	require.NoError(t, err)
	assert.Contains(t, stdout, "[Loaded from]")
	assert.Contains(t, stdout, filepath.Join(configHome, "genesis", "config.toml")+" (not found)")
	assert.Contains(t, stdout, domain.LocalConfigPath(dir)+" (not found)")
	assert.Contains(t, stdout, "[Effective Config]")
	assert.Contains(t, stdout, "data/tasks.txt")
}

func TestConfigInit_Local(t *testing.T) {
	c, dir, _ := newConfigTestContainer(t)

	stdout, _, err := runRoot(t, c, "", "config", "init")

	require.NoError(t, err)
	path := domain.LocalConfigPath(dir)
	assert.Equal(t, "Created config: "+path+"\n", stdout)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[storage]")

	// A second init never overwrites.
	_, _, err = runRoot(t, c, "", "config", "init")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigExists)
}

func TestConfigInit_Global(t *testing.T) {
	c, _, configHome := newConfigTestContainer(t)

	stdout, _, err := runRoot(t, c, "", "config", "init", "--global")

	require.NoError(t, err)
	path := filepath.Join(configHome, "genesis", "config.toml")
	assert.Contains(t, stdout, path)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestConfigTemplate(t *testing.T) {
	c, dir, _ := newConfigTestContainer(t)
	// Local settings do not leak into the template.
	require.NoError(t, os.WriteFile(domain.LocalConfigPath(dir), []byte("[storage]\npath = \"x.txt\"\n"), 0o600))

	stdout, _, err := runRoot(t, c, "", "config", "template")

	require.NoError(t, err)
	assert.Contains(t, stdout, "# genesis configuration")
	assert.Contains(t, stdout, domain.DefaultDataPath)
	assert.NotContains(t, stdout, "x.txt")
}
