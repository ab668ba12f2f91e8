//go:build unit

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/git-collab/configs"
	"github.com/lerenn/git-collab/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigPath(t *testing.T) {
	t.Cleanup(func() { ConfigPath = "" })

	ConfigPath = ""
	assert.Equal(t, config.DefaultConfigPath(), GetConfigPath())

	ConfigPath = "/tmp/custom.yaml"
	assert.Equal(t, "/tmp/custom.yaml", GetConfigPath())
}

func TestEnsureConfig(t *testing.T) {
	t.Cleanup(func() { ConfigPath, Quiet = "", false })

	ConfigPath = filepath.Join(t.TempDir(), "nested", "config.yaml")
	Quiet = true

	require.NoError(t, EnsureConfig())

	data, err := os.ReadFile(ConfigPath)
	require.NoError(t, err)
	assert.Equal(t, configs.DefaultConfigYAML, data)

	// An existing file is left untouched
	require.NoError(t, os.WriteFile(ConfigPath, []byte("root_dir: /custom\n"), 0644))
	require.NoError(t, EnsureConfig())

	data, err = os.ReadFile(ConfigPath)
	require.NoError(t, err)
	assert.Equal(t, "root_dir: /custom\n", string(data))
}

func TestNewGitCollab_FallsBackToDefaultConfig(t *testing.T) {
	t.Cleanup(func() { ConfigPath = "" })

	ConfigPath = filepath.Join(t.TempDir(), "missing.yaml")

	gc, err := NewGitCollab()
	require.NoError(t, err)
	assert.NotNil(t, gc)
}

func TestNewGitCollab_InvalidConfig(t *testing.T) {
	t.Cleanup(func() { ConfigPath = "" })

	ConfigPath = filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(ConfigPath, []byte("root_dir: [unclosed"), 0644))

	_, err := NewGitCollab()
	assert.ErrorIs(t, err, config.ErrConfigFileParse)
}
