package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrz1836/xsss/internal/config"
)

func TestDefaults(t *testing.T) {
	cfg := config.Defaults()
	require.Equal(t, "~/.xsss", cfg.Home)
	require.True(t, cfg.Security.DefaultDiffusion)
	require.False(t, cfg.Security.RequireLock)
	require.Equal(t, "auto", cfg.Output.DefaultFormat)
}

func TestApplyEnvironmentOverridesHome(t *testing.T) {
	t.Setenv(config.EnvHome, "/tmp/custom-home")
	t.Setenv(config.EnvDiffusion, "false")
	t.Setenv(config.EnvRequireLock, "true")

	cfg := config.Defaults()
	config.ApplyEnvironment(cfg)

	require.Equal(t, "/tmp/custom-home", cfg.Home)
	require.False(t, cfg.Security.DefaultDiffusion)
	require.True(t, cfg.Security.RequireLock)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg := config.Defaults()
	cfg.Security.DefaultSecurityBits = 256

	require.NoError(t, config.Save(cfg, path))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 256, loaded.Security.DefaultSecurityBits)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	require.True(t, os.IsNotExist(err))
}

func TestDefaultHomeIsUnderUserHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".xsss"), config.DefaultHome())
}
