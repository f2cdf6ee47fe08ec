package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"hgbridge/internal/config"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// a missing file is fine; defaults and env apply
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nonexistent.yml"))
	require.NoError(t, err)
	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, "ssh", cfg.SSH.Command)
	require.Equal(t, ".hgsub", cfg.Subrepos.MapFile)
	require.Equal(t, ".hgsubstate", cfg.Subrepos.StateFile)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := "environment: production\nssh:\n  command: /usr/bin/ssh\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "/usr/bin/ssh", cfg.SSH.Command)
}

func TestLoadMalformedFile(t *testing.T) {
	// a file that exists but does not parse must error, not silently
	// fall back to defaults
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("environment: [unclosed\n"), 0o600))

	_, err := config.Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "could not read config")
}
