package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, 1888, cfg.Server.Port)
	require.Equal(t, filepath.Join("database", "projects.json"), cfg.Store.ProjectsPath())
	require.Equal(t, filepath.Join("database", "comments.json"), cfg.Store.CommentsPath())
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FileThenEnvPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "server:\n  port: 9000\nstore:\n  dir: /tmp/data\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	t.Setenv("SHOWCASE_CONFIG_PATH", path)
	t.Setenv("SHOWCASE_SERVER_PORT", "9001")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 9001, cfg.Server.Port)
	require.Equal(t, "/tmp/data", cfg.Store.Dir)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("SHOWCASE_SERVER_PORT", "not-a-port")
	_, err := Load()
	require.Error(t, err)
}
