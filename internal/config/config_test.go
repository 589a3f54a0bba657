package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Mode)
	assert.Equal(t, "data/portal.db", cfg.Storage.Path)
	assert.Equal(t, "portal", cfg.Storage.Bucket)
	assert.Equal(t, "1", cfg.Identity.UserID)
	assert.Equal(t, "Current User", cfg.Identity.UserName)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := "server:\n  port: \"9090\"\nstorage:\n  bucket: custom\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "custom", cfg.Storage.Bucket)
	// Sections the file does not mention keep their defaults.
	assert.Equal(t, "data/portal.db", cfg.Storage.Path)
}

func TestEnvOverridesConfig(t *testing.T) {
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("IDENTITY_USER_NAME", "Commander Vega")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "Commander Vega", cfg.Identity.UserName)
}
