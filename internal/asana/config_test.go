package asana

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLoadConfigFromEnv verifies the environment variable wins over
// any config file.
func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("ASANA_API_KEY", "env-token")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "env-token", cfg.APIKey)
}

// TestLoadConfigFromFile verifies the YAML dotfile path.
func TestLoadConfigFromFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("ASANA_API_KEY", "")

	path := filepath.Join(home, configFileName)
	err := os.WriteFile(
		path, []byte("api_key: file-token\n"), 0o600,
	)
	require.NoError(t, err)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "file-token", cfg.APIKey)
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ASANA_API_KEY", "")

	_, err := LoadConfig()
	require.Error(t, err)
	require.Contains(t, err.Error(), "ASANA_API_KEY")
}

func TestLoadConfigMissingKey(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("ASANA_API_KEY", "")

	path := filepath.Join(home, configFileName)
	err := os.WriteFile(path, []byte("api_key: \"\"\n"), 0o600)
	require.NoError(t, err)

	_, err = LoadConfig()
	require.Error(t, err)
	require.Contains(t, err.Error(), "api_key")
}

func TestLoadConfigBadYAML(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("ASANA_API_KEY", "")

	path := filepath.Join(home, configFileName)
	err := os.WriteFile(path, []byte(":\t not yaml"), 0o600)
	require.NoError(t, err)

	_, err = LoadConfig()
	require.Error(t, err)
}
