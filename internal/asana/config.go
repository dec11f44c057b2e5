package asana

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFileName is the credentials file in the user's home directory.
const configFileName = ".asana-client"

// Config holds the credentials needed to talk to the service.
type Config struct {
	// APIKey is the personal access token.
	APIKey string `yaml:"api_key"`
}

// LoadConfig resolves credentials: the ASANA_API_KEY environment
// variable wins, otherwise ~/.asana-client is read as YAML.
func LoadConfig() (Config, error) {
	if key := os.Getenv("ASANA_API_KEY"); key != "" {
		return Config{APIKey: key}, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	path := filepath.Join(home, configFileName)
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf(
			"no credentials: set ASANA_API_KEY or create %s: %w",
			path, err,
		)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.APIKey == "" {
		return Config{}, fmt.Errorf("%s is missing api_key", path)
	}

	return cfg, nil
}
