// Package configfile reads and writes the catalog's metadata.json.
package configfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const ConfigFileName = "metadata.json"

type Config struct {
	Store        string `json:"store"`                   // Collection filename inside the catalog dir
	ExportPrefix string `json:"export_prefix,omitempty"` // Filename prefix for kook export
}

func DefaultConfig() *Config {
	return &Config{
		Store:        "recipes.json",
		ExportPrefix: "recepten",
	}
}

func ConfigPath(catalogDir string) string {
	return filepath.Join(catalogDir, ConfigFileName)
}

// Load reads metadata.json from the catalog directory. Returns nil
// (no error) when the file does not exist; callers fall back to
// DefaultConfig.
func Load(catalogDir string) (*Config, error) {
	data, err := os.ReadFile(ConfigPath(catalogDir)) // #nosec G304 - controlled path from catalog dir
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading metadata: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing metadata: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Save(catalogDir string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling metadata: %w", err)
	}

	if err := os.WriteFile(ConfigPath(catalogDir), data, 0600); err != nil {
		return fmt.Errorf("writing metadata: %w", err)
	}

	return nil
}

// StorePath returns the absolute path of the persisted collection.
func (c *Config) StorePath(catalogDir string) string {
	if c.Store == "" {
		return filepath.Join(catalogDir, "recipes.json")
	}
	return filepath.Join(catalogDir, c.Store)
}
