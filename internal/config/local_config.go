package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalConfig is the subset of config.yaml that is read directly from
// the file rather than through the viper singleton. Needed when the
// catalog directory is given explicitly via --dir and differs from the
// one viper was initialized against.
type LocalConfig struct {
	JSON         bool   `yaml:"json"`
	Quiet        bool   `yaml:"quiet"`
	ExportPrefix string `yaml:"export-prefix"`
}

// LoadLocalConfig reads and parses config.yaml from the given catalog
// directory. Returns an empty LocalConfig (not nil) if the file is
// missing or unparseable.
func LoadLocalConfig(catalogDir string) *LocalConfig {
	configPath := filepath.Join(catalogDir, "config.yaml")
	data, err := os.ReadFile(configPath) // #nosec G304 - config file path from catalogDir
	if err != nil {
		return &LocalConfig{}
	}

	var cfg LocalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return &LocalConfig{}
	}

	return &cfg
}
