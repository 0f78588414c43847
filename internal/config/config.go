// Package config provides viper-backed configuration for kook.
//
// Sources, in priority order: command-line flags (bound by cmd), then
// KOOK_* environment variables, then .kookboek/config.yaml, then the
// defaults registered here.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// v is the package-level viper instance. Nil until Initialize runs;
// getters are nil-safe so early callers see zero values rather than a
// panic.
var v *viper.Viper

// Initialize (re)builds the viper instance. Safe to call more than
// once; tests rely on that for isolation.
func Initialize() error {
	v = viper.New()

	// Defaults
	v.SetDefault("json", false)
	v.SetDefault("quiet", false)
	v.SetDefault("verbose", false)
	v.SetDefault("export-prefix", "recepten")

	// Environment: KOOK_JSON, KOOK_EXPORT_PREFIX, ...
	v.SetEnvPrefix("KOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	// Config file: .kookboek/config.yaml, discovered by walking up from
	// the working directory. Missing file is not an error.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := FindCatalogDir(""); err == nil {
		v.AddConfigPath(dir)
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	return nil
}

// GetString returns a string config value (empty if unset or
// pre-initialization).
func GetString(key string) string {
	if v == nil {
		return ""
	}
	return v.GetString(key)
}

// GetBool returns a boolean config value (false if unset or
// pre-initialization).
func GetBool(key string) bool {
	if v == nil {
		return false
	}
	return v.GetBool(key)
}

// CatalogDirName is the per-project catalog directory, the analog of a
// browser profile's single storage slot.
const CatalogDirName = ".kookboek"

// FindCatalogDir walks up from start (or the working directory when
// empty) looking for a .kookboek directory. Returns an error when none
// is found; callers translate that into a "run kook init" hint.
func FindCatalogDir(start string) (string, error) {
	dir := start
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		dir = cwd
	}

	for d := dir; ; d = filepath.Dir(d) {
		candidate := filepath.Join(d, CatalogDirName)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}
		if d == filepath.Dir(d) {
			break
		}
	}

	return "", os.ErrNotExist
}
