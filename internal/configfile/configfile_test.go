package configfile

import (
	"path/filepath"
	"testing"
)

func TestLoadMissingReturnsNil(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != nil {
		t.Errorf("expected nil config for missing metadata.json, got %+v", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{Store: "recepten.json", ExportPrefix: "kookboek"}
	if err := cfg.Save(dir); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded == nil || loaded.Store != "recepten.json" || loaded.ExportPrefix != "kookboek" {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestStorePathDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg := &Config{}
	if got := cfg.StorePath(dir); got != filepath.Join(dir, "recipes.json") {
		t.Errorf("StorePath with empty Store = %q", got)
	}

	if got := DefaultConfig().StorePath(dir); got != filepath.Join(dir, "recipes.json") {
		t.Errorf("default StorePath = %q", got)
	}
}
