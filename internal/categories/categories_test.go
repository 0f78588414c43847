package categories

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadWithoutUserFile(t *testing.T) {
	vocab, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(vocab) != len(Builtin) {
		t.Fatalf("got %d categories, want %d", len(vocab), len(Builtin))
	}
	if vocab[0].Name != "Vlees" || vocab[len(vocab)-1].Name != "Other" {
		t.Errorf("builtin order not preserved: %v", Names(vocab))
	}
}

func TestLoadMergesUserCategories(t *testing.T) {
	dir := t.TempDir()
	content := `
[[categories]]
name = "Soep"
color = "green"

[[categories]]
name = "Vlees"
color = "purple"
`
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	vocab, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// New entry appended
	if vocab[len(vocab)-1].Name != "Soep" {
		t.Errorf("user category not appended: %v", Names(vocab))
	}
	// Built-in recolored in place, not duplicated
	count := 0
	for _, c := range vocab {
		if c.Name == "Vlees" {
			count++
			if c.Color != "purple" {
				t.Errorf("Vlees color = %q, want purple", c.Color)
			}
		}
	}
	if count != 1 {
		t.Errorf("Vlees appears %d times", count)
	}
}

func TestLoadRejectsBadToml(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("[[categories"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Error("expected parse error for malformed toml")
	}
}

func TestIsBuiltin(t *testing.T) {
	if !IsBuiltin("Other") {
		t.Error("Other should be builtin")
	}
	if IsBuiltin("Soep") {
		t.Error("Soep should not be builtin")
	}
}

func TestStyleFallback(t *testing.T) {
	vocab, _ := Load(t.TempDir())
	// Unknown tags and unknown color keywords both get the fallback;
	// just make sure lookup doesn't panic and renders the tag text.
	out := Render(vocab, "Totally-Custom")
	if out == "" {
		t.Error("Render returned empty string")
	}
}
