package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pvdberg/kookboek/internal/types"
)

func TestWriteJSONPrettyArray(t *testing.T) {
	var buf bytes.Buffer
	err := WriteJSON(&buf, []*types.Recipe{
		{ID: "r-1", Name: "Soup", Categories: []string{"Other"}},
	})
	if err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "[\n") {
		t.Errorf("export should be a pretty-printed array, got %q", out[:min(20, len(out))])
	}
	if !strings.Contains(out, "\n  {") {
		t.Error("expected 2-space indent")
	}
	if !strings.Contains(out, `"name": "Soup"`) {
		t.Error("record fields missing from export")
	}
}

func TestWriteJSONEmptyCollection(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, nil); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("empty export = %q, want []", buf.String())
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	if got := Filename("recepten", now); got != "recepten-2026-08-29.json" {
		t.Errorf("Filename = %q", got)
	}
	if got := Filename("", now); got != "recepten-2026-08-29.json" {
		t.Errorf("Filename with empty prefix = %q", got)
	}
	if got := Filename("kookboek", now); got != "kookboek-2026-08-29.json" {
		t.Errorf("Filename custom prefix = %q", got)
	}
}

func TestToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := ToFile(path, []*types.Recipe{{ID: "r-1", Name: "Soup"}}); err != nil {
		t.Fatalf("ToFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"id": "r-1"`) {
		t.Error("export file missing record")
	}
}
