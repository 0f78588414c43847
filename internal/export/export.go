// Package export produces the catalog's interchange file: a verbatim,
// pretty-printed JSON dump of the whole collection. The output is the
// exact input format of the JSON importer, so export → import is an
// identity on the records.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pvdberg/kookboek/internal/types"
)

// WriteJSON writes the collection as a 2-space-indented JSON array.
// No filtering, no transformation; an empty collection writes "[]".
func WriteJSON(w io.Writer, recipes []*types.Recipe) error {
	if recipes == nil {
		recipes = []*types.Recipe{}
	}
	data, err := json.MarshalIndent(recipes, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing collection: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}

// Filename builds the default export filename:
// <prefix>-<ISO-date>.json, e.g. recepten-2026-08-29.json.
func Filename(prefix string, now time.Time) string {
	if prefix == "" {
		prefix = "recepten"
	}
	return fmt.Sprintf("%s-%s.json", prefix, now.Format("2006-01-02"))
}

// ToFile writes the export to path, creating or truncating it.
func ToFile(path string, recipes []*types.Recipe) error {
	f, err := os.Create(path) // #nosec G304 - user-provided output path is intentional
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	if err := WriteJSON(f, recipes); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
