// Package categories holds the category vocabulary used for tagging and
// filtering recipes. A fixed built-in list ships with the binary; users
// can extend or recolor it through .kookboek/categories.toml.
package categories

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
)

// Category defines one vocabulary entry.
type Category struct {
	Name  string `toml:"name" json:"name"`   // Display name (e.g., "Vegetarisch")
	Color string `toml:"color" json:"color"` // Color keyword: red, blue, green, purple, orange
}

// Builtin is the fixed vocabulary, in display order. Free-form tags
// outside this list are allowed on recipes; they render in the default
// color.
var Builtin = []Category{
	{Name: "Vlees", Color: "red"},
	{Name: "Vis", Color: "blue"},
	{Name: "Vegetarisch", Color: "green"},
	{Name: "Voorgerecht", Color: "orange"},
	{Name: "Toetje", Color: "orange"},
	{Name: "Bijgerecht", Color: "orange"},
	{Name: "Thomas", Color: "purple"},
	{Name: "Other", Color: "orange"},
}

// Color keyword → adaptive terminal style. Orange doubles as the
// fallback for unknown keywords and free-form tags.
var styles = map[string]lipgloss.Style{
	"red": lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#c41d1d", Dark: "#f07178",
	}),
	"blue": lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#399ee6", Dark: "#59c2ff",
	}),
	"green": lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#86b300", Dark: "#c2d94c",
	}),
	"purple": lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#a37acc", Dark: "#d2a6ff",
	}),
	"orange": lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#f2ae49", Dark: "#ffb454",
	}),
}

// ConfigFileName is the optional user vocabulary file inside the
// catalog directory.
const ConfigFileName = "categories.toml"

// userCategories is the on-disk shape of categories.toml:
//
//	[[categories]]
//	name = "Soep"
//	color = "green"
type userCategories struct {
	Categories []Category `toml:"categories"`
}

// Load returns the merged vocabulary for a catalog directory: built-ins
// first, then user entries. A user entry with a built-in name overrides
// its color in place rather than duplicating it.
func Load(catalogDir string) ([]Category, error) {
	result := append([]Category(nil), Builtin...)

	path := filepath.Join(catalogDir, ConfigFileName)
	data, err := os.ReadFile(path) // #nosec G304 -- path is constructed from the catalog dir
	if os.IsNotExist(err) {
		return result, nil // No user vocabulary, that's fine
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", ConfigFileName, err)
	}

	var user userCategories
	if err := toml.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("parse %s: %w", ConfigFileName, err)
	}

	for _, uc := range user.Categories {
		uc.Name = strings.TrimSpace(uc.Name)
		if uc.Name == "" {
			continue
		}
		replaced := false
		for i, c := range result {
			if strings.EqualFold(c.Name, uc.Name) {
				if uc.Color != "" {
					result[i].Color = uc.Color
				}
				replaced = true
				break
			}
		}
		if !replaced {
			result = append(result, uc)
		}
	}

	return result, nil
}

// Names returns the vocabulary names in display order.
func Names(vocab []Category) []string {
	names := make([]string, len(vocab))
	for i, c := range vocab {
		names[i] = c.Name
	}
	return names
}

// IsBuiltin returns true if the name is part of the fixed vocabulary.
func IsBuiltin(name string) bool {
	for _, c := range Builtin {
		if c.Name == name {
			return true
		}
	}
	return false
}

// Style returns the terminal style for a category name, looked up in
// the given vocabulary. Unknown tags get the fallback style.
func Style(vocab []Category, name string) lipgloss.Style {
	for _, c := range vocab {
		if c.Name == name {
			if s, ok := styles[c.Color]; ok {
				return s
			}
			break
		}
	}
	return styles["orange"]
}

// Render formats a category tag for terminal output.
func Render(vocab []Category, name string) string {
	return Style(vocab, name).Render("[" + name + "]")
}
