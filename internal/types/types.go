// Package types defines core data structures for the kook recipe catalog.
package types

import (
	"fmt"
	"strings"
	"time"
)

// SourceType distinguishes where a recipe came from.
type SourceType string

const (
	// SourceOnline means the recipe points at a URL.
	SourceOnline SourceType = "online"
	// SourceBook means the recipe cites a cookbook (title/author/page).
	SourceBook SourceType = "book"
)

// IsValid returns true for the two known source types.
func (s SourceType) IsValid() bool {
	return s == SourceOnline || s == SourceBook
}

// DefaultCategory is assigned whenever a recipe would otherwise have no
// categories. The collection invariant is that categories is never empty
// after a successful commit.
const DefaultCategory = "Other"

// Recipe is the sole persisted entity. JSON field names match the
// persisted layout of the original catalog exactly, so exports from
// older installations import verbatim and round-trip.
//
// CreatedAt is carried as an RFC 3339 string rather than time.Time:
// JSON import is permissive by contract and legacy data may hold
// arbitrary strings in this field.
type Recipe struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Categories   []string   `json:"categories"`
	SourceType   SourceType `json:"sourceType"`
	SourceURL    string     `json:"sourceUrl"`
	BookTitle    string     `json:"bookTitle"`
	BookAuthor   string     `json:"bookAuthor"`
	BookPage     string     `json:"bookPage"`
	Ingredients  string     `json:"ingredients"`
	Instructions string     `json:"instructions"`
	PrepTime     string     `json:"prepTime"`
	CookTime     string     `json:"cookTime"`
	Servings     string     `json:"servings"`
	Guests       string     `json:"guests"`
	Notes        string     `json:"notes"`
	CreatedAt    string     `json:"createdAt"`
}

// Validate checks the minimal commit requirements. Name is the only
// required field; everything else is free-form by design.
func (r *Recipe) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// SetDefaults applies defaulting rules exactly once, at the commit
// boundary:
//   - Categories: defaults to [Other] if empty
//   - SourceType: defaults to online if unset or unrecognized
func (r *Recipe) SetDefaults() {
	if len(r.Categories) == 0 {
		r.Categories = []string{DefaultCategory}
	}
	if !r.SourceType.IsValid() {
		r.SourceType = SourceOnline
	}
}

// CreatedTime parses CreatedAt as RFC 3339. Returns the zero time for
// legacy or malformed values; callers treat that as "unknown".
func (r *Recipe) CreatedTime() time.Time {
	t, err := time.Parse(time.RFC3339, r.CreatedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}

// HasCategory reports whether the recipe carries the given tag.
func (r *Recipe) HasCategory(cat string) bool {
	for _, c := range r.Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// SourceLabel renders the source attribution for display: the URL for
// online recipes, "title — author (p. N)" for book recipes.
func (r *Recipe) SourceLabel() string {
	if r.SourceType == SourceBook {
		label := r.BookTitle
		if r.BookAuthor != "" {
			label += " — " + r.BookAuthor
		}
		if r.BookPage != "" {
			label += fmt.Sprintf(" (p. %s)", r.BookPage)
		}
		return label
	}
	return r.SourceURL
}

// Clone returns a deep copy. Categories is the only reference field.
func (r *Recipe) Clone() *Recipe {
	c := *r
	if r.Categories != nil {
		c.Categories = append([]string(nil), r.Categories...)
	}
	return &c
}
