package types

import "strings"

// Filter selects recipes by free-text query and category tags.
//
// The text dimension is a case-insensitive substring match against name
// or ingredients. The category dimension matches when the recipe's tag
// set intersects the selected set (OR). The two dimensions combine with
// AND, and an empty dimension matches everything.
type Filter struct {
	Search     string
	Categories []string
}

// IsEmpty reports whether the filter matches every recipe.
func (f Filter) IsEmpty() bool {
	return f.Search == "" && len(f.Categories) == 0
}

// Matches applies both filter dimensions to a single recipe.
func (f Filter) Matches(r *Recipe) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(r.Name), q) &&
			!strings.Contains(strings.ToLower(r.Ingredients), q) {
			return false
		}
	}
	if len(f.Categories) > 0 {
		found := false
		for _, want := range f.Categories {
			if r.HasCategory(want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Apply returns the matching recipes in their original order. The input
// slice is never mutated; the result shares the underlying records.
func (f Filter) Apply(recipes []*Recipe) []*Recipe {
	if f.IsEmpty() {
		return append([]*Recipe(nil), recipes...)
	}
	var out []*Recipe
	for _, r := range recipes {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}
