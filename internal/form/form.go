// Package form manages the transient draft used to create or edit one
// recipe, and commits it into the store.
package form

import (
	"context"
	"fmt"
	"strings"

	"github.com/pvdberg/kookboek/internal/storage"
	"github.com/pvdberg/kookboek/internal/types"
)

// ValidationError reports a draft that fails the minimal commit
// requirements. The draft is left untouched so the user can correct it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Draft mirrors the Recipe shape without id/createdAt; those are
// assigned (or carried forward) at commit time.
type Draft struct {
	Name         string
	Categories   []string
	SourceType   types.SourceType
	SourceURL    string
	BookTitle    string
	BookAuthor   string
	BookPage     string
	Ingredients  string
	Instructions string
	PrepTime     string
	CookTime     string
	Servings     string
	Guests       string
	Notes        string
}

// emptyDraft is the reset state: online source, nothing else.
func emptyDraft() Draft {
	return Draft{SourceType: types.SourceOnline}
}

// State is the form's lifecycle state. There are exactly two: Closed,
// and Open (with or without an editing id).
type State int

const (
	Closed State = iota
	Open
)

// Form owns the single live draft. One instance exists per command
// invocation; it is not safe for concurrent use.
type Form struct {
	store     storage.Store
	state     State
	editingID string
	draft     Draft
}

func New(store storage.Store) *Form {
	return &Form{store: store, draft: emptyDraft()}
}

func (f *Form) State() State { return f.state }

// EditingID returns the id being edited, or "" for a new recipe.
func (f *Form) EditingID() string { return f.editingID }

// Draft returns a pointer to the live draft for field binding.
func (f *Form) Draft() *Draft { return &f.draft }

// OpenNew transitions to Open with an empty draft.
func (f *Form) OpenNew() {
	f.draft = emptyDraft()
	f.editingID = ""
	f.state = Open
}

// BeginEdit loads an existing record into the draft and transitions to
// Open. Categories default to [Other] here as well: legacy records may
// miss them entirely.
func (f *Form) BeginEdit(r *types.Recipe) {
	cats := append([]string(nil), r.Categories...)
	if len(cats) == 0 {
		cats = []string{types.DefaultCategory}
	}
	f.draft = Draft{
		Name:         r.Name,
		Categories:   cats,
		SourceType:   r.SourceType,
		SourceURL:    r.SourceURL,
		BookTitle:    r.BookTitle,
		BookAuthor:   r.BookAuthor,
		BookPage:     r.BookPage,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		PrepTime:     r.PrepTime,
		CookTime:     r.CookTime,
		Servings:     r.Servings,
		Guests:       r.Guests,
		Notes:        r.Notes,
	}
	f.editingID = r.ID
	f.state = Open
}

// Reset discards the draft and closes the form (explicit cancel).
func (f *Form) Reset() {
	f.draft = emptyDraft()
	f.editingID = ""
	f.state = Closed
}

// Submit validates and commits the draft. On success the committed
// recipe is returned and the form resets and closes; on failure the
// draft and the form state are unchanged.
func (f *Form) Submit(ctx context.Context) (*types.Recipe, error) {
	if strings.TrimSpace(f.draft.Name) == "" {
		return nil, &ValidationError{Field: "name", Reason: "a recipe name is required"}
	}

	recipe := f.draft.recipe()
	recipe.SetDefaults()

	if f.editingID != "" {
		recipe.ID = f.editingID
		if err := f.store.UpdateRecipe(ctx, recipe); err != nil {
			return nil, err
		}
	} else {
		if err := f.store.CreateRecipe(ctx, recipe); err != nil {
			return nil, err
		}
	}

	f.Reset()
	return recipe, nil
}

func (d *Draft) recipe() *types.Recipe {
	return &types.Recipe{
		Name:         d.Name,
		Categories:   append([]string(nil), d.Categories...),
		SourceType:   d.SourceType,
		SourceURL:    d.SourceURL,
		BookTitle:    d.BookTitle,
		BookAuthor:   d.BookAuthor,
		BookPage:     d.BookPage,
		Ingredients:  d.Ingredients,
		Instructions: d.Instructions,
		PrepTime:     d.PrepTime,
		CookTime:     d.CookTime,
		Servings:     d.Servings,
		Guests:       d.Guests,
		Notes:        d.Notes,
	}
}
