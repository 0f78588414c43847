package importer

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/pvdberg/kookboek/internal/storage/jsonfile"
	"github.com/pvdberg/kookboek/internal/types"
)

func newTestStore(t *testing.T) *jsonfile.Store {
	t.Helper()
	s, err := jsonfile.Open(filepath.Join(t.TempDir(), "recipes.json"))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestImportJSONMergesArray(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	payload := `[
	  {"id": "r-1", "name": "Tomato Soup", "categories": ["Vegetarisch"], "createdAt": "2024-01-01T00:00:00Z"},
	  {"name": "Nameless fields are fine too"}
	]`
	res, err := ImportJSON(ctx, store, []byte(payload))
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if res.Imported != 2 {
		t.Errorf("imported %d, want 2", res.Imported)
	}

	got, _ := store.ListRecipes(ctx)
	if len(got) != 2 || got[0].Name != "Tomato Soup" {
		t.Errorf("store contents: %+v", got)
	}
}

func TestImportJSONSalvagesWrongTypedFields(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Legacy exports sometimes carry a bare string where an array is
	// expected. The record still merges; only the bad field is dropped.
	payload := `[
	  {"name": "Legacy", "categories": "Vlees", "ingredients": "kool"},
	  {"name": 12, "notes": "name is not even a string"},
	  "not an object at all"
	]`
	res, err := ImportJSON(ctx, store, []byte(payload))
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if res.Imported != 3 {
		t.Errorf("imported %d, want 3", res.Imported)
	}

	got, _ := store.ListRecipes(ctx)
	if len(got) != 3 {
		t.Fatalf("store holds %d recipes, want 3", len(got))
	}
	if got[0].Name != "Legacy" || got[0].Ingredients != "kool" {
		t.Errorf("well-typed fields not kept: %+v", got[0])
	}
	if got[0].Categories != nil {
		t.Errorf("wrong-typed categories should be dropped, got %v", got[0].Categories)
	}
	if got[1].Name != "" || got[1].Notes != "name is not even a string" {
		t.Errorf("partial salvage: %+v", got[1])
	}
}

func TestImportJSONRejectsNonArray(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, payload := range []string{`{"name":"x"}`, `"just a string"`, `42`} {
		_, err := ImportJSON(ctx, store, []byte(payload))
		var ferr *FormatError
		if !errors.As(err, &ferr) {
			t.Errorf("payload %s: expected FormatError, got %v", payload, err)
		}
	}

	// Collection unchanged after rejected imports
	got, _ := store.ListRecipes(ctx)
	if len(got) != 0 {
		t.Errorf("rejected import changed the collection: %d recipes", len(got))
	}
}

func TestImportJSONRejectsInvalidJSON(t *testing.T) {
	store := newTestStore(t)
	_, err := ImportJSON(context.Background(), store, []byte("{oops"))
	var ferr *FormatError
	if !errors.As(err, &ferr) {
		t.Errorf("expected FormatError, got %v", err)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	source := newTestStore(t)
	ctx := context.Background()

	orig := &types.Recipe{
		Name:        "Stamppot",
		Categories:  []string{"Vlees", "Thomas"},
		SourceType:  types.SourceBook,
		BookTitle:   "Hollandse Pot",
		BookAuthor:  "J. de Vries",
		BookPage:    "42",
		Ingredients: "potato, kale",
		Notes:       "winter only",
	}
	if err := source.CreateRecipe(ctx, orig); err != nil {
		t.Fatal(err)
	}
	exported, _ := source.ListRecipes(ctx)
	data, err := json.MarshalIndent(exported, "", "  ")
	if err != nil {
		t.Fatal(err)
	}

	// Import into an empty catalog reproduces the collection exactly
	dest := newTestStore(t)
	if _, err := ImportJSON(ctx, dest, data); err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	got, _ := dest.ListRecipes(ctx)
	if len(got) != 1 {
		t.Fatalf("round trip produced %d recipes", len(got))
	}
	want, _ := json.Marshal(exported[0])
	have, _ := json.Marshal(got[0])
	if string(want) != string(have) {
		t.Errorf("round trip mismatch:\n want %s\n have %s", want, have)
	}
}
