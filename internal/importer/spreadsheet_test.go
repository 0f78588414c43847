package importer

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/pvdberg/kookboek/internal/types"
)

// buildWorkbook writes rows (header included) onto the first sheet.
func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cellRef, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestImportWorkbookMapsColumns(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	buf := buildWorkbook(t, [][]interface{}{
		{"Naam", "Bron", "Ingrediënten", "Categorie 1", "Categorie 2"},
		{"Pasta", "www.example.com/recipe", "pasta, sauce", "Vlees", ""},
		{"Erwtensoep", "Hollandse Pot", "peas, sausage", " Vlees ", "Thomas"},
	})

	res, err := ImportWorkbook(ctx, store, buf)
	if err != nil {
		t.Fatalf("ImportWorkbook: %v", err)
	}
	if res.Imported != 2 || res.Skipped != 0 {
		t.Errorf("result = %+v", res)
	}

	got, _ := store.ListRecipes(ctx)
	require.Len(t, got, 2)

	pasta := got[0]
	if pasta.SourceType != types.SourceOnline || pasta.SourceURL != "www.example.com/recipe" {
		t.Errorf("www. source not treated as URL: %+v", pasta)
	}
	if len(pasta.Categories) != 1 || pasta.Categories[0] != "Vlees" {
		t.Errorf("pasta categories = %v", pasta.Categories)
	}
	if pasta.Ingredients != "pasta, sauce" {
		t.Errorf("pasta ingredients = %q", pasta.Ingredients)
	}
	if pasta.Instructions != "" || pasta.PrepTime != "" || pasta.Notes != "" {
		t.Error("fields absent from the sheet should start empty")
	}

	soup := got[1]
	if soup.SourceType != types.SourceBook || soup.BookTitle != "Hollandse Pot" {
		t.Errorf("plain source not treated as book: %+v", soup)
	}
	if len(soup.Categories) != 2 || soup.Categories[0] != "Vlees" || soup.Categories[1] != "Thomas" {
		t.Errorf("category tags not trimmed/collected: %v", soup.Categories)
	}
}

func TestImportWorkbookDropsEmptyNames(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	buf := buildWorkbook(t, [][]interface{}{
		{"Naam", "Bron", "Ingrediënten"},
		{"", "www.example.com", "ghost"},
		{"Kept", "", ""},
	})

	res, err := ImportWorkbook(ctx, store, buf)
	if err != nil {
		t.Fatalf("ImportWorkbook: %v", err)
	}
	if res.Imported != 1 || res.Skipped != 1 {
		t.Errorf("result = %+v", res)
	}
	got, _ := store.ListRecipes(ctx)
	if len(got) != 1 || got[0].Name != "Kept" {
		t.Errorf("store contents: %+v", got)
	}
}

func TestImportWorkbookZeroRowsIsFormatError(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Header only
	buf := buildWorkbook(t, [][]interface{}{{"Naam", "Bron"}})
	_, err := ImportWorkbook(ctx, store, buf)
	var ferr *FormatError
	if !errors.As(err, &ferr) {
		t.Errorf("header-only sheet: expected FormatError, got %v", err)
	}

	// All rows dropped
	buf = buildWorkbook(t, [][]interface{}{
		{"Naam"},
		{""},
	})
	if _, err := ImportWorkbook(ctx, store, buf); !errors.As(err, &ferr) {
		t.Errorf("all-dropped sheet: expected FormatError, got %v", err)
	}

	got, _ := store.ListRecipes(ctx)
	if len(got) != 0 {
		t.Error("failed imports changed the collection")
	}
}

func TestImportWorkbookRejectsGarbage(t *testing.T) {
	store := newTestStore(t)
	_, err := ImportWorkbook(context.Background(), store, strings.NewReader("definitely not a zip"))
	var ferr *FormatError
	if !errors.As(err, &ferr) {
		t.Errorf("expected FormatError, got %v", err)
	}
}

func TestImportCSV(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	csvData := "Naam,Bron,Ingrediënten,Cat1,Cat2\n" +
		"Soep,https://example.com/soep,tomato,Vegetarisch,\n" +
		"Short row,only two fields\n"
	res, err := ImportCSV(ctx, store, strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if res.Imported != 2 {
		t.Errorf("imported %d, want 2", res.Imported)
	}

	got, _ := store.ListRecipes(ctx)
	if got[0].SourceType != types.SourceOnline {
		t.Errorf("https:// prefix should be online: %+v", got[0])
	}
	// Missing trailing cells default to empty / [Other]
	if got[1].Categories[0] != types.DefaultCategory {
		t.Errorf("short row categories = %v", got[1].Categories)
	}
}

func TestRecipeFromRowSyntheticIDs(t *testing.T) {
	ts := time.UnixMilli(1700000000000)
	a := recipeFromRow([]string{"A"}, ts, 0)
	b := recipeFromRow([]string{"B"}, ts, 1)
	if a.ID == b.ID {
		t.Errorf("rows share id %q", a.ID)
	}
	if a.ID != "1700000000000_0" {
		t.Errorf("id = %q, want timestamp_row", a.ID)
	}
	if a.CreatedAt != ts.Format(time.RFC3339) {
		t.Errorf("createdAt = %q", a.CreatedAt)
	}
}

func TestIsURLHeuristic(t *testing.T) {
	cases := map[string]bool{
		"http://example.com":     true,
		"https://example.com":    true,
		"www.example.com/recipe": true,
		"bbc.co.uk/food":         false, // no scheme, no www. — treated as a book
		"Hollandse Pot":          false,
		"":                       false,
	}
	for in, want := range cases {
		if got := isURL(in); got != want {
			t.Errorf("isURL(%q) = %v, want %v", in, got, want)
		}
	}
}
