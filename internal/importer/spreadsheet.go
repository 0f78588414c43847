package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/pvdberg/kookboek/internal/idgen"
	"github.com/pvdberg/kookboek/internal/storage"
	"github.com/pvdberg/kookboek/internal/types"
)

// Spreadsheet column layout, positional. Row 0 is a header and is
// always discarded.
//
//	0: name
//	1: source (URL or book title, disambiguated by shape)
//	2: ingredients
//	3: first category tag
//	4: second category tag
const (
	colName = iota
	colSource
	colIngredients
	colCategory1
	colCategory2
)

// ImportWorkbook reads the first sheet of an XLSX workbook and merges
// the mapped rows. Rows with an empty name are dropped (row-level
// tolerance); zero usable rows is a FormatError.
func ImportWorkbook(ctx context.Context, store storage.Store, r io.Reader) (*Result, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &FormatError{Reason: fmt.Sprintf("not a readable workbook: %v", err)}
	}
	defer func() { _ = wb.Close() }()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, &FormatError{Reason: "workbook has no sheets"}
	}
	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, &FormatError{Reason: fmt.Sprintf("reading sheet %s: %v", sheets[0], err)}
	}

	return mergeRows(ctx, store, rows)
}

// ImportCSV reads comma-separated rows with the same positional layout
// as the workbook path. Rows may have varying field counts.
func ImportCSV(ctx context.Context, store storage.Store, r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, &FormatError{Reason: fmt.Sprintf("not readable CSV: %v", err)}
	}

	return mergeRows(ctx, store, rows)
}

// mergeRows converts data rows (header already included at index 0) and
// merges the usable ones.
func mergeRows(ctx context.Context, store storage.Store, rows [][]string) (*Result, error) {
	if len(rows) <= 1 {
		return nil, &FormatError{Reason: "no recipes found"}
	}

	now := time.Now()
	var recipes []*types.Recipe
	skipped := 0
	for i, row := range rows[1:] {
		r := recipeFromRow(row, now, i)
		if r == nil {
			skipped++
			continue
		}
		recipes = append(recipes, r)
	}

	if len(recipes) == 0 {
		return nil, &FormatError{Reason: "no recipes found"}
	}

	n, err := store.MergeRecipes(ctx, recipes)
	if err != nil {
		return nil, err
	}
	return &Result{Imported: n, Skipped: skipped}, nil
}

// recipeFromRow maps one data row onto a recipe. Returns nil for rows
// without a name. Fields the spreadsheet cannot carry (instructions,
// times, servings, guests, notes) start empty.
func recipeFromRow(row []string, importedAt time.Time, index int) *types.Recipe {
	name := cell(row, colName)
	if name == "" {
		return nil
	}

	source := cell(row, colSource)

	var cats []string
	for _, c := range []string{cell(row, colCategory1), cell(row, colCategory2)} {
		if t := strings.TrimSpace(c); t != "" {
			cats = append(cats, t)
		}
	}
	if len(cats) == 0 {
		cats = []string{types.DefaultCategory}
	}

	r := &types.Recipe{
		ID:          idgen.ImportID(importedAt, index),
		Name:        name,
		Categories:  cats,
		Ingredients: cell(row, colIngredients),
		CreatedAt:   importedAt.Format(time.RFC3339),
	}
	if isURL(source) {
		r.SourceType = types.SourceOnline
		r.SourceURL = source
	} else {
		r.SourceType = types.SourceBook
		r.BookTitle = source
	}
	return r
}

// isURL is the source-disambiguation heuristic carried over from older
// catalogs: prefix http(s):// or substring "www.". Deliberately not a
// real URL parse; a stricter rule would change behavior on ambiguous
// inputs.
func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") ||
		strings.HasPrefix(s, "https://") ||
		strings.Contains(s, "www.")
}

// cell returns the trimmed-row-safe cell at index i; spreadsheets and
// CSV rows routinely omit trailing empty cells.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
