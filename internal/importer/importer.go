// Package importer converts external payloads into catalog records and
// merges them into the store.
//
// Two formats are supported: the JSON array produced by kook export
// (exact round trip) and a tabular spreadsheet layout (lossy,
// field-mapped). Both end in a merge-append; nothing is deduplicated
// or overwritten.
package importer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pvdberg/kookboek/internal/storage"
	"github.com/pvdberg/kookboek/internal/types"
)

// FormatError reports an import payload that is not a recognized shape:
// a non-array JSON document, an unreadable workbook, or a sheet that
// yields zero usable rows. The existing collection is left unchanged.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return e.Reason
}

// Result contains statistics about one import operation.
type Result struct {
	Imported int `json:"imported"` // Records merged into the store
	Skipped  int `json:"skipped"`  // Spreadsheet rows dropped (empty name)
}

// ImportJSON parses data as a JSON array of recipes and merges every
// element. There is no per-record validation: a record with only a
// name, with extra unknown fields, or with wrong-typed fields is
// accepted, keeping whatever fields do match the schema. Only a
// non-array top level rejects the whole import.
func ImportJSON(ctx context.Context, store storage.Store, data []byte) (*Result, error) {
	// Probe the top-level shape first to tell "not an array" apart
	// from "not JSON at all".
	var top json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, &FormatError{Reason: fmt.Sprintf("not valid JSON: %v", err)}
	}
	if firstByte(top) != '[' {
		return nil, &FormatError{Reason: "top-level value is not an array"}
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, &FormatError{Reason: fmt.Sprintf("not a JSON array: %v", err)}
	}

	recipes := make([]*types.Recipe, 0, len(elements))
	for _, el := range elements {
		recipes = append(recipes, decodeRecipe(el))
	}

	n, err := store.MergeRecipes(ctx, recipes)
	if err != nil {
		return nil, err
	}
	return &Result{Imported: n}, nil
}

// decodeRecipe parses one array element without failing the batch.
// Well-formed objects decode directly; an element with wrong-typed
// fields keeps every field that does match the schema and zeroes the
// rest. Non-object elements become empty records.
func decodeRecipe(raw json.RawMessage) *types.Recipe {
	var r types.Recipe
	if err := json.Unmarshal(raw, &r); err == nil {
		return &r
	}

	r = types.Recipe{}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return &r
	}
	for key, val := range fields {
		switch key {
		case "id":
			_ = json.Unmarshal(val, &r.ID)
		case "name":
			_ = json.Unmarshal(val, &r.Name)
		case "categories":
			_ = json.Unmarshal(val, &r.Categories)
		case "sourceType":
			_ = json.Unmarshal(val, &r.SourceType)
		case "sourceUrl":
			_ = json.Unmarshal(val, &r.SourceURL)
		case "bookTitle":
			_ = json.Unmarshal(val, &r.BookTitle)
		case "bookAuthor":
			_ = json.Unmarshal(val, &r.BookAuthor)
		case "bookPage":
			_ = json.Unmarshal(val, &r.BookPage)
		case "ingredients":
			_ = json.Unmarshal(val, &r.Ingredients)
		case "instructions":
			_ = json.Unmarshal(val, &r.Instructions)
		case "prepTime":
			_ = json.Unmarshal(val, &r.PrepTime)
		case "cookTime":
			_ = json.Unmarshal(val, &r.CookTime)
		case "servings":
			_ = json.Unmarshal(val, &r.Servings)
		case "guests":
			_ = json.Unmarshal(val, &r.Guests)
		case "notes":
			_ = json.Unmarshal(val, &r.Notes)
		case "createdAt":
			_ = json.Unmarshal(val, &r.CreatedAt)
		}
	}
	return &r
}

// firstByte returns the first non-whitespace byte of raw, or 0.
func firstByte(raw []byte) byte {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return b
	}
	return 0
}
