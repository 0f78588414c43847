// Package storage provides shared types for recipe storage.
//
// The concrete implementation lives in the jsonfile sub-package. This
// package holds the interface and sentinel errors referenced by both
// the implementation and its consumers (cmd/kook, importer, form).
package storage

import (
	"context"
	"errors"

	"github.com/pvdberg/kookboek/internal/types"
)

// ErrNotFound is returned when a requested recipe does not exist.
var ErrNotFound = errors.New("recipe not found")

// Store is the interface satisfied by *jsonfile.Store.
//
// Every mutating operation persists immediately: after a successful
// call the in-memory collection equals the on-disk value. A failed
// write surfaces an error and leaves both unchanged.
type Store interface {
	// ListRecipes returns the full collection in insertion order.
	ListRecipes(ctx context.Context) ([]*types.Recipe, error)
	// GetRecipe returns the recipe with the given id, or ErrNotFound.
	GetRecipe(ctx context.Context, id string) (*types.Recipe, error)
	// CreateRecipe appends a new recipe, assigning id and createdAt
	// when absent, and persists.
	CreateRecipe(ctx context.Context, recipe *types.Recipe) error
	// UpdateRecipe replaces the recipe with matching id, preserving its
	// original createdAt, and persists.
	UpdateRecipe(ctx context.Context, recipe *types.Recipe) error
	// DeleteRecipe removes the recipe with the given id and persists.
	DeleteRecipe(ctx context.Context, id string) error
	// MergeRecipes appends already-normalized records without
	// deduplication (merge-append) and persists. Returns the number of
	// records added.
	MergeRecipes(ctx context.Context, recipes []*types.Recipe) (int, error)
	// SearchRecipes applies the filter over the collection,
	// order-preserving.
	SearchRecipes(ctx context.Context, filter types.Filter) ([]*types.Recipe, error)

	// Lifecycle
	Close() error
}
