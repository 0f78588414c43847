// Package jsonfile implements recipe storage as a single JSON-array
// file, the direct analog of the original catalog's one key-value
// entry: every write serializes the whole collection and replaces the
// prior value.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pvdberg/kookboek/internal/debug"
	"github.com/pvdberg/kookboek/internal/idgen"
	"github.com/pvdberg/kookboek/internal/storage"
	"github.com/pvdberg/kookboek/internal/types"
)

// Store persists recipes to one JSON file. All operations are
// serialized through a mutex, which also serializes overlapping
// imports instead of letting their merges interleave.
type Store struct {
	mu      sync.Mutex
	path    string
	recipes []*types.Recipe
}

// Open loads the collection at path. A missing file or a structurally
// invalid payload yields an empty collection without error: corrupt
// state must never block startup, it only costs the old data a
// diagnostic note.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path) // #nosec G304 - store path comes from catalog metadata
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading store: %w", err)
	}

	var recipes []*types.Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		debug.Logf("store %s unreadable (%v), starting fresh\n", path, err)
		return s, nil
	}

	s.recipes = recipes
	return s, nil
}

// Path returns the location of the persisted collection.
func (s *Store) Path() string {
	return s.path
}

// save writes the given collection to disk through a temp file and
// rename, so a failed write never leaves a truncated store behind. The
// caller swaps s.recipes only after save succeeds.
func (s *Store) save(recipes []*types.Recipe) error {
	if recipes == nil {
		recipes = []*types.Recipe{}
	}
	data, err := json.MarshalIndent(recipes, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing collection: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".recipes-*.json")
	if err != nil {
		return fmt.Errorf("writing collection: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing collection: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing collection: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing collection: %w", err)
	}
	return nil
}

func (s *Store) ListRecipes(ctx context.Context) ([]*types.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*types.Recipe, len(s.recipes))
	for i, r := range s.recipes {
		out[i] = r.Clone()
	}
	return out, nil
}

func (s *Store) GetRecipe(ctx context.Context, id string) (*types.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.recipes {
		if r.ID == id {
			return r.Clone(), nil
		}
	}
	return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, id)
}

func (s *Store) CreateRecipe(ctx context.Context, recipe *types.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := recipe.Clone()
	r.SetDefaults()
	if err := r.Validate(); err != nil {
		return err
	}

	now := time.Now()
	if r.CreatedAt == "" {
		r.CreatedAt = now.Format(time.RFC3339)
	}
	if r.ID == "" {
		for nonce := 0; ; nonce++ {
			id := idgen.NewID(r.Name, now, nonce)
			if !s.hasIDLocked(id) {
				r.ID = id
				break
			}
		}
	} else if s.hasIDLocked(r.ID) {
		return fmt.Errorf("recipe id %s already exists", r.ID)
	}

	next := append(append([]*types.Recipe(nil), s.recipes...), r)
	if err := s.save(next); err != nil {
		return err
	}
	s.recipes = next

	// Report the assigned identity back to the caller
	recipe.ID = r.ID
	recipe.CreatedAt = r.CreatedAt
	return nil
}

func (s *Store) UpdateRecipe(ctx context.Context, recipe *types.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := recipe.Clone()
	r.SetDefaults()
	if err := r.Validate(); err != nil {
		return err
	}

	idx := -1
	for i, existing := range s.recipes {
		if existing.ID == r.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, r.ID)
	}

	// createdAt is immutable across edits
	r.CreatedAt = s.recipes[idx].CreatedAt

	next := append([]*types.Recipe(nil), s.recipes...)
	next[idx] = r
	if err := s.save(next); err != nil {
		return err
	}
	s.recipes = next
	recipe.CreatedAt = r.CreatedAt
	return nil
}

func (s *Store) DeleteRecipe(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, r := range s.recipes {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, id)
	}

	next := append([]*types.Recipe(nil), s.recipes[:idx]...)
	next = append(next, s.recipes[idx+1:]...)
	if err := s.save(next); err != nil {
		return err
	}
	s.recipes = next
	return nil
}

func (s *Store) MergeRecipes(ctx context.Context, recipes []*types.Recipe) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(recipes) == 0 {
		return 0, nil
	}

	next := append([]*types.Recipe(nil), s.recipes...)
	for _, r := range recipes {
		next = append(next, r.Clone())
	}
	if err := s.save(next); err != nil {
		return 0, err
	}
	s.recipes = next
	return len(recipes), nil
}

func (s *Store) SearchRecipes(ctx context.Context, filter types.Filter) ([]*types.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := filter.Apply(s.recipes)
	out := make([]*types.Recipe, len(matched))
	for i, r := range matched {
		out[i] = r.Clone()
	}
	return out, nil
}

func (s *Store) Close() error {
	return nil
}

// hasIDLocked reports whether id is taken. Caller holds s.mu.
func (s *Store) hasIDLocked(id string) bool {
	for _, r := range s.recipes {
		if r.ID == id {
			return true
		}
	}
	return false
}

// Interface conformance check.
var _ storage.Store = (*Store)(nil)
