// Package store holds the authoritative, ordered recipe collection and keeps
// its persisted mirror in sync. Every mutation saves the full collection
// through a types.Persister and then notifies subscribers.
package store

import (
	"errors"
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/mesh-intelligence/recipebook/pkg/types"
)

// Store implements types.RecipeStore.
type Store struct {
	mu        sync.RWMutex
	recipes   []types.Recipe
	persister types.Persister
	logger    *slog.Logger

	listenersMu  sync.Mutex
	listeners    map[int]types.Listener
	nextListener int
}

var _ types.RecipeStore = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for persistence diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a store and rehydrates it from persister. A missing or
// unreadable persisted state yields an empty collection; New never fails.
// A nil persister keeps the store purely in memory.
func New(persister types.Persister, opts ...Option) *Store {
	s := &Store{
		recipes:   []types.Recipe{},
		persister: persister,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		listeners: make(map[int]types.Listener),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load()
	return s
}

// load reads the persisted state once at construction.
func (s *Store) load() {
	if s.persister == nil {
		return
	}
	state, err := s.persister.Load()
	switch {
	case errors.Is(err, types.ErrSlotNotFound):
		s.logger.Debug("no persisted recipes, starting empty")
		return
	case err != nil:
		s.logger.Warn("discarding unreadable persisted recipes", "error", err)
		return
	}
	s.recipes = types.CloneRecipes(state.Recipes)
	s.logger.Debug("loaded persisted recipes", "count", len(s.recipes))
}

// Recipes returns a snapshot of the collection in insertion order.
func (s *Store) Recipes() []types.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return types.CloneRecipes(s.recipes)
}

// Get returns the first recipe with the given id.
func (s *Store) Get(id int64) (types.Recipe, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.recipes {
		if r.ID == id {
			return r.Clone(), true
		}
	}
	return types.Recipe{}, false
}

// AddRecipe appends recipe to the end of the collection.
func (s *Store) AddRecipe(recipe types.Recipe) {
	s.mutate(func(recipes []types.Recipe) ([]types.Recipe, bool) {
		return append(recipes, recipe.Clone()), true
	})
}

// RemoveRecipe drops every recipe with the given id, keeping the order of
// the rest. An unknown id changes nothing but still writes the mirror.
func (s *Store) RemoveRecipe(id int64) {
	s.mutate(func(recipes []types.Recipe) ([]types.Recipe, bool) {
		kept := make([]types.Recipe, 0, len(recipes))
		for _, r := range recipes {
			if r.ID != id {
				kept = append(kept, r)
			}
		}
		return kept, true
	})
}

// ReplaceRecipe overwrites the first recipe whose id equals recipe.ID in
// place. Returns false, without writing, when no recipe matches.
func (s *Store) ReplaceRecipe(recipe types.Recipe) bool {
	return s.mutate(func(recipes []types.Recipe) ([]types.Recipe, bool) {
		for i, r := range recipes {
			if r.ID == recipe.ID {
				next := slices.Clone(recipes)
				next[i] = recipe.Clone()
				return next, true
			}
		}
		return recipes, false
	})
}

// Subscribe registers fn to receive a snapshot after every mutation.
func (s *Store) Subscribe(fn types.Listener) (unsubscribe func()) {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()

	id := s.nextListener
	s.nextListener++
	s.listeners[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			s.listenersMu.Lock()
			delete(s.listeners, id)
			s.listenersMu.Unlock()
		})
	}
}

// mutate applies fn to the collection, saves the result and notifies
// listeners. fn reports whether it changed anything; unchanged collections
// are neither saved nor announced.
func (s *Store) mutate(fn func([]types.Recipe) ([]types.Recipe, bool)) bool {
	s.mu.Lock()
	next, changed := fn(s.recipes)
	if !changed {
		s.mu.Unlock()
		return false
	}
	s.recipes = next
	snapshot := types.CloneRecipes(next)
	s.save(snapshot)
	s.mu.Unlock()

	s.notify(snapshot)
	return true
}

// save writes the mirror. Failures are logged and otherwise ignored: the
// in-memory collection stays authoritative.
func (s *Store) save(recipes []types.Recipe) {
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(types.State{Recipes: recipes}); err != nil {
		s.logger.Warn("persisting recipes failed", "error", err, "count", len(recipes))
	}
}

// notify runs listeners outside the store lock so they may read the store.
func (s *Store) notify(snapshot []types.Recipe) {
	s.listenersMu.Lock()
	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]types.Listener, 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.listeners[id])
	}
	s.listenersMu.Unlock()

	for _, fn := range fns {
		fn(types.CloneRecipes(snapshot))
	}
}
