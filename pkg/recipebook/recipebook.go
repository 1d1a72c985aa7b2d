// Package recipebook provides the public entry point for opening a recipe
// book: it attaches the configured slot backend, binds the recipe store to
// its persisted slot and rehydrates it.
package recipebook

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/mesh-intelligence/recipebook/internal/persist"
	"github.com/mesh-intelligence/recipebook/internal/slot"
	"github.com/mesh-intelligence/recipebook/internal/store"
	"github.com/mesh-intelligence/recipebook/pkg/types"
)

// Version is the recipebook release version.
const Version = "0.1.0"

// Book is an opened recipe book. Callers read and mutate recipes through
// Store and call Close when done.
type Book struct {
	config types.Config
	slots  types.Slots
	store  *store.Store

	closeOnce sync.Once
	closeErr  error
}

// Open validates cfg, attaches its backend and returns a Book whose store
// has been rehydrated from the slot named by cfg.Key(). A nil logger
// discards diagnostics.
//
// Example:
//
//	book, err := recipebook.Open(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: "/var/lib/recipebook",
//	}, nil)
//	if err != nil {
//	    return err
//	}
//	defer book.Close()
func Open(cfg types.Config, logger *slog.Logger) (*Book, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	slots, err := slot.New(cfg.Backend)
	if err != nil {
		return nil, err
	}
	if err := slots.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach %s backend: %w", cfg.Backend, err)
	}

	persister := persist.NewSlotPersister(slots, cfg.Key())
	return &Book{
		config: cfg,
		slots:  slots,
		store:  store.New(persister, store.WithLogger(logger)),
	}, nil
}

// Store returns the recipe store bound to this book.
func (b *Book) Store() types.RecipeStore {
	return b.store
}

// Config returns the configuration the book was opened with.
func (b *Book) Config() types.Config {
	return b.config
}

// Close detaches the backend. Later calls return the first result.
func (b *Book) Close() error {
	b.closeOnce.Do(func() {
		b.closeErr = b.slots.Detach()
	})
	return b.closeErr
}
