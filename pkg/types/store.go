package types

import "errors"

// Listener receives a snapshot of the recipe collection after a mutation.
type Listener func(recipes []Recipe)

// RecipeStore is the contract the controller and views consume. Reads return
// snapshots; after a mutation returns, every later read reflects it.
type RecipeStore interface {
	// Recipes returns the current ordered collection.
	Recipes() []Recipe

	// Get returns the first recipe with the given id.
	Get(id int64) (Recipe, bool)

	// AddRecipe appends recipe. Duplicate ids are accepted.
	AddRecipe(recipe Recipe)

	// RemoveRecipe removes every recipe with the given id. Unknown ids are a no-op.
	RemoveRecipe(id int64)

	// ReplaceRecipe overwrites the first recipe whose id matches recipe.ID,
	// keeping its position. Returns false when no recipe matches.
	ReplaceRecipe(recipe Recipe) bool

	// Subscribe registers fn to run after each mutation and returns a
	// function that removes it.
	Subscribe(fn Listener) (unsubscribe func())
}

// Persister loads and saves the whole recipe collection.
type Persister interface {
	Load() (State, error)
	Save(state State) error
}

// Slots is a durable key-value store holding named slots. Callers attach to
// a backend, read and write slots, and detach when done.
type Slots interface {
	// Attach prepares the backend described by config. Returns
	// ErrAlreadyAttached if called while attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent.
	Detach() error

	// Get returns the value stored under key, or ErrSlotNotFound.
	Get(key string) ([]byte, error)

	// Set stores value under key. Last write wins.
	Set(key string, value []byte) error

	// Delete removes key. Deleting an absent key succeeds.
	Delete(key string) error
}

// Slot errors.
var (
	ErrSlotNotFound    = errors.New("slot not found")
	ErrInvalidKey      = errors.New("slot key must not be empty")
	ErrDetached        = errors.New("slots are detached")
	ErrAlreadyAttached = errors.New("slots are already attached")
)

// Persistence errors.
var (
	ErrMalformedState = errors.New("malformed persisted state")
)

// Recipe errors.
var (
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrInvalidRecipe  = errors.New("recipe requires a name, ingredients and instructions")
)
