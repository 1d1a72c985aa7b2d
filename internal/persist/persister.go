// Package persist maps the recipe collection to and from its persisted forms:
// the enveloped JSON document kept in a slot, and JSONL files used for
// export and import.
package persist

import (
	"encoding/json"
	"fmt"

	"github.com/mesh-intelligence/recipebook/pkg/types"
)

// envelope is the document stored in the slot. Version is always written as
// zero and ignored on read; the format has no migration path.
type envelope struct {
	State   types.State `json:"state"`
	Version int         `json:"version"`
}

// SlotPersister saves the whole collection into one named slot.
type SlotPersister struct {
	slots types.Slots
	key   string
}

var _ types.Persister = (*SlotPersister)(nil)

// NewSlotPersister returns a persister writing to key in slots. An empty key
// selects types.DefaultStorageKey.
func NewSlotPersister(slots types.Slots, key string) *SlotPersister {
	if key == "" {
		key = types.DefaultStorageKey
	}
	return &SlotPersister{slots: slots, key: key}
}

// Key returns the slot name.
func (p *SlotPersister) Key() string {
	return p.key
}

// Load reads and decodes the slot. An absent slot returns an error wrapping
// types.ErrSlotNotFound; undecodable content wraps types.ErrMalformedState.
func (p *SlotPersister) Load() (types.State, error) {
	data, err := p.slots.Get(p.key)
	if err != nil {
		return types.State{}, fmt.Errorf("loading %s: %w", p.key, err)
	}
	return Decode(data)
}

// Save encodes state and writes it to the slot.
func (p *SlotPersister) Save(state types.State) error {
	data, err := Encode(state)
	if err != nil {
		return err
	}
	if err := p.slots.Set(p.key, data); err != nil {
		return fmt.Errorf("saving %s: %w", p.key, err)
	}
	return nil
}

// Encode renders state as the slot envelope.
func Encode(state types.State) ([]byte, error) {
	env := envelope{State: types.State{Recipes: types.CloneRecipes(state.Recipes)}}
	data, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("encoding state: %w", err)
	}
	return data, nil
}

// Decode parses a slot envelope. A missing or null recipes array decodes to
// an empty collection.
func Decode(data []byte) (types.State, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return types.State{}, fmt.Errorf("%w: %v", types.ErrMalformedState, err)
	}
	if env.State.Recipes == nil {
		env.State.Recipes = []types.Recipe{}
	}
	return env.State, nil
}
