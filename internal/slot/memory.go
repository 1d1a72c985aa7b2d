package slot

import (
	"slices"
	"sync"

	"github.com/mesh-intelligence/recipebook/pkg/types"
)

// Memory keeps slots in a process-local map. Nothing survives the process.
type Memory struct {
	mu       sync.RWMutex
	attached bool
	values   map[string][]byte
}

// NewMemory creates an unattached in-memory backend.
func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

// Attach validates config and marks the backend usable. Values written
// before a Detach are still present after the next Attach.
func (m *Memory) Attach(config types.Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}
	m.attached = true
	return nil
}

// Detach is idempotent.
func (m *Memory) Detach() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attached = false
	return nil
}

// Get implements types.Slots.
func (m *Memory) Get(key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.attached {
		return nil, types.ErrDetached
	}
	v, ok := m.values[key]
	if !ok {
		return nil, types.ErrSlotNotFound
	}
	return slices.Clone(v), nil
}

// Set implements types.Slots.
func (m *Memory) Set(key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.attached {
		return types.ErrDetached
	}
	m.values[key] = slices.Clone(value)
	return nil
}

// Delete implements types.Slots.
func (m *Memory) Delete(key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.attached {
		return types.ErrDetached
	}
	delete(m.values, key)
	return nil
}
