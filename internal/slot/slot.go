// Package slot implements the durable key-value stores that hold the
// persisted recipe collection. Each backend keeps named slots; the recipe
// book uses a single slot.
package slot

import (
	"fmt"
	"path/filepath"

	"github.com/mesh-intelligence/recipebook/pkg/types"
)

// New returns an unattached Slots implementation for the named backend.
func New(backend string) (types.Slots, error) {
	switch backend {
	case types.BackendFile:
		return NewFile(), nil
	case types.BackendSQLite:
		return NewSQLite(), nil
	case types.BackendMemory:
		return NewMemory(), nil
	case "":
		return nil, types.ErrBackendEmpty
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrBackendUnknown, backend)
	}
}

// validateKey rejects keys that cannot name a slot. Keys double as file
// names in the file backend, so path elements are not allowed.
func validateKey(key string) error {
	if key == "" || key == "." || key == ".." || filepath.Base(key) != key {
		return types.ErrInvalidKey
	}
	return nil
}

// dataDirOrCWD returns the configured data directory or "." when unset.
func dataDirOrCWD(config types.Config) string {
	if config.DataDir == "" {
		return "."
	}
	return config.DataDir
}
