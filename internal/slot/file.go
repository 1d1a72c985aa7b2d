package slot

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/mesh-intelligence/recipebook/internal/atomicfile"
	"github.com/mesh-intelligence/recipebook/pkg/types"
)

// slotFileExt is appended to the key to form the slot file name.
const slotFileExt = ".json"

// File stores each slot as <DataDir>/<key>.json. Writes go through
// atomicfile so a crash mid-write leaves the previous value intact.
type File struct {
	mu       sync.RWMutex
	attached bool
	dir      string
}

// NewFile creates an unattached file backend.
func NewFile() *File {
	return &File{}
}

// Attach validates config and creates DataDir if it does not exist.
func (f *File) Attach(config types.Config) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dir := dataDirOrCWD(config)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	f.dir = dir
	f.attached = true
	return nil
}

// Detach is idempotent. Files stay on disk.
func (f *File) Detach() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attached = false
	return nil
}

// Path returns the file that backs key.
func (f *File) Path(key string) string {
	return filepath.Join(f.dir, key+slotFileExt)
}

// Get implements types.Slots.
func (f *File) Get(key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	if !f.attached {
		return nil, types.ErrDetached
	}
	data, err := os.ReadFile(f.Path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, types.ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading slot %s: %w", key, err)
	}
	return data, nil
}

// Set implements types.Slots.
func (f *File) Set(key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.attached {
		return types.ErrDetached
	}
	if err := atomicfile.WriteBytes(f.Path(key), 0o644, value); err != nil {
		return fmt.Errorf("writing slot %s: %w", key, err)
	}
	return nil
}

// Delete implements types.Slots.
func (f *File) Delete(key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.attached {
		return types.ErrDetached
	}
	err := os.Remove(f.Path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing slot %s: %w", key, err)
	}
	return nil
}
