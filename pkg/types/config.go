package types

import "errors"

// Config holds backend selection and store parameters for recipebook.Open.
type Config struct {
	Backend           string `json:"backend" yaml:"backend"`
	DataDir           string `json:"data_dir" yaml:"data_dir"`
	StorageKey        string `json:"storage_key" yaml:"storage_key"`
	IDSource          string `json:"id_source" yaml:"id_source"`
	PreserveIDsOnEdit bool   `json:"preserve_ids_on_edit" yaml:"preserve_ids_on_edit"`
}

// Supported backend names.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Supported id sources.
const (
	IDSourceClock = "clock"
	IDSourceUUID  = "uuid"
)

// DefaultStorageKey names the slot holding the recipe collection.
const DefaultStorageKey = "recipe-storage"

// Config validation errors.
var (
	ErrBackendEmpty    = errors.New("backend must not be empty")
	ErrBackendUnknown  = errors.New("unknown backend")
	ErrIDSourceUnknown = errors.New("unknown id source")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendFile:   true,
	BackendSQLite: true,
	BackendMemory: true,
}

// DefaultConfig returns a file-backed configuration rooted at dataDir.
func DefaultConfig(dataDir string) Config {
	return Config{
		Backend:    BackendFile,
		DataDir:    dataDir,
		StorageKey: DefaultStorageKey,
		IDSource:   IDSourceClock,
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure. An empty StorageKey or IDSource is accepted
// and means the default.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	switch c.IDSource {
	case "", IDSourceClock, IDSourceUUID:
	default:
		return ErrIDSourceUnknown
	}
	return nil
}

// Key returns the storage key, falling back to DefaultStorageKey.
func (c Config) Key() string {
	if c.StorageKey == "" {
		return DefaultStorageKey
	}
	return c.StorageKey
}
