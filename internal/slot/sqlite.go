package slot

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/recipebook/pkg/types"
)

// DBFileName is the SQLite database created inside DataDir.
const DBFileName = "recipebook.db"

const createSlots = `CREATE TABLE IF NOT EXISTS slots (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

const upsertSlot = `INSERT INTO slots (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;`

// SQLite keeps slots in a single table of a durable SQLite database. The
// database is the store itself and is never rebuilt on Attach.
type SQLite struct {
	mu       sync.RWMutex
	attached bool
	db       *sql.DB
	path     string
}

// NewSQLite creates an unattached SQLite backend.
func NewSQLite() *SQLite {
	return &SQLite{}
}

// Attach creates DataDir if needed, opens the database and ensures the
// slots table exists.
func (s *SQLite) Attach(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dir := dataDirOrCWD(config)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	path := filepath.Join(dir, DBFileName)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	// SQLite allows one writer; a single connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createSlots); err != nil {
		db.Close()
		return fmt.Errorf("creating schema: %w", err)
	}

	s.db = db
	s.path = path
	s.attached = true
	return nil
}

// Detach closes the database. Idempotent.
func (s *SQLite) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil
	}
	s.attached = false
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

// Get implements types.Slots.
func (s *SQLite) Get(key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrDetached
	}
	var value string
	err := s.db.QueryRow("SELECT value FROM slots WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading slot %s: %w", key, err)
	}
	return []byte(value), nil
}

// Set implements types.Slots.
func (s *SQLite) Set(key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrDetached
	}
	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := s.db.Exec(upsertSlot, key, string(value), now); err != nil {
		return fmt.Errorf("writing slot %s: %w", key, err)
	}
	return nil
}

// Delete implements types.Slots.
func (s *SQLite) Delete(key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrDetached
	}
	if _, err := s.db.Exec("DELETE FROM slots WHERE key = ?", key); err != nil {
		return fmt.Errorf("deleting slot %s: %w", key, err)
	}
	return nil
}
