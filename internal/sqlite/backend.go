// Package sqlite implements the SQLite snapshot backend for the daybook
// state store. The entire application state is stored as one JSON document
// in a single-row key/value table, read once at startup and overwritten
// wholesale on every save.
package sqlite

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/daybook/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// snapshotKey is the fixed key under which the application state document is
// stored.
const snapshotKey = "appstate"

// dbFileName is the SQLite database file created inside the data directory.
const dbFileName = "daybook.db"

// Backend implements types.Backend over a SQLite database file.
type Backend struct {
	mu     sync.Mutex
	db     *sql.DB
	log    *zap.Logger
	closed bool
}

// Option configures a Backend.
type Option func(*Backend)

// WithLogger sets the backend logger.
func WithLogger(log *zap.Logger) Option {
	return func(b *Backend) { b.log = log }
}

// Open creates the data directory if needed, opens the database, and ensures
// the schema exists.
func Open(dataDir string, opts ...Option) (*Backend, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	b := &Backend{db: db, log: zap.NewNop()}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Load returns the stored snapshot bytes, or types.ErrNoSnapshot when no
// snapshot has been written yet.
func (b *Backend) Load() ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var value string
	err := b.db.QueryRow(
		"SELECT value FROM snapshots WHERE key = ?", snapshotKey).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, types.ErrNoSnapshot
	}
	if err != nil {
		b.log.Error("read snapshot", zap.Error(err))
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	return []byte(value), nil
}

// Save overwrites the stored snapshot with data.
func (b *Backend) Save(data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	_, err := b.db.Exec(`
		INSERT INTO snapshots (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		snapshotKey, string(data), time.Now().Format(time.RFC3339))
	if err != nil {
		b.log.Error("write snapshot", zap.Error(err))
		return fmt.Errorf("writing snapshot: %w", err)
	}
	b.log.Debug("snapshot written", zap.Int("bytes", len(data)))
	return nil
}

// Close releases the database handle. Idempotent.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	return b.db.Close()
}
