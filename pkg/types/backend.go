package types

import "errors"

// Backend is a durable blob store holding one serialized AppState snapshot.
// Load reads the current snapshot; Save overwrites it wholesale. There is no
// incremental write: the store always persists the full document.
type Backend interface {
	// Load returns the stored snapshot bytes.
	// Returns ErrNoSnapshot when no snapshot has been written yet.
	Load() ([]byte, error)

	// Save overwrites the stored snapshot with data.
	Save(data []byte) error

	// Close releases backend resources. Idempotent.
	Close() error
}

// Backend errors.
var (
	ErrNoSnapshot = errors.New("no snapshot stored")
)
