// Package file implements the plain-file snapshot backend for the daybook
// state store. The state document lives in a single state.json file written
// with the temp-file, fsync, rename pattern so a crash mid-write never
// leaves a torn snapshot.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/daybook/pkg/types"
)

// stateFileName is the snapshot file created inside the data directory.
const stateFileName = "state.json"

// Backend implements types.Backend over a single JSON file.
type Backend struct {
	path string
}

// Open creates the data directory if needed and returns a Backend writing to
// state.json inside it.
func Open(dataDir string) (*Backend, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return &Backend{path: filepath.Join(dataDir, stateFileName)}, nil
}

// Load returns the stored snapshot bytes, or types.ErrNoSnapshot when the
// file does not exist.
func (b *Backend) Load() ([]byte, error) {
	data, err := os.ReadFile(b.path)
	if os.IsNotExist(err) {
		return nil, types.ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", b.path, err)
	}
	return data, nil
}

// Save atomically overwrites the snapshot file with data.
func (b *Backend) Save(data []byte) error {
	dir := filepath.Dir(b.path)
	tmp, err := os.CreateTemp(dir, ".state-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, b.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// Close is a no-op; the file handle is not held open between writes.
func (b *Backend) Close() error {
	return nil
}
