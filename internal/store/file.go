package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps the wizard blob in a single JSON file. It is the CLI-side
// stand-in for the browser's local storage: same single-blob contract, same
// tolerance for a missing or corrupt payload.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultFileStore places the blob under the user config directory, falling
// back to the working directory when none is available.
func DefaultFileStore() *FileStore {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return NewFileStore(filepath.Join(dir, "resume-wizard", StorageKey+".json"))
}

// Load reads and decodes the blob. A missing file returns (nil, nil); a
// corrupt file also returns (nil, nil) since the caller falls back to
// defaults either way.
func (fs *FileStore) Load() (*PersistedState, error) {
	data, err := os.ReadFile(fs.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}
	return Decode(data), nil
}

// Save writes the blob, creating parent directories as needed.
func (fs *FileStore) Save(ps *PersistedState) error {
	data, err := json.MarshalIndent(ps, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(fs.path), 0o755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	if err := os.WriteFile(fs.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	return nil
}

// Clear removes the blob. Clearing an absent blob is not an error.
func (fs *FileStore) Clear() error {
	err := os.Remove(fs.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove state file: %w", err)
	}
	return nil
}
