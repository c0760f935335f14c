package state

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists saved state as JSON files for CLI hosts.
// Keys are hashed into filenames, so any string is a valid key.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a file-based store rooted at baseDir.
// If baseDir is empty, it defaults to ~/.config/spangrid/state/.
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "spangrid", "state")
	}
	if err := os.MkdirAll(baseDir, 0o700); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

// Path returns the base directory for state files.
func (f *FileStore) Path() string { return f.baseDir }

func (f *FileStore) statePath(key string) string {
	sum := sha256.Sum256([]byte(key))
	return filepath.Join(f.baseDir, hex.EncodeToString(sum[:8])+".json")
}

// Get retrieves the state stored under key.
func (f *FileStore) Get(ctx context.Context, key string) (SavedState, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	data, err := os.ReadFile(f.statePath(key))
	if os.IsNotExist(err) {
		return SavedState{}, ErrNotFound
	}
	if err != nil {
		return SavedState{}, fmt.Errorf("read state file: %w", err)
	}

	var s SavedState
	if err := json.Unmarshal(data, &s); err != nil {
		return SavedState{}, fmt.Errorf("parse state: %w", err)
	}
	return s, nil
}

// Set stores state under key.
func (f *FileStore) Set(ctx context.Context, key string, s SavedState) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	if err := os.WriteFile(f.statePath(key), data, 0o600); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}

// Delete removes the state stored under key.
func (f *FileStore) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.statePath(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove state file: %w", err)
	}
	return nil
}

// Close does nothing for the file store.
func (f *FileStore) Close() error { return nil }

var _ Store = (*FileStore)(nil)
