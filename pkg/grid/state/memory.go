package state

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store for tests and ephemeral hosts.
type MemoryStore struct {
	mu     sync.RWMutex
	states map[string]SavedState
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: make(map[string]SavedState)}
}

// Get retrieves the state stored under key.
func (m *MemoryStore) Get(ctx context.Context, key string) (SavedState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.states[key]
	if !ok {
		return SavedState{}, ErrNotFound
	}
	return s, nil
}

// Set stores state under key.
func (m *MemoryStore) Set(ctx context.Context, key string, s SavedState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[key] = s
	return nil
}

// Delete removes the state stored under key.
func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, key)
	return nil
}

// Close does nothing for the memory store.
func (m *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)
