// Package state persists and restores scroll position for spanned-grid
// layouts.
//
// The only layout state that survives a process lifecycle is a single
// integer: the first visible item index. Everything else (placements,
// free regions, pixel frames) is recomputed by the next full layout
// pass. This package defines the value type and a [Store] interface
// with implementations for different hosts:
//   - memory: in-process storage for tests and ephemeral hosts
//   - file: JSON files under the user config directory, for CLI hosts
//   - redis: shared storage for multi-instance deployments
//
// Stores are keyed by an arbitrary grid identifier so one host can
// persist several grids side by side.
package state

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no state is stored under a key.
var ErrNotFound = errors.New("not found")

// SavedState is the restorable scroll position: the index of the first
// visible item under a stable item order. Restoring re-issues it as a
// scroll-to-index request on the next full layout pass.
type SavedState struct {
	FirstVisible int `json:"first_visible"`
}

// Store is the interface for saved-state backends.
type Store interface {
	// Get retrieves the state stored under key.
	// Returns ErrNotFound when nothing is stored.
	Get(ctx context.Context, key string) (SavedState, error)

	// Set stores state under key, replacing any previous value.
	Set(ctx context.Context, key string, s SavedState) error

	// Delete removes the state stored under key. Deleting a missing key
	// is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
