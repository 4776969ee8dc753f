// Package settings holds key-value stores for the platform options backlist reads.
package settings

import (
	"context"
	"errors"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("settings: store closed")

// UpdateFunc computes a new value from the current one. Returning an error
// aborts the update and leaves the stored value unchanged.
type UpdateFunc func(current string) (string, error)

// Stats captures counts and metadata for a store.
type Stats struct {
	Keys        uint64
	Version     uint64 // incremented on every successful write
	UpdatedUnix int64  // seconds since epoch of the last write, 0 if never written
}

// Store is a string-valued option store.
// - Get: a missing key reads as "" with no error
// - Set: overwrite a key
// - Update: atomic read-modify-write of a single key
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Update(ctx context.Context, key string, fn UpdateFunc) error
	Stats() Stats
	Close() error
}
