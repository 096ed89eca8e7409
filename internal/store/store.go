// Package store provides a small key-value store used as the translation
// result cache.
package store

import (
	"errors"
	"time"
)

// ErrNotFound is returned by Get when a key does not exist or has expired.
var ErrNotFound = errors.New("store: key not found")

// Store is a key-value store interface with TTL support.
type Store interface {
	// Set stores a key-value pair, expiring after ttl. A ttl of 0 means
	// no expiry.
	Set(key string, value []byte, ttl time.Duration) error

	// Get retrieves a value by its key. Returns ErrNotFound if the key
	// does not exist.
	Get(key string) ([]byte, error)

	// Delete removes a key.
	Delete(key string) error

	// Close releases store resources.
	Close() error
}
