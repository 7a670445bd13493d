package storage

import "errors"

var (
	// ErrUnavailable is returned when no persistent store is configured.
	ErrUnavailable = errors.New("storage unavailable")
	// ErrQuotaExceeded is returned when a write would exceed the store's quota.
	ErrQuotaExceeded = errors.New("storage quota exceeded")
)

// Store is a string key-value store holding serialized values.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)
	// Set replaces the value for key.
	Set(key, value string) error
	// Remove deletes key. Removing a missing key is not an error.
	Remove(key string) error
	Close() error
}
