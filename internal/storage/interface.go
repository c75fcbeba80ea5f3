// Package storage provides the persisted key-value space shared by the
// favorites store and user preferences.
package storage

import "errors"

// ErrEmptyKey indicates an empty key was passed to a KV operation.
var ErrEmptyKey = errors.New("storage: key cannot be empty")

// KV is a flat string key-value store. Writes are last-writer-wins.
type KV interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
	// Keys returns all keys in lexical order.
	Keys() ([]string, error)
	// Clear removes every key.
	Clear() error
	// Close releases resources held by the store.
	Close() error
}
