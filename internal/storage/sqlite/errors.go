package sqlite

import "errors"

var (
	// ErrEmptyKey indicates an empty key was passed to a KV operation.
	ErrEmptyKey = errors.New("sqlite storage: key cannot be empty")
	// ErrClosed indicates the storage was used after Close.
	ErrClosed = errors.New("sqlite storage: closed")
)
