package storage

import (
	"fmt"
	"strings"

	"github.com/cristianoliveira/swipewaifu/internal/colors"
	"github.com/cristianoliveira/swipewaifu/internal/config"
	"github.com/cristianoliveira/swipewaifu/internal/storage/sqlite"
)

// MemoryPath selects the in-memory backend when used as db_path.
const MemoryPath = ":memory:"

var _ KV = (*sqlite.SQLiteStorage)(nil)

var openSQLite = func(path string) (KV, error) {
	return sqlite.NewSQLiteStorage(path)
}

// NewFromConfig opens the KV configured by db_path.
func NewFromConfig() (KV, error) {
	return Open(config.Get("db_path", ""))
}

// Open returns a SQLite KV at path, or an in-memory KV for MemoryPath.
// When SQLite cannot be opened the caller still gets a working in-memory
// store so the session is not lost; the failure is reported as a warning.
func Open(path string) (KV, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("storage: db_path not configured")
	}
	if path == MemoryPath {
		return NewMemory(), nil
	}
	kv, err := openSQLite(path)
	if err != nil {
		colors.Warning(fmt.Sprintf("failed to open %s, changes will not be saved: %v", path, err))
		return NewMemory(), nil
	}
	return kv, nil
}
