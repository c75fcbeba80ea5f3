package storage

import (
	"sort"
	"sync"
)

// MemoryKV is an in-process KV used for tests and when no database path is configured.
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string]string
	writes int
}

var _ KV = (*MemoryKV)(nil)

// NewMemory returns an empty in-memory KV.
func NewMemory() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

// NewMemoryFrom returns an in-memory KV seeded with values.
func NewMemoryFrom(values map[string]string) *MemoryKV {
	m := NewMemory()
	for k, v := range values {
		m.values[k] = v
	}
	return m
}

func (m *MemoryKV) Get(key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrEmptyKey
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	m.writes++
	return nil
}

func (m *MemoryKV) Delete(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	m.writes++
	return nil
}

func (m *MemoryKV) Keys() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *MemoryKV) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = make(map[string]string)
	m.writes++
	return nil
}

func (m *MemoryKV) Close() error {
	return nil
}

// Writes returns how many mutating calls the store has served.
func (m *MemoryKV) Writes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writes
}
