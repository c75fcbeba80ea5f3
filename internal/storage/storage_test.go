package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKV(t *testing.T) {
	m := NewMemoryFrom(map[string]string{"theme": "light"})

	v, ok, err := m.Get("theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", v)

	require.NoError(t, m.Set("sound-muted", "true"))
	keys, err := m.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"sound-muted", "theme"}, keys)

	require.NoError(t, m.Delete("theme"))
	_, ok, err = m.Get("theme")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Clear())
	keys, err = m.Keys()
	require.NoError(t, err)
	assert.Empty(t, keys)
	assert.Equal(t, 3, m.Writes())

	assert.ErrorIs(t, m.Set("", "x"), ErrEmptyKey)
}

func TestOpenMemory(t *testing.T) {
	kv, err := Open(MemoryPath)
	require.NoError(t, err)
	assert.IsType(t, &MemoryKV{}, kv)
}

func TestOpenEmptyPath(t *testing.T) {
	_, err := Open("")
	require.Error(t, err)
}

func TestOpenSQLite(t *testing.T) {
	kv, err := Open(filepath.Join(t.TempDir(), "swipewaifu.db"))
	require.NoError(t, err)
	defer kv.Close()

	require.NoError(t, kv.Set("k", "v"))
	v, ok, err := kv.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestOpenFallsBackToMemory(t *testing.T) {
	orig := openSQLite
	t.Cleanup(func() { openSQLite = orig })
	openSQLite = func(string) (KV, error) { return nil, errors.New("disk full") }

	kv, err := Open("/somewhere/swipewaifu.db")
	require.NoError(t, err)
	assert.IsType(t, &MemoryKV{}, kv)
}
