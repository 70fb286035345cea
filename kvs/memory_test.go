package kvs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryKeyValueStore(time.Minute)

	_, err := store.Get("missing")
	assert.Equal(t, ErrNotFound, err)

	require.NoError(t, store.Set("a", "1", time.Minute))
	v, err := store.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "1", v)

	require.NoError(t, store.Del("a"))
	_, err = store.Get("a")
	assert.Equal(t, ErrNotFound, err)
}

func TestMemoryStoreExpires(t *testing.T) {
	store := NewMemoryKeyValueStore(time.Minute)
	require.NoError(t, store.Set("a", "1", time.Millisecond))
	time.Sleep(5 * time.Millisecond)
	_, err := store.Get("a")
	assert.Equal(t, ErrNotFound, err)
}

func TestMemoryStoreNeverExpires(t *testing.T) {
	store := NewMemoryKeyValueStore(time.Minute)
	require.NoError(t, store.Set("a", "1", TTLNever))
	v, err := store.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "1", v)
}

func TestMemoryStoreFlush(t *testing.T) {
	store := NewDefaultMemoryStore()
	require.NoError(t, store.Set("a", "1", time.Minute))
	require.NoError(t, store.Set("b", "2", time.Minute))
	require.NoError(t, store.FlushDB())
	_, err := store.Get("a")
	assert.Equal(t, ErrNotFound, err)
	_, err = store.Get("b")
	assert.Equal(t, ErrNotFound, err)
}

func TestHash(t *testing.T) {
	assert.Equal(t, Hash("SELECT 1"), Hash("SELECT 1"))
	assert.NotEqual(t, Hash("SELECT 1"), Hash("SELECT 2"))
	assert.NotEmpty(t, Hash(""))
}
