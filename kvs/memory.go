package kvs

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryKeyValueStore is an in-process KeyValueStore.
type MemoryKeyValueStore struct {
	cache           *gocache.Cache
	cleanupInterval time.Duration
}

// NewDefaultMemoryStore creates a MemoryKeyValueStore purging expired keys
// every 30 seconds.
func NewDefaultMemoryStore() KeyValueStore {
	return NewMemoryKeyValueStore(30 * time.Second)
}

// NewMemoryKeyValueStore creates a MemoryKeyValueStore purging expired keys
// every cleanupInterval. Expired keys are never returned, even before they
// are purged.
func NewMemoryKeyValueStore(cleanupInterval time.Duration) *MemoryKeyValueStore {
	return &MemoryKeyValueStore{
		cache:           gocache.New(gocache.NoExpiration, cleanupInterval),
		cleanupInterval: cleanupInterval,
	}
}

// Set sets a key with time-to-live.
func (store *MemoryKeyValueStore) Set(key, value string, ttl time.Duration) error {
	if ttl == TTLNever {
		ttl = gocache.NoExpiration
	}
	store.cache.Set(key, value, ttl)
	return nil
}

// Get retrieves a value given key.
func (store *MemoryKeyValueStore) Get(key string) (string, error) {
	val, found := store.cache.Get(key)
	if !found {
		return "", ErrNotFound
	}
	return val.(string), nil
}

// Del deletes value given key.
func (store *MemoryKeyValueStore) Del(key string) error {
	store.cache.Delete(key)
	return nil
}

// FlushDB clears all keys.
func (store *MemoryKeyValueStore) FlushDB() error {
	store.cache.Flush()
	return nil
}
