// Package kvs provides the key-value stores runners cache query results in.
package kvs

import (
	"errors"
	"hash/fnv"
	"strconv"
	"time"
)

// KeyValueStore represents simple key value storage.
type KeyValueStore interface {
	// Set sets key to value. TTLNever keeps it until deleted.
	Set(key, value string, ttl time.Duration) error
	// Get returns ErrNotFound if key is absent or expired.
	Get(key string) (string, error)
	Del(key string) error
	FlushDB() error
}

// TTLNever means do not expire a key
const TTLNever time.Duration = -1

// ErrNotFound is returned when a key is not in the store.
var ErrNotFound = errors.New("key not found")

// Hash returns the FNV-1a hash of s in hex. Runners use it to key cached
// statements.
func Hash(s string) string {
	h := fnv.New64a()
	h.Write([]byte(s))
	return strconv.FormatUint(h.Sum64(), 16)
}
