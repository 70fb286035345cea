package kvs

import (
	"time"

	"github.com/garyburd/redigo/redis"
)

// RedisOptions configure a RedisStore.
type RedisOptions struct {
	// Namespace prefixes every key as "namespace:key".
	Namespace string
	// Host is "host:port". Defaults to ":6379".
	Host     string
	Password string
	// MaxIdle defaults to 3.
	MaxIdle int
	// Dial replaces dialing Host, e.g. to use TLS or a proxy.
	Dial func() (redis.Conn, error)
}

func newRedisPool(options *RedisOptions) *redis.Pool {
	return &redis.Pool{
		MaxIdle:     options.MaxIdle,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redis.Conn, error) {
			dial := options.Dial
			if dial == nil {
				dial = func() (redis.Conn, error) { return redis.Dial("tcp", options.Host) }
			}
			c, err := dial()
			if err != nil {
				return nil, err
			}
			if options.Password != "" {
				if _, err := c.Do("AUTH", options.Password); err != nil {
					c.Close()
					return nil, err
				}
			}
			return c, err
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			_, err := c.Do("PING")
			return err
		},
	}
}

// RedisStore is a KeyValueStore backed by Redis.
type RedisStore struct {
	pool *redis.Pool
	ns   string
}

// NewDefaultRedisStore connects to Redis on localhost with namespace
// "tabledat".
func NewDefaultRedisStore() *RedisStore {
	return NewRedisStore(&RedisOptions{Namespace: "tabledat"})
}

// NewRedisStore creates a RedisStore. Connections are made lazily.
func NewRedisStore(options *RedisOptions) *RedisStore {
	opts := *options
	if opts.Host == "" {
		opts.Host = ":6379"
	}
	if opts.MaxIdle == 0 {
		opts.MaxIdle = 3
	}
	logger.Info("Creating redis pool", "ns", opts.Namespace, "host", opts.Host, "usingPassword", opts.Password != "")
	return &RedisStore{ns: opts.Namespace + ":", pool: newRedisPool(&opts)}
}

// Set sets a key's value with TTL. Use TTLNever to never expire.
func (rs *RedisStore) Set(key, value string, ttl time.Duration) error {
	conn := rs.pool.Get()
	defer conn.Close()

	var err error
	if ttl == TTLNever {
		_, err = conn.Do("SET", rs.ns+key, value)
	} else {
		_, err = conn.Do("SET", rs.ns+key, value, "PX", int64(ttl/time.Millisecond))
	}
	return err
}

// Get gets the value of key.
func (rs *RedisStore) Get(key string) (string, error) {
	conn := rs.pool.Get()
	defer conn.Close()

	s, err := redis.String(conn.Do("GET", rs.ns+key))
	if err == redis.ErrNil {
		return "", ErrNotFound
	} else if err != nil {
		return "", err
	}
	return s, nil
}

// Del deletes a key.
func (rs *RedisStore) Del(key string) error {
	conn := rs.pool.Get()
	defer conn.Close()
	_, err := conn.Do("DEL", rs.ns+key)
	return err
}

// FlushDB removes the keys of this store's namespace.
func (rs *RedisStore) FlushDB() error {
	conn := rs.pool.Get()
	defer conn.Close()

	keys, err := redis.Strings(conn.Do("KEYS", rs.ns+"*"))
	if err != nil || len(keys) == 0 {
		return err
	}
	args := make([]interface{}, len(keys))
	for i, k := range keys {
		args[i] = k
	}
	_, err = conn.Do("DEL", args...)
	return err
}

// Close closes the connection pool.
func (rs *RedisStore) Close() error {
	return rs.pool.Close()
}
