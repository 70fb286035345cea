package main

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/mgutz/tabledat/kvs"
	runner "github.com/mgutz/tabledat/sqlx-runner"
)

// openCache creates the store named by --cache: "memory" or a redis URL.
func openCache(spec string) (kvs.KeyValueStore, error) {
	if spec == "memory" {
		return kvs.NewDefaultMemoryStore(), nil
	}
	options, err := parseRedisURL(spec)
	if err != nil {
		return nil, err
	}
	return kvs.NewRedisStore(options), nil
}

// parseRedisURL parses redis://[:password@]host:port[/namespace]. The
// namespace defaults to "tabledat".
func parseRedisURL(spec string) (*kvs.RedisOptions, error) {
	u, err := url.Parse(spec)
	if err != nil {
		return nil, fmt.Errorf("Cannot parse --cache: %w", err)
	}
	if u.Scheme != "redis" || u.Host == "" {
		return nil, fmt.Errorf("--cache %q must be memory or redis://host:port", spec)
	}

	options := &kvs.RedisOptions{Host: u.Host, Namespace: "tabledat"}
	if u.User != nil {
		options.Password, _ = u.User.Password()
	}
	if ns := strings.Trim(u.Path, "/"); ns != "" {
		options.Namespace = ns
	}
	return options, nil
}

// configureCache turns on select caching for db when --cache is set. The
// returned closer releases the store.
func configureCache(db *runner.DB, options *CLIArgs) (io.Closer, error) {
	if options.Cache == "" {
		return nil, nil
	}
	if options.CacheTTL <= 0 {
		return nil, fmt.Errorf("--cacheTTL must be positive")
	}
	store, err := openCache(options.Cache)
	if err != nil {
		return nil, err
	}
	db.Cache(store, options.CacheTTL)
	closer, _ := store.(io.Closer)
	return closer, nil
}
