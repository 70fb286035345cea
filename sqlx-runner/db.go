package runner

import (
	"database/sql"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/jmoiron/sqlx"
	"github.com/mgutz/tabledat"
	"github.com/mgutz/tabledat/kvs"
)

// DB is a tabledat.Connection over a database/sql connection pool.
type DB struct {
	DB *sqlx.DB

	cache    kvs.KeyValueStore
	cacheTTL time.Duration
}

// NewDB instantiates a DB for a given database/sql connection.
func NewDB(db *sql.DB, driverName string) *DB {
	return NewDBFromSqlx(sqlx.NewDb(db, driverName))
}

// NewDBFromSqlx creates a new DB from an existing sqlx.DB.
func NewDBFromSqlx(dbx *sqlx.DB) *DB {
	return &DB{DB: dbx}
}

// NewDBFromString opens a DB from a driver name and connection string and
// pings it once.
func NewDBFromString(driver string, connectionString string) (*DB, error) {
	dbx, err := sqlx.Open(driver, connectionString)
	if err != nil {
		return nil, logger.Error("Database error", "err", err)
	}
	if err = dbx.Ping(); err != nil {
		dbx.Close()
		return nil, logger.Error("Could not ping database", "err", err)
	}
	return NewDBFromSqlx(dbx), nil
}

// Open opens a DB and retries the first ping with exponential backoff for
// up to ConnectTimeout. Use it when the database may still be starting.
func Open(driver string, connectionString string) (*DB, error) {
	dbx, err := sqlx.Open(driver, connectionString)
	if err != nil {
		return nil, logger.Error("Database error", "err", err)
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = ConnectTimeout
	err = backoff.Retry(func() error {
		err := dbx.Ping()
		if err != nil {
			logger.Warn("Could not ping database, retrying", "err", err)
		}
		return err
	}, policy)
	if err != nil {
		dbx.Close()
		return nil, logger.Error("Could not ping database", "err", err)
	}
	return NewDBFromSqlx(dbx), nil
}

// Cache caches SELECT results in store for ttl. Cached results are replayed
// without touching the database until they expire; writes do not
// invalidate them. A nil store or ttl <= 0 disables caching.
func (db *DB) Cache(store kvs.KeyValueStore, ttl time.Duration) *DB {
	db.cache = store
	db.cacheTTL = ttl
	return db
}

// Table creates a tabledat.Table using db as its connection.
func (db *DB) Table(name string, options ...tabledat.Option) *tabledat.Table {
	return tabledat.NewTable(name, db, options...)
}

// Close closes the underlying pool.
func (db *DB) Close() error {
	return db.DB.Close()
}
