package runner

import (
	"encoding/json"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/mgutz/tabledat"
	"github.com/mgutz/tabledat/kvs"
)

// cachedResult is how a SELECT result is stored in the cache. Integral
// numbers come back as int64, other numbers as float64.
type cachedResult struct {
	Columns []string        `json:"columns"`
	Rows    [][]interface{} `json:"rows"`
}

func (db *DB) cacheEnabled() bool {
	return db.cache != nil && db.cacheTTL > 0
}

// cachedCursor returns a cursor over the cached result of sql or nil on a
// miss.
func (db *DB) cachedCursor(sql string) tabledat.Cursor {
	if !db.cacheEnabled() {
		return nil
	}

	key := kvs.Hash(sql)
	s, err := db.cache.Get(key)
	if err != nil {
		if err != kvs.ErrNotFound {
			logger.Error("Unable to read cache key. Continuing with query", "key", key, "err", err)
		}
		return nil
	}

	var result cachedResult
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	if err := dec.Decode(&result); err != nil {
		logger.Warn("Could not unmarshal cache data. Continuing with query", "key", key, "err", err)
		return nil
	}
	for _, row := range result.Rows {
		for i, cell := range row {
			if n, ok := cell.(json.Number); ok {
				row[i] = numberValue(n)
			}
		}
	}
	return tabledat.NewSliceCursor(result.Columns, result.Rows)
}

// numberValue restores a cached number as int64 when it is integral, so
// large integers keep every digit, and as float64 otherwise.
func numberValue(n json.Number) interface{} {
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}

// cacheRows drains rows, stores them under the hash of sql and returns a
// cursor over the drained rows.
func (db *DB) cacheRows(sql string, rows *sqlx.Rows) (tabledat.Cursor, error) {
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	result := cachedResult{Columns: columns, Rows: [][]interface{}{}}
	for rows.Next() {
		cells, err := rows.SliceScan()
		if err != nil {
			return nil, err
		}
		for i, cell := range cells {
			if b, ok := cell.([]byte); ok {
				cells[i] = string(b)
			}
		}
		result.Rows = append(result.Rows, cells)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	key := kvs.Hash(sql)
	b, err := json.Marshal(result)
	if err != nil {
		logger.Warn("Could not marshal data, not caching", "key", key, "err", err)
	} else if err := db.cache.Set(key, string(b), db.cacheTTL); err != nil {
		logger.Warn("Could not set cache. Query will proceed without caching", "key", key, "err", err)
	}
	return tabledat.NewSliceCursor(columns, result.Rows), nil
}
