package runner

import (
	"time"

	"github.com/lib/pq"
	"github.com/mgutz/tabledat"
	guid "github.com/satori/go.uuid"
)

// Query implements tabledat.Connection. The returned cursor is a
// *sqlx.Rows, or a replayed result when caching is enabled.
func (db *DB) Query(sql string) (tabledat.Cursor, error) {
	if cursor := db.cachedCursor(sql); cursor != nil {
		return cursor, nil
	}

	id := statementID()
	defer logExecutionTime(time.Now(), id, sql)
	rows, err := db.DB.Queryx(sql)
	if err != nil {
		return nil, logSQLError(err, "Query", id, sql)
	}
	if !db.cacheEnabled() {
		return rows, nil
	}
	return db.cacheRows(sql, rows)
}

// Exec implements tabledat.Connection.
func (db *DB) Exec(sql string) (int64, error) {
	id := statementID()
	defer logExecutionTime(time.Now(), id, sql)
	result, err := db.DB.Exec(sql)
	if err != nil {
		return 0, logSQLError(err, "Exec", id, sql)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, logSQLError(err, "Exec.RowsAffected", id, sql)
	}
	return affected, nil
}

// statementID tags the log lines of a single statement.
func statementID() string {
	return guid.NewV4().String()
}

// logSQLError logs err and returns it unmodified.
func logSQLError(err error, msg string, id string, statement string) error {
	if pe, ok := err.(*pq.Error); ok {
		return logger.Error(msg, "err", err, "code", string(pe.Code), "id", id, "sql", statement)
	}
	return logger.Error(msg, "err", err, "id", id, "sql", statement)
}

func logExecutionTime(start time.Time, id string, sql string) {
	logged := false
	if logger.IsWarn() {
		elapsed := time.Since(start)
		if LogQueriesThreshold > 0 && elapsed > LogQueriesThreshold {
			logger.Warn("SLOW query", "elapsed", elapsed.String(), "id", id, "sql", sql)
			logged = true
		}
	}

	if logger.IsInfo() && !logged {
		elapsed := time.Since(start)
		logger.Info("Query time", "elapsed", elapsed.String(), "id", id, "sql", sql)
	}
}
