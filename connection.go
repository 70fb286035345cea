package tabledat

// Connection executes statement text against a database. It is the only
// dependency a Table has on the outside world; pooling, timeouts, retries
// and transactions are the Connection's business.
//
// A Table calls the Connection once per operation without any locking. A
// Connection shared by goroutines must be safe for concurrent use.
type Connection interface {
	// Query runs a read statement and returns its rows.
	Query(sql string) (Cursor, error)
	// Exec runs a write statement and returns the number of rows affected.
	Exec(sql string) (int64, error)
}

var disconnected = &disconnectedConnection{}

// disconnectedConnection is the connection of a Table created without one.
type disconnectedConnection struct{}

func (disconnectedConnection) Query(sql string) (Cursor, error) {
	return nil, ErrDisconnected
}

func (disconnectedConnection) Exec(sql string) (int64, error) {
	return 0, ErrDisconnected
}
