package tabledat

import "io"

// Cursor is a forward-only tabular result: column names plus rows. It is
// the shape of *sqlx.Rows.
type Cursor interface {
	Columns() ([]string, error)
	Next() bool
	SliceScan() ([]interface{}, error)
	Err() error
	Close() error
}

// SliceCursor is a Cursor over rows already in memory. Runners use it to
// replay cached results.
type SliceCursor struct {
	columns []string
	rows    [][]interface{}
	pos     int
	closed  bool
}

// NewSliceCursor creates a cursor over rows. Each row holds one value per
// column.
func NewSliceCursor(columns []string, rows [][]interface{}) *SliceCursor {
	return &SliceCursor{columns: columns, rows: rows}
}

// Columns implements Cursor.
func (sc *SliceCursor) Columns() ([]string, error) {
	return sc.columns, nil
}

// Next implements Cursor.
func (sc *SliceCursor) Next() bool {
	if sc.closed || sc.pos >= len(sc.rows) {
		return false
	}
	sc.pos++
	return true
}

// SliceScan implements Cursor.
func (sc *SliceCursor) SliceScan() ([]interface{}, error) {
	if sc.closed || sc.pos == 0 || sc.pos > len(sc.rows) {
		return nil, io.EOF
	}
	return sc.rows[sc.pos-1], nil
}

// Err implements Cursor.
func (sc *SliceCursor) Err() error {
	return nil
}

// Close implements Cursor.
func (sc *SliceCursor) Close() error {
	sc.closed = true
	return nil
}
