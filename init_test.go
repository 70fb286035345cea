package tabledat

import (
	"errors"
)

// recordingConn is a Connection which records statements and replays
// canned results.
type recordingConn struct {
	statements []string
	cursor     Cursor
	affected   int64
	err        error
}

func (rc *recordingConn) Query(sql string) (Cursor, error) {
	rc.statements = append(rc.statements, sql)
	if rc.err != nil {
		return nil, rc.err
	}
	if rc.cursor == nil {
		return NewSliceCursor(nil, nil), nil
	}
	return rc.cursor, nil
}

func (rc *recordingConn) Exec(sql string) (int64, error) {
	rc.statements = append(rc.statements, sql)
	return rc.affected, rc.err
}

func (rc *recordingConn) last() string {
	if len(rc.statements) == 0 {
		return ""
	}
	return rc.statements[len(rc.statements)-1]
}

var errBoom = errors.New("boom")

func newTestTable(conn Connection) *Table {
	return NewTable("users", conn, WithEvents(NullEventReceiver{}))
}

// usersCursor is a two row, two column result.
func usersCursor() *SliceCursor {
	return NewSliceCursor(
		[]string{"id", "name"},
		[][]interface{}{
			{int64(1), "Bob"},
			{int64(2), []byte("Carol")},
		},
	)
}
