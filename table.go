package tabledat

import (
	"time"

	"github.com/mgutz/tabledat/common"
)

// AllColumns selects every column.
const AllColumns = "*"

// Table is the gateway to a single database table. Domain types embed a
// *Table and build typed methods on top of its Select, Insert, Update and
// Delete operations.
//
// Statements are plain SQL text with values rendered by WriteLiteral; there
// are no bind parameters and values are not escaped. UpdateAll, and Update
// or Delete with nil conditions, affect every row of the table.
//
// Errors from the Connection are returned unmodified.
type Table struct {
	name   string
	conn   Connection
	events EventReceiver
}

// Option configures a Table.
type Option func(*Table)

// WithEvents sets the receiver statements are reported to. The default
// logs them through logxi at debug level.
func WithEvents(events EventReceiver) Option {
	return func(t *Table) {
		if events == nil {
			events = NullEventReceiver{}
		}
		t.events = events
	}
}

// NewTable creates a Table bound to name. conn is shared, not owned: the
// caller closes it. A nil conn makes every operation fail with
// ErrDisconnected, which still allows building SQL.
func NewTable(name string, conn Connection, options ...Option) *Table {
	if conn == nil {
		conn = disconnected
	}
	t := &Table{name: name, conn: conn, events: defaultEvents}
	for _, option := range options {
		option(t)
	}
	return t
}

// Name returns the table name.
func (t *Table) Name() string {
	return t.name
}

// SelectAll returns every row with all columns.
func (t *Table) SelectAll() ([]*Record, error) {
	return t.SelectWhereSorted([]string{AllColumns}, nil, nil)
}

// SelectAllColumn returns column of every row.
func (t *Table) SelectAllColumn(column string) ([]interface{}, error) {
	return columnOf(column)(t.SelectAll())
}

// SelectAllWhere returns all columns of the rows matching conditions.
func (t *Table) SelectAllWhere(conditions *Conditions) ([]*Record, error) {
	return t.SelectWhereSorted([]string{AllColumns}, conditions, nil)
}

// SelectAllWhereColumn returns column of the rows matching conditions.
func (t *Table) SelectAllWhereColumn(conditions *Conditions, column string) ([]interface{}, error) {
	return columnOf(column)(t.SelectAllWhere(conditions))
}

// SelectAllSorted returns every row with all columns, sorted.
func (t *Table) SelectAllSorted(sorters *Sorters) ([]*Record, error) {
	return t.SelectWhereSorted([]string{AllColumns}, nil, sorters)
}

// SelectAllSortedColumn returns column of every row, sorted.
func (t *Table) SelectAllSortedColumn(sorters *Sorters, column string) ([]interface{}, error) {
	return columnOf(column)(t.SelectAllSorted(sorters))
}

// Select returns columns of every row.
func (t *Table) Select(columns ...string) ([]*Record, error) {
	return t.SelectWhereSorted(columns, nil, nil)
}

// SelectWhere returns columns of the rows matching conditions.
func (t *Table) SelectWhere(columns []string, conditions *Conditions) ([]*Record, error) {
	return t.SelectWhereSorted(columns, conditions, nil)
}

// SelectWhereSorted returns columns of the rows matching conditions, sorted.
// conditions and sorters may be nil.
func (t *Table) SelectWhereSorted(columns []string, conditions *Conditions, sorters *Sorters) ([]*Record, error) {
	sql := t.SelectSQL(columns, conditions, sorters)
	kvs := t.kvs(sql)

	t.events.EventKv("tabledat.select", kvs)
	start := time.Now()
	cursor, err := t.conn.Query(sql)
	if err != nil {
		t.events.EventErrKv("tabledat.select", err, kvs)
		return nil, err
	}
	records, err := Materialize(cursor)
	if err != nil {
		t.events.EventErrKv("tabledat.select", err, kvs)
		return nil, err
	}
	t.events.TimingKv("tabledat.select", time.Since(start).Nanoseconds(), kvs)
	return records, nil
}

// Insert inserts one row and reports whether any row was affected.
func (t *Table) Insert(values *Record) (bool, error) {
	return t.exec("tabledat.insert", t.InsertSQL(values))
}

// Update updates the rows matching conditions and reports whether any row
// was affected. nil conditions update every row.
func (t *Table) Update(values *Record, conditions *Conditions) (bool, error) {
	return t.exec("tabledat.update", t.UpdateSQL(values, conditions))
}

// UpdateAll updates every row of the table.
func (t *Table) UpdateAll(values *Record) (bool, error) {
	return t.Update(values, nil)
}

// Delete deletes the rows matching conditions and reports whether any row
// was affected. nil conditions delete every row.
func (t *Table) Delete(conditions *Conditions) (bool, error) {
	return t.exec("tabledat.delete", t.DeleteSQL(conditions))
}

// SelectSQL builds "SELECT columns FROM table [WHERE ...] [ORDER BY ...]".
func (t *Table) SelectSQL(columns []string, conditions *Conditions, sorters *Sorters) string {
	buf := bufPool.Get()
	defer bufPool.Put(buf)

	buf.WriteString("SELECT ")
	common.WriteJoined(buf, ", ", columns)
	buf.WriteString(" FROM ")
	buf.WriteString(t.name)
	writeConditions(buf, conditions)
	writeSorters(buf, sorters)
	return buf.String()
}

// InsertSQL builds "INSERT INTO table(c1, c2) VALUES (v1, v2)".
func (t *Table) InsertSQL(values *Record) string {
	buf := bufPool.Get()
	defer bufPool.Put(buf)

	buf.WriteString("INSERT INTO ")
	buf.WriteString(t.name)
	buf.WriteRune('(')
	common.WriteJoined(buf, ", ", values.Columns())
	buf.WriteString(") VALUES (")
	for i, v := range values.Values() {
		if i > 0 {
			buf.WriteString(", ")
		}
		WriteLiteral(buf, v)
	}
	buf.WriteRune(')')
	return buf.String()
}

// UpdateSQL builds "UPDATE table SET c1 = v1, c2 = v2 [WHERE ...]".
func (t *Table) UpdateSQL(values *Record, conditions *Conditions) string {
	buf := bufPool.Get()
	defer bufPool.Put(buf)

	buf.WriteString("UPDATE ")
	buf.WriteString(t.name)
	buf.WriteString(" SET ")
	i := 0
	values.Each(func(column string, v interface{}) {
		if i > 0 {
			buf.WriteString(", ")
		}
		i++
		buf.WriteString(column)
		buf.WriteString(" = ")
		WriteLiteral(buf, v)
	})
	writeConditions(buf, conditions)
	return buf.String()
}

// DeleteSQL builds "DELETE FROM table [WHERE ...]".
func (t *Table) DeleteSQL(conditions *Conditions) string {
	buf := bufPool.Get()
	defer bufPool.Put(buf)

	buf.WriteString("DELETE FROM ")
	buf.WriteString(t.name)
	writeConditions(buf, conditions)
	return buf.String()
}

func (t *Table) exec(eventName string, sql string) (bool, error) {
	kvs := t.kvs(sql)

	t.events.EventKv(eventName, kvs)
	start := time.Now()
	affected, err := t.conn.Exec(sql)
	if err != nil {
		t.events.EventErrKv(eventName, err, kvs)
		return false, err
	}
	t.events.TimingKv(eventName, time.Since(start).Nanoseconds(), kvs)
	return affected > 0, nil
}

func (t *Table) kvs(sql string) map[string]string {
	return map[string]string{"table": t.name, "sql": sql}
}

func writeConditions(buf common.BufferWriter, conditions *Conditions) {
	if conditions.IsEmpty() {
		return
	}
	buf.WriteRune(' ')
	conditions.writeSQL(buf)
}

func writeSorters(buf common.BufferWriter, sorters *Sorters) {
	if sorters.Len() == 0 {
		return
	}
	buf.WriteRune(' ')
	sorters.writeSQL(buf)
}

// columnOf adapts a records result into a single column result.
func columnOf(column string) func([]*Record, error) ([]interface{}, error) {
	return func(records []*Record, err error) ([]interface{}, error) {
		if err != nil {
			return nil, err
		}
		return Column(column, records), nil
	}
}
