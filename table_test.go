package tabledat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func BenchmarkSelectSql(b *testing.B) {
	users := newTestTable(nil)
	conditions := Where("a", "=", 1).And("b", "IN", []string{"x", "y"})
	sorters := OrderBy("c", "asc")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		users.SelectSQL([]string{"a", "b"}, conditions, sorters)
	}
}

func BenchmarkInsertSql(b *testing.B) {
	users := newTestTable(nil)
	values := RecordOf("id", 1, "name", "Bob", "age", 30)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		users.InsertSQL(values)
	}
}

func TestSelectSQLClauseOrder(t *testing.T) {
	users := newTestTable(nil)
	conditions := Where("age", ">", 30).Or("name", "=", "Bob")
	sorters := OrderBy("name", "asc").AndBy("age", "desc")

	assert.Equal(t, "SELECT id, name FROM users",
		users.SelectSQL([]string{"id", "name"}, nil, nil))
	assert.Equal(t, "SELECT id, name FROM users WHERE age > 30 OR name = 'Bob'",
		users.SelectSQL([]string{"id", "name"}, conditions, nil))
	assert.Equal(t, "SELECT id, name FROM users ORDER BY name ASC, age DESC",
		users.SelectSQL([]string{"id", "name"}, nil, sorters))
	assert.Equal(t, "SELECT id, name FROM users WHERE age > 30 OR name = 'Bob' ORDER BY name ASC, age DESC",
		users.SelectSQL([]string{"id", "name"}, conditions, sorters))
}

func TestSelectSQLOmitsEmptyBuilders(t *testing.T) {
	users := newTestTable(nil)
	sql := users.SelectSQL([]string{AllColumns}, NewConditions(), NewSorters())
	assert.Equal(t, "SELECT * FROM users", sql)
}

func TestInsertSQL(t *testing.T) {
	users := newTestTable(nil)
	sql := users.InsertSQL(RecordOf("id", 1, "name", "Bob"))
	assert.Equal(t, "INSERT INTO users(id, name) VALUES (1, 'Bob')", sql)

	sql = users.InsertSQL(RecordOf("name", "Bob", "id", 1, "tags", []string{"a"}, "deleted_at", nil))
	assert.Equal(t, "INSERT INTO users(name, id, tags, deleted_at) VALUES ('Bob', 1, ('a'), NULL)", sql)
}

func TestUpdateSQL(t *testing.T) {
	users := newTestTable(nil)
	values := RecordOf("name", "Carol", "age", 31)
	assert.Equal(t, "UPDATE users SET name = 'Carol', age = 31", users.UpdateSQL(values, nil))
	assert.Equal(t, "UPDATE users SET name = 'Carol', age = 31 WHERE id = 2",
		users.UpdateSQL(values, Where("id", "=", 2)))
}

func TestDeleteSQL(t *testing.T) {
	users := newTestTable(nil)
	assert.Equal(t, "DELETE FROM users", users.DeleteSQL(nil))
	assert.Equal(t, "DELETE FROM users WHERE id IN (1, 2)", users.DeleteSQL(Where("id", "IN", []int{1, 2})))
}

func TestSelectAllVariants(t *testing.T) {
	conn := &recordingConn{}
	users := newTestTable(conn)
	conditions := Where("id", "=", 1)
	sorters := OrderBy("name", "desc")

	conn.cursor = usersCursor()
	records, err := users.SelectAll()
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "SELECT * FROM users", conn.last())

	conn.cursor = usersCursor()
	names, err := users.SelectAllColumn("name")
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"Bob", "Carol"}, names)

	conn.cursor = usersCursor()
	_, err = users.SelectAllWhere(conditions)
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM users WHERE id = 1", conn.last())

	conn.cursor = usersCursor()
	ids, err := users.SelectAllWhereColumn(conditions, "id")
	require.NoError(t, err)
	assert.Equal(t, []interface{}{int64(1), int64(2)}, ids)
	assert.Equal(t, "SELECT * FROM users WHERE id = 1", conn.last())

	conn.cursor = usersCursor()
	_, err = users.SelectAllSorted(sorters)
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM users ORDER BY name DESC", conn.last())

	conn.cursor = usersCursor()
	_, err = users.SelectAllSortedColumn(sorters, "name")
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM users ORDER BY name DESC", conn.last())
}

func TestSelectVariants(t *testing.T) {
	conn := &recordingConn{}
	users := newTestTable(conn)

	_, err := users.Select("id", "name")
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, name FROM users", conn.last())

	_, err = users.SelectWhere([]string{"id"}, Where("name", "LIKE", "B%"))
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM users WHERE name LIKE 'B%'", conn.last())

	_, err = users.SelectWhereSorted([]string{"id"}, nil, OrderBy("id", "asc"))
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM users ORDER BY id ASC", conn.last())
}

func TestWritesReportAffectedRows(t *testing.T) {
	conn := &recordingConn{affected: 1}
	users := newTestTable(conn)

	ok, err := users.Insert(RecordOf("id", 1, "name", "Bob"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "INSERT INTO users(id, name) VALUES (1, 'Bob')", conn.last())

	ok, err = users.Update(RecordOf("name", "Carol"), Where("id", "=", 1))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "UPDATE users SET name = 'Carol' WHERE id = 1", conn.last())

	ok, err = users.Delete(Where("id", "=", 1))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "DELETE FROM users WHERE id = 1", conn.last())

	conn.affected = 0
	ok, err = users.Delete(Where("id", "=", 1))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdateAllHasNoGuard(t *testing.T) {
	conn := &recordingConn{affected: 3}
	users := newTestTable(conn)

	ok, err := users.UpdateAll(RecordOf("name", "Carol"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "UPDATE users SET name = 'Carol'", conn.last())

	ok, err = users.Delete(nil)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "DELETE FROM users", conn.last())
}

func TestConnectionErrorsPropagate(t *testing.T) {
	conn := &recordingConn{err: errBoom}
	users := newTestTable(conn)

	_, err := users.SelectAll()
	assert.Equal(t, errBoom, err)
	_, err = users.SelectAllColumn("id")
	assert.Equal(t, errBoom, err)
	ok, err := users.Insert(RecordOf("id", 1))
	assert.Equal(t, errBoom, err)
	assert.False(t, ok)
}

func TestDisconnectedTable(t *testing.T) {
	users := NewTable("users", nil)
	assert.Equal(t, "users", users.Name())

	_, err := users.SelectAll()
	assert.Equal(t, ErrDisconnected, err)
	_, err = users.Delete(nil)
	assert.Equal(t, ErrDisconnected, err)
	assert.Equal(t, "DELETE FROM users", users.DeleteSQL(nil))
}

// people shows the intended use: a domain type embedding a Table.
type people struct {
	*Table
}

func (p *people) namesOlderThan(age int) ([]interface{}, error) {
	return p.SelectAllWhereColumn(Where("age", ">", age), "name")
}

func TestEmbeddedTable(t *testing.T) {
	conn := &recordingConn{cursor: usersCursor()}
	p := &people{NewTable("people", conn, WithEvents(nil))}

	names, err := p.namesOlderThan(30)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"Bob", "Carol"}, names)
	assert.Equal(t, "SELECT * FROM people WHERE age > 30", conn.last())
}
