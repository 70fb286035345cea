package runner

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/mgutz/tabledat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func newSqliteDB(t *testing.T) *DB {
	dbx, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// every connection of :memory: is a separate database
	dbx.SetMaxOpenConns(1)
	t.Cleanup(func() { dbx.Close() })

	_, err = dbx.Exec(`CREATE TABLE people (id INTEGER PRIMARY KEY, name TEXT, age INTEGER)`)
	require.NoError(t, err)
	return NewDBFromSqlx(dbx)
}

func TestSqliteRoundTrip(t *testing.T) {
	people := newSqliteDB(t).Table("people", tabledat.WithEvents(nil))

	for _, r := range []*tabledat.Record{
		tabledat.RecordOf("id", 1, "name", "Bob", "age", 40),
		tabledat.RecordOf("id", 2, "name", "Carol", "age", 25),
		tabledat.RecordOf("id", 3, "name", "Alice", "age", 33),
	} {
		ok, err := people.Insert(r)
		require.NoError(t, err)
		require.True(t, ok)
	}

	names, err := people.SelectAllSortedColumn(tabledat.OrderBy("name", "asc"), "name")
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"Alice", "Bob", "Carol"}, names)

	records, err := people.SelectWhereSorted(
		[]string{"name", "id"},
		tabledat.Where("age", ">", 30).Or("name", "=", "Carol"),
		tabledat.OrderBy("age", "desc"),
	)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"name", "id"}, records[0].Columns())
	assert.Equal(t, "Bob", records[0].Value("name"))

	ids, err := people.SelectAllWhereColumn(tabledat.Where("id", "IN", []int{1, 3}), "id")
	require.NoError(t, err)
	assert.Len(t, ids, 2)

	ok, err := people.Update(tabledat.RecordOf("age", 26), tabledat.Where("name", "=", "Carol"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = people.Update(tabledat.RecordOf("age", 1), tabledat.Where("name", "=", "Nobody"))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = people.UpdateAll(tabledat.RecordOf("name", "Same"))
	require.NoError(t, err)
	assert.True(t, ok)
	names, err = people.SelectAllColumn("name")
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"Same", "Same", "Same"}, names)

	ok, err = people.Delete(tabledat.Where("id", "=", 1))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = people.Delete(nil)
	require.NoError(t, err)
	assert.True(t, ok)

	all, err := people.SelectAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSqliteSyntaxErrorPropagates(t *testing.T) {
	people := newSqliteDB(t).Table("people", tabledat.WithEvents(nil))
	_, err := people.SelectWhere([]string{"id"}, tabledat.Where("id", "NOT AN OPERATOR", 1))
	assert.Error(t, err)
}
