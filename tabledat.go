// Package tabledat is a small table gateway which turns method calls into
// literal SQL text.
//
//	users := tabledat.NewTable("users", conn)
//
//	rows, err := users.SelectWhereSorted(
//		[]string{"id", "name"},
//		tabledat.Where("age", ">", 30).Or("name", "LIKE", "B%"),
//		tabledat.OrderBy("name", "asc").AndBy("age", "desc"),
//	)
//	// SELECT id, name FROM users WHERE age > 30 OR name LIKE 'B%' ORDER BY name ASC, age DESC
//
//	ok, err := users.Insert(tabledat.RecordOf("id", 1, "name", "Bob"))
//	// INSERT INTO users(id, name) VALUES (1, 'Bob')
//
// Values are written into the statement, not bound. String values are
// quoted without escaping, so tabledat must only be fed trusted input.
//
// Execution goes through a Connection. The sqlx-runner package provides one
// for database/sql drivers.
package tabledat
