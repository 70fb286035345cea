package tabledat

// Materialize drains cursor into one Record per row. Record keys are the
// column names reported by the cursor, in reported order; when a name is
// reported twice the last value wins and the first position is kept.
// []byte cells are copied into strings since drivers reuse scan buffers.
//
// The cursor is consumed once and closed.
func Materialize(cursor Cursor) ([]*Record, error) {
	defer cursor.Close()

	columns, err := cursor.Columns()
	if err != nil {
		return nil, err
	}

	records := []*Record{}
	for cursor.Next() {
		cells, err := cursor.SliceScan()
		if err != nil {
			return nil, err
		}
		record := newRecordCapacity(len(columns))
		for i, column := range columns {
			var cell interface{}
			if i < len(cells) {
				cell = cells[i]
			}
			if b, ok := cell.([]byte); ok {
				cell = string(b)
			}
			record.Set(column, cell)
		}
		records = append(records, record)
	}
	return records, cursor.Err()
}

// Column projects column out of records. Records without the column yield
// nil.
func Column(column string, records []*Record) []interface{} {
	values := make([]interface{}, 0, len(records))
	for _, r := range records {
		values = append(values, r.Value(column))
	}
	return values
}
