package tabledat

import (
	"bytes"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Record is an ordered column -> value mapping. Columns iterate in the order
// they were first set; setting a column again replaces its value in place.
//
// Records are what queries return, one per row, and what Insert and Update
// take, so column and value lists built from a Record always line up.
type Record struct {
	values *orderedmap.OrderedMap[string, interface{}]
}

// NewRecord creates an empty Record.
func NewRecord() *Record {
	return &Record{values: orderedmap.New[string, interface{}]()}
}

func newRecordCapacity(capacity int) *Record {
	return &Record{
		values: orderedmap.New[string, interface{}](orderedmap.WithCapacity[string, interface{}](capacity)),
	}
}

// RecordOf creates a Record from alternating column, value arguments.
//
//	tabledat.RecordOf("id", 1, "name", "Bob")
//
// It panics if a column is not a string or a value is missing.
func RecordOf(columnsAndValues ...interface{}) *Record {
	if len(columnsAndValues)%2 != 0 {
		panic("RecordOf requires column, value pairs")
	}
	r := newRecordCapacity(len(columnsAndValues) / 2)
	for i := 0; i < len(columnsAndValues); i += 2 {
		column, ok := columnsAndValues[i].(string)
		if !ok {
			panic(fmt.Sprintf("RecordOf column at index %d is not a string: %#v", i, columnsAndValues[i]))
		}
		r.Set(column, columnsAndValues[i+1])
	}
	return r
}

// Set sets the value of column.
func (r *Record) Set(column string, value interface{}) *Record {
	if r.values == nil {
		r.values = orderedmap.New[string, interface{}]()
	}
	r.values.Set(column, value)
	return r
}

// Get returns the value of column and whether column is present.
func (r *Record) Get(column string) (interface{}, bool) {
	if r == nil || r.values == nil {
		return nil, false
	}
	return r.values.Get(column)
}

// Value returns the value of column or nil if absent.
func (r *Record) Value(column string) interface{} {
	v, _ := r.Get(column)
	return v
}

// Len returns the number of columns.
func (r *Record) Len() int {
	if r == nil || r.values == nil {
		return 0
	}
	return r.values.Len()
}

// Each calls fn for every column in order.
func (r *Record) Each(fn func(column string, value interface{})) {
	if r.Len() == 0 {
		return
	}
	for pair := r.values.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// Columns returns the columns in order.
func (r *Record) Columns() []string {
	columns := make([]string, 0, r.Len())
	r.Each(func(column string, _ interface{}) {
		columns = append(columns, column)
	})
	return columns
}

// Values returns the values in column order.
func (r *Record) Values() []interface{} {
	values := make([]interface{}, 0, r.Len())
	r.Each(func(_ string, value interface{}) {
		values = append(values, value)
	})
	return values
}

// MarshalJSON writes r as a JSON object keeping column order.
func (r *Record) MarshalJSON() ([]byte, error) {
	if r.Len() == 0 {
		return []byte("{}"), nil
	}
	return r.values.MarshalJSON()
}

// String implements Stringer, e.g. "{id: 1, name: Bob}".
func (r *Record) String() string {
	var buf bytes.Buffer
	buf.WriteRune('{')
	i := 0
	r.Each(func(column string, value interface{}) {
		if i > 0 {
			buf.WriteString(", ")
		}
		i++
		buf.WriteString(column)
		buf.WriteString(": ")
		fmt.Fprint(&buf, value)
	})
	buf.WriteRune('}')
	return buf.String()
}
