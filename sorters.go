package tabledat

import (
	"strings"

	"github.com/mgutz/tabledat/common"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Sorters accumulates column/direction pairs and renders them as an ORDER BY
// clause. Columns render in the order they were first added; adding a column
// again changes its direction but not its position.
type Sorters struct {
	directions *orderedmap.OrderedMap[string, string]
}

// NewSorters creates an empty Sorters. An empty Sorters renders as an empty
// string and is omitted from statements.
func NewSorters() *Sorters {
	return &Sorters{directions: orderedmap.New[string, string]()}
}

// OrderBy creates a Sorters ordering by column in direction.
func OrderBy(column, direction string) *Sorters {
	return NewSorters().OrderBy(column, direction)
}

// OrderBy adds column with direction ("asc", "desc"), or replaces the
// direction of a column already added.
func (s *Sorters) OrderBy(column, direction string) *Sorters {
	if s.directions == nil {
		s.directions = orderedmap.New[string, string]()
	}
	s.directions.Set(column, direction)
	return s
}

// AndBy is OrderBy. It reads better after the first column.
func (s *Sorters) AndBy(column, direction string) *Sorters {
	return s.OrderBy(column, direction)
}

// Len returns the number of columns.
func (s *Sorters) Len() int {
	if s == nil || s.directions == nil {
		return 0
	}
	return s.directions.Len()
}

// String renders the ORDER BY clause with upper-cased directions, e.g.
// "ORDER BY name ASC, age DESC".
func (s *Sorters) String() string {
	if s.Len() == 0 {
		return ""
	}
	buf := bufPool.Get()
	defer bufPool.Put(buf)
	s.writeSQL(buf)
	return buf.String()
}

// Invariant: only called when s.Len() > 0
func (s *Sorters) writeSQL(buf common.BufferWriter) {
	buf.WriteString("ORDER BY ")
	first := s.directions.Oldest()
	for pair := first; pair != nil; pair = pair.Next() {
		if pair != first {
			buf.WriteString(", ")
		}
		buf.WriteString(pair.Key)
		buf.WriteRune(' ')
		buf.WriteString(strings.ToUpper(pair.Value))
	}
}
