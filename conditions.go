package tabledat

import "github.com/mgutz/tabledat/common"

const (
	whereKeyword = "WHERE"
	andKeyword   = "AND"
	orKeyword    = "OR"
)

type condition struct {
	keyword  string
	column   string
	operator string
	value    interface{}
}

// Conditions accumulates a chain of predicates and renders them as a WHERE
// clause. Predicates are emitted in call order without grouping parentheses,
// so a mixed AND/OR chain is evaluated with the database's own precedence.
//
// Column and operator are passed through as is; values are rendered with
// WriteLiteral.
type Conditions struct {
	clauses []*condition
}

// NewConditions creates an empty Conditions. An empty Conditions renders as
// an empty string and is omitted from statements.
func NewConditions() *Conditions {
	return &Conditions{}
}

// Where creates a Conditions with base predicate "column operator value".
func Where(column, operator string, value interface{}) *Conditions {
	return NewConditions().Where(column, operator, value)
}

// Where sets the base predicate, discarding any predicates added before.
func (c *Conditions) Where(column, operator string, value interface{}) *Conditions {
	c.clauses = []*condition{{keyword: whereKeyword, column: column, operator: operator, value: value}}
	return c
}

// And appends " AND column operator value".
func (c *Conditions) And(column, operator string, value interface{}) *Conditions {
	c.clauses = append(c.clauses, &condition{keyword: andKeyword, column: column, operator: operator, value: value})
	return c
}

// Or appends " OR column operator value".
func (c *Conditions) Or(column, operator string, value interface{}) *Conditions {
	c.clauses = append(c.clauses, &condition{keyword: orKeyword, column: column, operator: operator, value: value})
	return c
}

// IsEmpty reports whether c renders to nothing, which is the case until
// Where has been called.
func (c *Conditions) IsEmpty() bool {
	return c == nil || len(c.clauses) == 0 || c.clauses[0].keyword != whereKeyword
}

// String renders the WHERE clause, e.g. "WHERE a = 1 AND b = 'x'".
func (c *Conditions) String() string {
	if c.IsEmpty() {
		return ""
	}
	buf := bufPool.Get()
	defer bufPool.Put(buf)
	c.writeSQL(buf)
	return buf.String()
}

// Invariant: only called when !c.IsEmpty()
func (c *Conditions) writeSQL(buf common.BufferWriter) {
	for i, cl := range c.clauses {
		if i > 0 {
			buf.WriteRune(' ')
		}
		buf.WriteString(cl.keyword)
		buf.WriteRune(' ')
		buf.WriteString(cl.column)
		buf.WriteRune(' ')
		buf.WriteString(cl.operator)
		buf.WriteRune(' ')
		WriteLiteral(buf, cl.value)
	}
}
