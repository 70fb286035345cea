package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mgutz/tabledat"
)

// parseValue converts a command line value into the Go value rendered in
// SQL. Quoted text is always a string, "@" prefixes raw SQL and
// "(a, b)" is a list.
func parseValue(s string) interface{} {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '\'' && last == '\'') || (first == '"' && last == '"') {
			return s[1 : len(s)-1]
		}
		if first == '(' && last == ')' {
			return parseList(s[1 : len(s)-1])
		}
	}
	if strings.HasPrefix(s, "@") {
		return tabledat.Raw(s[1:])
	}

	switch strings.ToLower(s) {
	case "null":
		return nil
	case "true":
		return true
	case "false":
		return false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func parseList(s string) []interface{} {
	if strings.TrimSpace(s) == "" {
		return []interface{}{}
	}
	parts := strings.Split(s, ",")
	list := make([]interface{}, len(parts))
	for i, part := range parts {
		list[i] = parseValue(part)
	}
	return list
}

// predicate is a parsed COL:OP:VALUE.
type predicate struct {
	column   string
	operator string
	value    interface{}
}

func parsePredicate(s string) (*predicate, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) != 3 {
		return nil, fmt.Errorf("predicate %q is not COL:OP:VALUE", s)
	}
	column, operator := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if column == "" || operator == "" {
		return nil, fmt.Errorf("predicate %q is missing a column or operator", s)
	}
	return &predicate{column: column, operator: operator, value: parseValue(parts[2])}, nil
}

// buildConditions returns nil when there are no predicates.
func buildConditions(filter *Filter) (*tabledat.Conditions, error) {
	if len(filter.Where) == 0 {
		if len(filter.Or) > 0 {
			return nil, fmt.Errorf("--or requires --where")
		}
		return nil, nil
	}

	conditions := tabledat.NewConditions()
	for i, s := range filter.Where {
		p, err := parsePredicate(s)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			conditions.Where(p.column, p.operator, p.value)
		} else {
			conditions.And(p.column, p.operator, p.value)
		}
	}
	for _, s := range filter.Or {
		p, err := parsePredicate(s)
		if err != nil {
			return nil, err
		}
		conditions.Or(p.column, p.operator, p.value)
	}
	return conditions, nil
}

// buildSorters parses COL[:DIR] items, DIR defaulting to asc.
func buildSorters(items []string) (*tabledat.Sorters, error) {
	sorters := tabledat.NewSorters()
	for _, item := range items {
		column, direction := item, "asc"
		if i := strings.LastIndex(item, ":"); i >= 0 {
			column, direction = item[:i], strings.ToLower(item[i+1:])
		}
		if column == "" {
			return nil, fmt.Errorf("sort %q is missing a column", item)
		}
		if direction != "asc" && direction != "desc" {
			return nil, fmt.Errorf("sort %q direction must be asc or desc", item)
		}
		sorters.OrderBy(column, direction)
	}
	return sorters, nil
}

// buildRecord parses COL=VALUE assignments in order.
func buildRecord(assignments []string) (*tabledat.Record, error) {
	record := tabledat.NewRecord()
	for _, a := range assignments {
		parts := strings.SplitN(a, "=", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" {
			return nil, fmt.Errorf("assignment %q is not COL=VALUE", a)
		}
		record.Set(strings.TrimSpace(parts[0]), parseValue(parts[1]))
	}
	if record.Len() == 0 {
		return nil, fmt.Errorf("at least one COL=VALUE is required")
	}
	return record, nil
}
