package database

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jobportal/portalManager/model"
	"github.com/lib/pq"
)

// statement collects positional arguments while a query is assembled.
type statement struct {
	args []any
}

func (s *statement) arg(value any) string {
	s.args = append(s.args, value)
	return fmt.Sprintf("$%d", len(s.args))
}

// where renders the filters as a WHERE clause. Every column must be listed
// in columns, values are always passed as arguments.
func (s *statement) where(filters []model.Filter, columns []string) (string, error) {
	if len(filters) == 0 {
		return "", nil
	}

	clauses := make([]string, 0, len(filters))
	for _, filter := range filters {
		if !slices.Contains(columns, filter.Column) {
			return "", fmt.Errorf("%w: %s", ErrUnknownColumn, filter.Column)
		}

		switch filter.Op {
		case model.OpEq:
			if filter.Value == nil {
				clauses = append(clauses, filter.Column+" IS NULL")
			} else {
				clauses = append(clauses, fmt.Sprintf("%s = %s", filter.Column, s.arg(filter.Value)))
			}
		case model.OpIn:
			values, err := filter.Strings()
			if err != nil {
				return "", err
			}
			if len(values) == 0 {
				clauses = append(clauses, "FALSE")
			} else {
				clauses = append(clauses, fmt.Sprintf("%s::text = ANY(%s)", filter.Column, s.arg(pq.Array(values))))
			}
		case model.OpGte, model.OpLt:
			value, err := filter.Time()
			if err != nil {
				return "", err
			}
			operator := ">="
			if filter.Op == model.OpLt {
				operator = "<"
			}
			clauses = append(clauses, fmt.Sprintf("%s %s %s", filter.Column, operator, s.arg(value)))
		default:
			return "", fmt.Errorf("unsupported operator %q on %s", filter.Op, filter.Column)
		}
	}

	return " WHERE " + strings.Join(clauses, " AND "), nil
}

// orderAndLimit renders ORDER BY and LIMIT. Rows with equal sort keys are
// ordered by id so pages are stable.
func (s *statement) orderAndLimit(query model.Query, columns []string) (string, error) {
	clause := ""
	if query.Order != nil {
		if !slices.Contains(columns, query.Order.Column) {
			return "", fmt.Errorf("%w: %s", ErrUnknownColumn, query.Order.Column)
		}
		direction := "DESC"
		if query.Order.Ascending {
			direction = "ASC"
		}
		clause = fmt.Sprintf(" ORDER BY %s %s, id", query.Order.Column, direction)
	}
	if query.Limit > 0 {
		clause += " LIMIT " + s.arg(query.Limit)
	}
	return clause, nil
}

// set renders the assignments of an UPDATE in key order.
func (s *statement) set(fields model.DataMap) string {
	assignments := make([]string, 0, len(fields))
	for _, key := range fields.Keys() {
		assignments = append(assignments, fmt.Sprintf("%s = %s", key, s.arg(fields[key])))
	}
	return strings.Join(assignments, ", ")
}
