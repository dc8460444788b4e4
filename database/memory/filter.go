package memory

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jobportal/portalManager/model"
	"github.com/jobportal/portalManager/table"
)

func matchesAll(row table.Row, filters []model.Filter) (bool, error) {
	for _, filter := range filters {
		ok, err := matches(row, filter)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

// matches evaluates one filter against the string and time forms of a row,
// the same forms the table widget displays.
func matches(row table.Row, filter model.Filter) (bool, error) {
	switch filter.Op {
	case model.OpEq:
		if filter.Value == nil {
			return row.String(filter.Column) == "", nil
		}
		return row.String(filter.Column) == fmt.Sprint(filter.Value), nil
	case model.OpIn:
		values, err := filter.Strings()
		if err != nil {
			return false, err
		}
		return slices.Contains(values, row.String(filter.Column)), nil
	case model.OpGte, model.OpLt:
		bound, err := filter.Time()
		if err != nil {
			return false, err
		}
		value := row.Time(filter.Column)
		if value == nil {
			return false, nil
		}
		if filter.Op == model.OpGte {
			return !value.Before(bound), nil
		}
		return value.Before(bound), nil
	}
	return false, fmt.Errorf("unsupported operator %q on %s", filter.Op, filter.Column)
}

func compareValues(a, b table.Row, column string) int {
	at, bt := a.Time(column), b.Time(column)
	if at != nil && bt != nil {
		return at.Compare(*bt)
	}
	return strings.Compare(a.String(column), b.String(column))
}
