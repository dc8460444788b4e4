package model

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var (
	ErrUnknownField = errors.New("unknown field")
	ErrInvalidValue = errors.New("invalid value")
)

type FieldKind int

const (
	KindString FieldKind = iota
	KindBool
)

// Field describes one updatable column. Values restricts strings to an enum.
type Field struct {
	Kind   FieldKind
	Values []string
}

// Fields is the set of updatable columns of a table.
type Fields map[string]Field

// Normalize checks every key of update against the field set and converts
// form values ("true", "on", "1") to their column type.
func (f Fields) Normalize(update DataMap) (DataMap, error) {
	if len(update) == 0 {
		return nil, fmt.Errorf("%w: empty update", ErrInvalidValue)
	}

	normalized := DataMap{}
	for key, value := range update {
		field, ok := f[key]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, key)
		}

		switch field.Kind {
		case KindBool:
			b, err := toBool(value)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrInvalidValue, key, err)
			}
			normalized[key] = b
		default:
			s, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s must be a string", ErrInvalidValue, key)
			}
			s = strings.TrimSpace(s)
			if len(field.Values) > 0 && !slices.Contains(field.Values, s) {
				return nil, fmt.Errorf("%w: %s must be one of %s", ErrInvalidValue, key, strings.Join(field.Values, ", "))
			}
			normalized[key] = s
		}
	}
	return normalized, nil
}

// Columns returns the field names in a stable order.
func (f Fields) Columns() []string {
	columns := make([]string, 0, len(f))
	for key := range f {
		columns = append(columns, key)
	}
	slices.Sort(columns)
	return columns
}

func toBool(value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		if v == "on" {
			return true, nil
		}
		if v == "off" || v == "" {
			return false, nil
		}
		return strconv.ParseBool(v)
	}
	return false, fmt.Errorf("unsupported type %T", value)
}
