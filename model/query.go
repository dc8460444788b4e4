package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Operator string

const (
	OpEq  Operator = "eq"
	OpIn  Operator = "in"
	OpGte Operator = "gte"
	OpLt  Operator = "lt"
)

// Filter restricts a select or count to rows where Column compares to Value.
// OpIn takes a []string or []uuid.UUID, OpGte and OpLt take a time.Time.
type Filter struct {
	Column string
	Op     Operator
	Value  any
}

func Eq(column string, value any) Filter {
	return Filter{Column: column, Op: OpEq, Value: value}
}

func In(column string, values any) Filter {
	return Filter{Column: column, Op: OpIn, Value: values}
}

func Gte(column string, value time.Time) Filter {
	return Filter{Column: column, Op: OpGte, Value: value}
}

func Lt(column string, value time.Time) Filter {
	return Filter{Column: column, Op: OpLt, Value: value}
}

// Strings returns the value list of an OpIn filter in string form.
func (f Filter) Strings() ([]string, error) {
	switch v := f.Value.(type) {
	case []string:
		return v, nil
	case []uuid.UUID:
		values := make([]string, 0, len(v))
		for _, id := range v {
			values = append(values, id.String())
		}
		return values, nil
	}
	return nil, fmt.Errorf("%w: %s expects a list, got %T", ErrInvalidValue, f.Column, f.Value)
}

// Time returns the value of an OpGte or OpLt filter.
func (f Filter) Time() (time.Time, error) {
	if t, ok := f.Value.(time.Time); ok {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %s expects a time, got %T", ErrInvalidValue, f.Column, f.Value)
}

type Order struct {
	Column    string
	Ascending bool
}

// Query selects rows. A zero Limit selects everything.
type Query struct {
	Filters []Filter
	Order   *Order
	Limit   int
}

// NewestFirst orders by column descending.
func NewestFirst(column string, filters ...Filter) Query {
	return Query{Filters: filters, Order: &Order{Column: column}}
}
