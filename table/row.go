package table

import (
	"fmt"
	"reflect"
	"time"
)

// Row is one record handed to a Table. It is keyed by field name and
// identified by its "id" field.
type Row map[string]any

// ID returns the string form of the row's id field.
func (r Row) ID() string {
	return r.String("id")
}

// String returns the display form of the value stored under key.
// Missing keys and nil values (including typed nil pointers) yield "".
func (r Row) String(key string) string {
	value, ok := r[key]
	if !ok || isNil(value) {
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case time.Time:
		return v.Format(time.RFC3339)
	case *time.Time:
		return v.Format(time.RFC3339)
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(value)
}

// Bool returns the value under key if it is a bool, false otherwise.
func (r Row) Bool(key string) bool {
	if value, ok := r[key].(bool); ok {
		return value
	}
	return false
}

// Time returns the value under key if it holds a time, nil otherwise.
func (r Row) Time(key string) *time.Time {
	switch v := r[key].(type) {
	case time.Time:
		if v.IsZero() {
			return nil
		}
		return &v
	case *time.Time:
		return v
	}
	return nil
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func:
		return rv.IsNil()
	}
	return false
}
