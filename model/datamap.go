package model

import (
	"fmt"
	"net/url"
	"slices"
)

const csrfFieldName = "gorilla.csrf.Token"

// DataMap is a partial record keyed by column name.
type DataMap map[string]interface{}

// DataMapFromForm collects the first value of every form field, skipping the
// csrf token field.
func DataMapFromForm(values url.Values) DataMap {
	dataMap := DataMap{}
	for key, value := range values {
		if key == csrfFieldName || len(value) == 0 {
			continue
		}
		dataMap[key] = value[0]
	}
	return dataMap
}

func (d DataMap) GetStringByKey(key string) string {
	if value, ok := d[key]; ok {
		return fmt.Sprintf("%v", value)
	}
	return ""
}

func (d DataMap) Has(key string) bool {
	_, ok := d[key]
	return ok
}

// Keys returns the keys in sorted order.
func (d DataMap) Keys() []string {
	keys := make([]string, 0, len(d))
	for key := range d {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
