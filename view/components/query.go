package components

import "net/url"

// WithQuery appends the non-empty values to path as a query string.
func WithQuery(path string, values map[string]string) string {
	query := url.Values{}
	for key, value := range values {
		if value != "" {
			query.Set(key, value)
		}
	}
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}
