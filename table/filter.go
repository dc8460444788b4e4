package table

import "strings"

// Filter returns the rows where at least one column value contains query,
// ignoring case. An empty query returns rows unchanged. The input slice is
// never modified.
func Filter(rows []Row, columns []Column, query string) []Row {
	if query == "" {
		return rows
	}

	needle := strings.ToLower(query)
	filtered := make([]Row, 0, len(rows))
	for _, row := range rows {
		if matches(row, columns, needle) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// Matches reports whether row passes the search query.
func Matches(row Row, columns []Column, query string) bool {
	return matches(row, columns, strings.ToLower(query))
}

func matches(row Row, columns []Column, needle string) bool {
	for _, column := range columns {
		if strings.Contains(strings.ToLower(row.String(column.Key)), needle) {
			return true
		}
	}
	return false
}
