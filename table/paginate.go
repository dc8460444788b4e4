package table

// TotalPages returns ceil(count / pageSize).
func TotalPages(count int, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return (count + pageSize - 1) / pageSize
}

// Paginate returns the window [(page-1)*pageSize, page*pageSize) of rows.
// Pages outside the collection yield an empty window. The returned slice
// has no spare capacity so appending to it cannot touch rows.
func Paginate(rows []Row, page int, pageSize int) []Row {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		return []Row{}
	}

	start := (page - 1) * pageSize
	if start >= len(rows) {
		return []Row{}
	}
	end := min(page*pageSize, len(rows))
	return rows[start:end:end]
}
