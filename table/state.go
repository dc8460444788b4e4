package table

// DefaultPageSize is the number of rows shown per page.
const DefaultPageSize = 10

// State is the search and pagination state of a table.
type State struct {
	Search string
	Page   int
}

// NewState returns the initial state: empty query on page 1.
func NewState() State {
	return State{Page: 1}
}

// SetSearch replaces the query and returns to the first page.
func (s *State) SetSearch(query string) {
	s.Search = query
	s.Page = 1
}

// GoToPage moves to page if it lies within [1, totalPages].
// Any other request leaves the state untouched and returns false.
func (s *State) GoToPage(page int, totalPages int) bool {
	if page < 1 || page > totalPages {
		return false
	}
	s.Page = page
	return true
}
