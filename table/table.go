package table

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrActionNotFound = errors.New("action not found")
	ErrRowNotFound    = errors.New("row not found")
)

// Table is a searchable, paginated view over an in-memory collection of rows
// supplied by the caller. It owns no I/O and never mutates Data.
type Table struct {
	Title             string
	Data              []Row
	Columns           []Column
	Actions           []Action
	SearchPlaceholder string
	PageSize          int
}

// View is everything needed to draw one page of a table.
type View struct {
	Title             string
	SearchPlaceholder string
	State             State
	Headers           []string
	Actions           []Action
	Rows              []ViewRow

	// Placeholder is set when no row matches the search. It spans ColSpan
	// columns.
	Placeholder bool
	ColSpan     int

	Filtered       int
	TotalPages     int
	From           int
	To             int
	ShowPagination bool

	First    PageLink
	Previous PageLink
	Next     PageLink
	Last     PageLink
}

// ViewRow is one row of the visible page.
type ViewRow struct {
	ID    string
	Row   Row
	Cells []Cell
}

// PageLink is a navigation control targeting Page.
type PageLink struct {
	Page     int
	Disabled bool
}

func (t *Table) pageSize() int {
	if t.PageSize <= 0 {
		return DefaultPageSize
	}
	return t.PageSize
}

// HasActions reports whether an actions column is drawn.
func (t *Table) HasActions() bool {
	return len(t.Actions) > 0
}

// Filtered returns the rows matching query.
func (t *Table) Filtered(query string) []Row {
	return Filter(t.Data, t.Columns, query)
}

// TotalPages returns the number of pages for query.
func (t *Table) TotalPages(query string) int {
	return TotalPages(len(t.Filtered(query)), t.pageSize())
}

// StateFor replays a search and a page request through the guarded
// transitions, starting from the initial state. Out of range pages stay on
// page 1.
func (t *Table) StateFor(search string, page int) State {
	state := NewState()
	if search != "" {
		state.SetSearch(search)
	}
	if page != state.Page {
		state.GoToPage(page, t.TotalPages(state.Search))
	}
	return state
}

// View derives the visible page for state. A page outside 1..TotalPages is
// clamped so a non-empty result always shows rows.
func (t *Table) View(state State) View {
	size := t.pageSize()
	filtered := t.Filtered(state.Search)
	totalPages := TotalPages(len(filtered), size)
	state.Page = max(1, min(state.Page, totalPages))
	page := Paginate(filtered, state.Page, size)

	view := View{
		Title:             t.Title,
		SearchPlaceholder: t.SearchPlaceholder,
		State:             state,
		Actions:           t.Actions,
		Filtered:          len(filtered),
		TotalPages:        totalPages,
		ShowPagination:    totalPages > 1,
		ColSpan:           len(t.Columns),
		First:             PageLink{Page: 1, Disabled: state.Page <= 1},
		Previous:          PageLink{Page: state.Page - 1, Disabled: state.Page <= 1},
		Next:              PageLink{Page: state.Page + 1, Disabled: state.Page >= totalPages},
		Last:              PageLink{Page: totalPages, Disabled: state.Page >= totalPages},
	}
	if t.HasActions() {
		view.ColSpan++
	}

	for _, column := range t.Columns {
		view.Headers = append(view.Headers, column.Header)
	}

	if len(filtered) == 0 {
		view.Placeholder = true
		return view
	}

	view.From = (state.Page-1)*size + 1
	view.To = min(state.Page*size, len(filtered))
	for _, row := range page {
		viewRow := ViewRow{ID: row.ID(), Row: row}
		for _, column := range t.Columns {
			viewRow.Cells = append(viewRow.Cells, column.Cell(row))
		}
		view.Rows = append(view.Rows, viewRow)
	}

	return view
}

// Action returns the action registered under name.
func (t *Table) Action(name string) (Action, bool) {
	for _, action := range t.Actions {
		if action.Name == name {
			return action, true
		}
	}
	return Action{}, false
}

// Row returns the row with the given id from the full collection.
func (t *Table) Row(id string) (Row, bool) {
	for _, row := range t.Data {
		if row.ID() == id {
			return row, true
		}
	}
	return nil, false
}

// Invoke calls the named action's handler once with the full row. The table
// itself changes nothing; callers reload their data afterwards.
func (t *Table) Invoke(ctx context.Context, actionName string, rowID string) error {
	action, ok := t.Action(actionName)
	if !ok {
		return fmt.Errorf("%w: %s", ErrActionNotFound, actionName)
	}

	row, ok := t.Row(rowID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrRowNotFound, rowID)
	}

	if action.OnClick == nil {
		return nil
	}
	return action.OnClick(ctx, row)
}
