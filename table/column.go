package table

import (
	"context"

	"github.com/a-h/templ"
)

// Column describes how one field of a Row is looked up and displayed.
type Column struct {
	Key    string
	Header string
	// Render formats the row for presentation without mutating it.
	Render func(Row) templ.Component
	// Plain is the text form used by exports. Defaults to the raw field.
	Plain func(Row) string
}

// Cell is a single rendered table cell.
type Cell struct {
	Key       string
	Raw       string
	Component templ.Component
}

// Cell resolves the column for the given row. Component is nil when the
// column has no render function and the raw value is shown as is.
func (c Column) Cell(row Row) Cell {
	cell := Cell{Key: c.Key, Raw: row.String(c.Key)}
	if c.Render != nil {
		cell.Component = c.Render(row)
	}
	return cell
}

// PlainText returns the export text for the row.
func (c Column) PlainText(row Row) string {
	if c.Plain != nil {
		return c.Plain(row)
	}
	return row.String(c.Key)
}

// Icon references an icon known to the view layer.
type Icon string

const (
	IconEye    Icon = "eye"
	IconTrash  Icon = "trash"
	IconStar   Icon = "star"
	IconCheck  Icon = "check-circle"
	IconReply  Icon = "reply"
	IconUpload Icon = "upload"
	IconXMark  Icon = "x-mark"
)

// Action is a per-row control. Clicking it calls OnClick with the full row.
// Actions with an Href open that location instead of posting the action.
type Action struct {
	Name    string
	Icon    Icon
	Label   string
	Style   string
	Confirm string
	Href    func(Row) string
	OnClick func(ctx context.Context, row Row) error
}
