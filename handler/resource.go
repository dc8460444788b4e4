package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/jobportal/portalManager/database"
	"github.com/jobportal/portalManager/export"
	"github.com/jobportal/portalManager/model"
	"github.com/jobportal/portalManager/table"
	"github.com/jobportal/portalManager/view/components"
	"github.com/jobportal/portalManager/view/screens"

	"github.com/a-h/templ"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// rowAction is a table action plus the popup texts shown after it ran.
type rowAction struct {
	table.Action
	// Success builds the popup message from the row as it was before the
	// action ran.
	Success func(row table.Row) string
	Failure string
}

// resource is one admin list page: how its rows are loaded and how the
// table over them looks.
type resource struct {
	name        string
	title       string
	subtitle    string
	placeholder string
	segments    table.Segments
	columns     []table.Column
	actions     []rowAction
	load        func(ctx context.Context) ([]table.Row, error)
	// detail is nil for resources without a detail page.
	detail func(ctx context.Context, id uuid.UUID) (*detailPage, error)
}

type detailPage struct {
	Title  string
	Fields []model.KeyValuePair
	Extra  templ.Component
}

// reloadEvent is the htmx event that makes the table re-fetch its rows,
// e.g. reloadJobs.
func (r *resource) reloadEvent() string {
	return "reload" + strings.ToUpper(r.name[:1]) + r.name[1:]
}

func (r *resource) loadFailed() string {
	return "Failed to load " + strings.ToLower(r.title)
}

func (r *resource) action(name string) (rowAction, bool) {
	for _, action := range r.actions {
		if action.Name == name {
			return action, true
		}
	}
	return rowAction{}, false
}

func (r *resource) table(rows []table.Row) *table.Table {
	actions := make([]table.Action, 0, len(r.actions))
	for _, action := range r.actions {
		actions = append(actions, action.Action)
	}
	return &table.Table{
		Title:             r.title,
		Data:              rows,
		Columns:           r.columns,
		Actions:           actions,
		SearchPlaceholder: r.placeholder,
	}
}

// tableQuery is the table state carried in the query string.
type tableQuery struct {
	Segment string
	Search  string
	Page    int
}

func readTableQuery(c echo.Context) tableQuery {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil {
		page = 1
	}
	return tableQuery{
		Segment: c.QueryParam("segment"),
		Search:  c.QueryParam("search"),
		Page:    page,
	}
}

// tableView applies the segment to rows and derives the visible page.
func (r *resource) tableView(rows []table.Row, query tableQuery) (table.View, components.TableOptions) {
	segment := r.segments.Normalize(query.Segment)
	t := r.table(r.segments.Apply(rows, segment))
	view := t.View(t.StateFor(query.Search, query.Page))

	options := components.TableOptions{
		ID:          r.name + "-table",
		Path:        "/admin/" + r.name + "/table",
		ActionPath:  "/api/" + r.name,
		ExportPath:  "/api/" + r.name + "/export",
		ReloadEvent: r.reloadEvent(),
		Segment:     segment,
	}
	if len(r.segments) > 0 {
		options.Chips = r.segments.Chips(rows, segment)
	}
	return view, options
}

func (m *AdminHandler) resource(c echo.Context) (*resource, error) {
	r, ok := m.resources[c.Param("resource")]
	if !ok {
		return nil, echo.NewHTTPError(http.StatusNotFound, "Unknown resource")
	}
	return r, nil
}

// =======API Handlers=======

// GetRows returns the rows of a resource as JSON, filtered like the table.
func (m *AdminHandler) GetRows(c echo.Context) error {
	r, err := m.resource(c)
	if err != nil {
		return err
	}

	rows, err := r.load(c.Request().Context())
	if err != nil {
		m.logger.Error(r.loadFailed(), "error", err)
		return renderPopupOrJson(c, http.StatusInternalServerError, r.loadFailed())
	}

	query := readTableQuery(c)
	rows = r.segments.Apply(rows, r.segments.Normalize(query.Segment))
	rows = r.table(rows).Filtered(query.Search)

	return c.JSON(http.StatusOK, rows)
}

// ExportRows downloads the rows matching segment and search as a workbook.
func (m *AdminHandler) ExportRows(c echo.Context) error {
	r, err := m.resource(c)
	if err != nil {
		return err
	}

	rows, err := r.load(c.Request().Context())
	if err != nil {
		m.logger.Error(r.loadFailed(), "error", err)
		return renderPopupOrJson(c, http.StatusInternalServerError, r.loadFailed())
	}

	query := readTableQuery(c)
	rows = r.segments.Apply(rows, r.segments.Normalize(query.Segment))
	rows = r.table(rows).Filtered(query.Search)

	c.Response().Header().Set(echo.HeaderContentType, export.ContentTypeXLSX)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", r.name+".xlsx"))
	c.Response().WriteHeader(http.StatusOK)
	return export.WriteXLSX(c.Response(), r.title, r.columns, rows)
}

// InvokeAction runs a row action and asks the table to reload itself.
func (m *AdminHandler) InvokeAction(c echo.Context) error {
	r, err := m.resource(c)
	if err != nil {
		return err
	}

	action, ok := r.action(c.Param("action"))
	if !ok {
		return renderPopupOrJson(c, http.StatusNotFound, fmt.Sprintf("Unknown action %s", c.Param("action")))
	}

	if action.OnClick == nil {
		return renderPopupOrJson(c, http.StatusBadRequest, fmt.Sprintf("Action %s cannot be invoked", action.Name))
	}

	rows, err := r.load(c.Request().Context())
	if err != nil {
		m.logger.Error(r.loadFailed(), "error", err)
		return renderPopupOrJson(c, http.StatusInternalServerError, r.loadFailed())
	}

	t := r.table(rows)
	row, ok := t.Row(c.Param("id"))
	if !ok {
		return renderPopupOrJson(c, http.StatusNotFound, "Row not found")
	}
	message := action.Success(row)

	err = t.Invoke(c.Request().Context(), action.Name, row.ID())
	if errors.Is(err, table.ErrRowNotFound) {
		return renderPopupOrJson(c, http.StatusNotFound, "Row not found")
	} else if err != nil {
		m.logger.Error(action.Failure, "resource", r.name, "id", row.ID(), "error", err)
		return renderPopupOrJson(c, http.StatusInternalServerError, action.Failure)
	}

	c.Response().Header().Add("HX-Trigger", r.reloadEvent())

	return renderPopupOrJson(c, http.StatusOK, message)
}

// =======View Handlers=======

// ResourceView renders a list page. A failed load shows an empty table and
// an error popup.
func (m *AdminHandler) ResourceView(c echo.Context) error {
	r, err := m.resource(c)
	if err != nil {
		return err
	}

	tableComponent, loadErr := m.tableComponent(c, r, false)

	if loadErr != nil {
		tableComponent = templ.Join(tableComponent, components.PopupError("Error", r.loadFailed()))
	}

	c.Response().Header().Add("HX-Push-Url", c.Request().URL.String())

	return render(c, screens.Resource(r.title, r.subtitle, tableComponent))
}

// TableView renders only the table results, used by search, paging,
// segment chips and reloads.
func (m *AdminHandler) TableView(c echo.Context) error {
	r, err := m.resource(c)
	if err != nil {
		return err
	}

	tableComponent, loadErr := m.tableComponent(c, r, true)
	if loadErr != nil {
		return renderPopupOrJson(c, http.StatusInternalServerError, r.loadFailed())
	}

	return render(c, tableComponent)
}

func (m *AdminHandler) tableComponent(c echo.Context, r *resource, resultsOnly bool) (templ.Component, error) {
	rows, err := r.load(c.Request().Context())
	if err != nil {
		m.logger.Error(r.loadFailed(), "error", err)
		rows = nil
	}

	view, options := r.tableView(rows, readTableQuery(c))
	if resultsOnly {
		return components.TableResults(view, options), err
	}
	return components.Table(view, options), err
}

// DetailView renders the detail page of one row.
func (m *AdminHandler) DetailView(c echo.Context) error {
	r, err := m.resource(c)
	if err != nil {
		return err
	}
	if r.detail == nil {
		return echo.NewHTTPError(http.StatusNotFound, "No detail page")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return renderPopupOrJson(c, http.StatusBadRequest, "Invalid id")
	}

	page, err := r.detail(c.Request().Context(), id)
	if errors.Is(err, database.ErrNotFound) {
		return renderPopupOrJson(c, http.StatusNotFound, fmt.Sprintf("%s not found", r.title))
	} else if err != nil {
		m.logger.Error("Failed to load detail", "resource", r.name, "id", id, "error", err)
		return renderPopupOrJson(c, http.StatusInternalServerError, fmt.Sprintf("Failed to load %s", r.name))
	}

	c.Response().Header().Add("HX-Push-Url", c.Request().URL.Path)

	return render(c, screens.Detail(page.Title, "/admin/"+r.name, page.Fields, page.Extra))
}
