package components

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/jobportal/portalManager/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jobsTable(n int) *table.Table {
	rows := make([]table.Row, 0, n)
	for i := 1; i <= n; i++ {
		rows = append(rows, table.Row{"id": fmt.Sprint(i), "title": fmt.Sprintf("Job %d", i)})
	}
	return &table.Table{
		Title:   "Jobs",
		Data:    rows,
		Columns: []table.Column{{Key: "title", Header: "Title"}},
		Actions: []table.Action{
			{
				Name:  "view",
				Icon:  table.IconEye,
				Label: "View",
				Href:  func(row table.Row) string { return "/admin/jobs/" + row.ID() },
			},
			{Name: "feature", Icon: table.IconStar, Label: "Feature"},
			{Name: "delete", Icon: table.IconTrash, Label: "Delete", Confirm: "Delete this job?"},
		},
	}
}

func jobsOptions() TableOptions {
	return TableOptions{
		ID:          "jobs",
		Path:        "/admin/jobs/table",
		ActionPath:  "/api/jobs",
		ReloadEvent: "reloadJobs",
	}
}

func renderTable(t *testing.T, view table.View, options TableOptions) string {
	t.Helper()
	var buf bytes.Buffer
	err := Table(view, options).Render(context.Background(), &buf)
	require.NoError(t, err)
	return buf.String()
}

func TestTableSearchInput(t *testing.T) {
	body := renderTable(t, jobsTable(3).View(table.NewState()), jobsOptions())

	assert.Contains(t, body, `hx-trigger="input changed, search"`)
	assert.NotContains(t, body, "delay:", "Expected search to fire on every keystroke")
	assert.Contains(t, body, `hx-target="#jobs-results"`)
}

func TestTablePagination(t *testing.T) {
	tbl := jobsTable(25)
	options := jobsOptions()

	t.Run("First page disables first and previous", func(t *testing.T) {
		body := renderTable(t, tbl.View(table.NewState()), options)

		assert.Contains(t, body, `disabled>First</button>`)
		assert.Contains(t, body, `disabled>Previous</button>`)
		assert.NotContains(t, body, `disabled>Next</button>`)
		assert.NotContains(t, body, `disabled>Last</button>`)
		assert.Contains(t, body, `hx-get="/admin/jobs/table?page=2" hx-target="#jobs-results" hx-swap="outerHTML">Next</button>`)
		assert.Contains(t, body, `hx-get="/admin/jobs/table?page=3" hx-target="#jobs-results" hx-swap="outerHTML">Last</button>`)
		assert.Contains(t, body, "Showing 1 to 10 of 25 results")
		assert.Contains(t, body, "Page 1 of 3")
	})

	t.Run("Last page disables next and last", func(t *testing.T) {
		body := renderTable(t, tbl.View(tbl.StateFor("", 3)), options)

		assert.Contains(t, body, `disabled>Next</button>`)
		assert.Contains(t, body, `disabled>Last</button>`)
		assert.NotContains(t, body, `disabled>First</button>`)
		assert.NotContains(t, body, `disabled>Previous</button>`)
		assert.Contains(t, body, `hx-get="/admin/jobs/table" hx-target="#jobs-results" hx-swap="outerHTML">First</button>`)
		assert.Contains(t, body, `hx-get="/admin/jobs/table?page=2" hx-target="#jobs-results" hx-swap="outerHTML">Previous</button>`)
		assert.Contains(t, body, "Showing 21 to 25 of 25 results")
	})

	t.Run("Single page has no pagination", func(t *testing.T) {
		body := renderTable(t, jobsTable(4).View(table.NewState()), options)
		assert.NotContains(t, body, "Previous")
		assert.NotContains(t, body, "Showing")
	})
}

func TestTableActions(t *testing.T) {
	body := renderTable(t, jobsTable(2).View(table.NewState()), jobsOptions())

	t.Run("View navigates to the detail page", func(t *testing.T) {
		assert.Contains(t, body, `href="/admin/jobs/1" hx-get="/admin/jobs/1" hx-target="#body" hx-push-url="true"`)
		assert.Contains(t, body, `href="/admin/jobs/2"`)
		assert.NotContains(t, body, `hx-post="/api/jobs/view/1"`)
	})

	t.Run("Feature posts without confirmation", func(t *testing.T) {
		assert.Contains(t, body, `title="Feature" hx-post="/api/jobs/feature/1" hx-swap="none">`)
		assert.Contains(t, body, `hx-post="/api/jobs/feature/2"`)
	})

	t.Run("Delete asks for confirmation", func(t *testing.T) {
		assert.Contains(t, body, `hx-post="/api/jobs/delete/1" hx-swap="none" hx-confirm="Delete this job?">`)
		assert.Contains(t, body, `hx-post="/api/jobs/delete/2" hx-swap="none" hx-confirm="Delete this job?">`)
	})
}

func TestTablePlaceholder(t *testing.T) {
	tbl := jobsTable(3)
	body := renderTable(t, tbl.View(tbl.StateFor("nothing", 1)), jobsOptions())

	assert.Contains(t, body, `colspan="2"`)
	assert.Contains(t, body, "No data found")
	assert.NotContains(t, body, `id="row-`)
}
