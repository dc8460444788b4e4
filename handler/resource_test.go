package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jobportal/portalManager/database"
	"github.com/jobportal/portalManager/database/memory"
	"github.com/jobportal/portalManager/export"
	"github.com/jobportal/portalManager/model"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var errStoreDown = errors.New("store down")

// failingJobs fails every job read.
type failingJobs struct {
	database.JobDBHandlerFunctions
}

func (f failingJobs) SelectAllJobs(ctx context.Context, query model.Query) ([]*model.Job, error) {
	return nil, errStoreDown
}

func (f failingJobs) CountJobs(ctx context.Context, filters ...model.Filter) (int, error) {
	return 0, errStoreDown
}

func (f failingJobs) SelectJobsByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Job, error) {
	return nil, errStoreDown
}

func TestResourceView(t *testing.T) {
	env := newTestEnv(t, nil)
	data := seedBasic(t, env.store)

	t.Run("Full page with segment chips", func(t *testing.T) {
		c, rec := env.newContext(httptest.NewRequest(http.MethodGet, "/admin/jobs", nil), requestOptions{params: []string{"resource", "jobs"}})

		err := env.handler.ResourceView(c)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "<!doctype html>")
		assert.Contains(t, body, "Backend Engineer")
		assert.Contains(t, body, "Office Manager")
		assert.Contains(t, body, "Acme")
		assert.Contains(t, body, "Unknown")
		assert.Contains(t, body, "All (2)")
		assert.Contains(t, body, "Remote (1)")
		assert.Contains(t, body, "Internship (0)")
		assert.Contains(t, body, `hx-trigger="reloadJobs from:body"`)
	})

	t.Run("Segment narrows the rows", func(t *testing.T) {
		c, rec := env.newContext(httptest.NewRequest(http.MethodGet, "/admin/jobs?segment=remote", nil), requestOptions{params: []string{"resource", "jobs"}, htmx: true})

		err := env.handler.ResourceView(c)
		require.NoError(t, err)

		body := rec.Body.String()
		assert.NotContains(t, body, "<!doctype html>")
		assert.Contains(t, body, "Backend Engineer")
		assert.NotContains(t, body, "Office Manager")
	})

	t.Run("Unknown resource", func(t *testing.T) {
		c, _ := env.newContext(httptest.NewRequest(http.MethodGet, "/admin/nothing", nil), requestOptions{params: []string{"resource", "nothing"}})

		err := env.handler.ResourceView(c)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
	})

	t.Run("Message column is truncated", func(t *testing.T) {
		_, err := env.store.ContactMessages.InsertContactMessage(context.Background(), &model.ContactMessage{
			Name:    "Long",
			Message: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		})
		require.NoError(t, err)

		c, rec := env.newContext(httptest.NewRequest(http.MethodGet, "/admin/contactMessages", nil), requestOptions{params: []string{"resource", "contactMessages"}, htmx: true})
		require.NoError(t, env.handler.ResourceView(c))

		body := rec.Body.String()
		assert.Contains(t, body, "Question about pricing")
		assert.Contains(t, body, "aaaa...")
		assert.Contains(t, body, "Unread (2)")
		assert.Equal(t, model.MessageUnread, data.message.Status)
	})
}

func TestTableView(t *testing.T) {
	env := newTestEnv(t, nil)
	seedBasic(t, env.store)

	t.Run("Search filters the rows", func(t *testing.T) {
		c, rec := env.newContext(httptest.NewRequest(http.MethodGet, "/admin/jobs/table?search=hamburg", nil), requestOptions{params: []string{"resource", "jobs"}, htmx: true})

		err := env.handler.TableView(c)
		require.NoError(t, err)

		body := rec.Body.String()
		assert.Contains(t, body, `id="jobs-table-results"`)
		assert.Contains(t, body, "Office Manager")
		assert.NotContains(t, body, "Backend Engineer")
	})

	t.Run("No match shows the placeholder", func(t *testing.T) {
		c, rec := env.newContext(httptest.NewRequest(http.MethodGet, "/admin/jobs/table?search=nothing-matches", nil), requestOptions{params: []string{"resource", "jobs"}, htmx: true})

		require.NoError(t, env.handler.TableView(c))

		body := rec.Body.String()
		assert.Contains(t, body, "No data found")
		assert.Contains(t, body, `colspan="7"`)
	})

	t.Run("Out of range page stays on page one", func(t *testing.T) {
		for i := 0; i < 12; i++ {
			_, err := env.store.Profiles.InsertProfile(context.Background(), &model.Profile{FirstName: "User", LastName: string(rune('A' + i)), Role: model.RoleEmployer})
			require.NoError(t, err)
		}

		c, rec := env.newContext(httptest.NewRequest(http.MethodGet, "/admin/users/table?page=9", nil), requestOptions{params: []string{"resource", "users"}, htmx: true})
		require.NoError(t, env.handler.TableView(c))

		body := rec.Body.String()
		assert.Contains(t, body, "Page 1 of 2")
		assert.Contains(t, body, "Showing 1 to 10 of 13 results")
	})

	t.Run("Second page", func(t *testing.T) {
		c, rec := env.newContext(httptest.NewRequest(http.MethodGet, "/admin/users/table?page=2", nil), requestOptions{params: []string{"resource", "users"}, htmx: true})
		require.NoError(t, env.handler.TableView(c))

		assert.Contains(t, rec.Body.String(), "Showing 11 to 13 of 13 results")
	})
}

func TestLoadFailure(t *testing.T) {
	store := memory.NewStore()
	store.Jobs = failingJobs{store.Jobs}
	env := newTestEnv(t, store)

	t.Run("Page shows an empty table and a popup", func(t *testing.T) {
		c, rec := env.newContext(httptest.NewRequest(http.MethodGet, "/admin/jobs", nil), requestOptions{params: []string{"resource", "jobs"}})

		err := env.handler.ResourceView(c)
		require.NoError(t, err)

		body := rec.Body.String()
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, body, "No data found")
		assert.Contains(t, body, "Failed to load jobs")
	})

	t.Run("Table fragment keeps the old rows", func(t *testing.T) {
		c, rec := env.newContext(httptest.NewRequest(http.MethodGet, "/admin/jobs/table", nil), requestOptions{params: []string{"resource", "jobs"}, htmx: true})

		require.NoError(t, env.handler.TableView(c))

		assert.Equal(t, "#body", rec.Header().Get("HX-Retarget"))
		assert.Equal(t, "beforeend", rec.Header().Get("HX-Reswap"))
		assert.Contains(t, rec.Body.String(), "Failed to load jobs")
		assert.NotContains(t, rec.Body.String(), "jobs-table-results")
	})

	t.Run("JSON", func(t *testing.T) {
		c, rec := env.newContext(httptest.NewRequest(http.MethodGet, "/api/jobs", nil), requestOptions{params: []string{"resource", "jobs"}})

		require.NoError(t, env.handler.GetRows(c))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "Failed to load jobs")
	})
}

func TestInvokeAction(t *testing.T) {
	env := newTestEnv(t, nil)
	data := seedBasic(t, env.store)
	ctx := context.Background()

	invoke := func(resource string, action string, id string) *httptest.ResponseRecorder {
		c, rec := env.newContext(httptest.NewRequest(http.MethodPost, "/api/"+resource+"/"+action+"/"+id, nil), requestOptions{
			params: []string{"resource", resource, "action", action, "id", id},
			htmx:   true,
		})
		require.NoError(t, env.handler.InvokeAction(c))
		return rec
	}

	t.Run("Feature toggles and reloads the table", func(t *testing.T) {
		rec := invoke("jobs", "feature", data.remote.ID.String())

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "reloadJobs", rec.Header().Get("HX-Trigger"))
		assert.Contains(t, rec.Body.String(), "Job featured!")

		job, err := env.store.Jobs.SelectJob(ctx, data.remote.ID)
		require.NoError(t, err)
		assert.True(t, job.IsFeatured)

		rec = invoke("jobs", "feature", data.remote.ID.String())
		assert.Contains(t, rec.Body.String(), "Job unfeatured!")

		job, err = env.store.Jobs.SelectJob(ctx, data.remote.ID)
		require.NoError(t, err)
		assert.False(t, job.IsFeatured)
	})

	t.Run("Verify company", func(t *testing.T) {
		rec := invoke("companies", "verify", data.company.ID.String())
		assert.Contains(t, rec.Body.String(), "Company verified!")
		assert.Equal(t, "reloadCompanies", rec.Header().Get("HX-Trigger"))

		company, err := env.store.Companies.SelectCompany(ctx, data.company.ID)
		require.NoError(t, err)
		assert.True(t, company.Verified)
	})

	t.Run("Message status", func(t *testing.T) {
		rec := invoke("contactMessages", "replied", data.message.ID.String())
		assert.Contains(t, rec.Body.String(), "Marked as replied")
		assert.Equal(t, "reloadContactMessages", rec.Header().Get("HX-Trigger"))

		message, err := env.store.ContactMessages.SelectContactMessage(ctx, data.message.ID)
		require.NoError(t, err)
		assert.Equal(t, model.MessageReplied, message.Status)
	})

	t.Run("Delete", func(t *testing.T) {
		rec := invoke("jobs", "delete", data.fullTime.ID.String())
		assert.Contains(t, rec.Body.String(), "Job deleted")

		_, err := env.store.Jobs.SelectJob(ctx, data.fullTime.ID)
		assert.ErrorIs(t, err, database.ErrNotFound)
	})

	t.Run("Deleted row is not found", func(t *testing.T) {
		rec := invoke("jobs", "delete", data.fullTime.ID.String())
		assert.Contains(t, rec.Body.String(), "Row not found")
		assert.Empty(t, rec.Header().Get("HX-Trigger"))
	})

	t.Run("Unknown action", func(t *testing.T) {
		c, rec := env.newContext(httptest.NewRequest(http.MethodPost, "/api/jobs/archive/x", nil), requestOptions{
			params: []string{"resource", "jobs", "action", "archive", "id", data.remote.ID.String()},
		})
		require.NoError(t, env.handler.InvokeAction(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Unknown action archive")
	})

	t.Run("Navigation actions cannot be posted", func(t *testing.T) {
		c, rec := env.newContext(httptest.NewRequest(http.MethodPost, "/api/jobs/view/x", nil), requestOptions{
			params: []string{"resource", "jobs", "action", "view", "id", data.remote.ID.String()},
		})
		require.NoError(t, env.handler.InvokeAction(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetRows(t *testing.T) {
	env := newTestEnv(t, nil)
	seedBasic(t, env.store)

	c, rec := env.newContext(httptest.NewRequest(http.MethodGet, "/api/applications?search=ann", nil), requestOptions{params: []string{"resource", "applications"}})
	require.NoError(t, env.handler.GetRows(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Ann Lee", rows[0]["candidate"])
	assert.Equal(t, "Backend Engineer", rows[0]["job"])
	assert.Equal(t, "Acme", rows[0]["company"])
}

func TestExportRows(t *testing.T) {
	env := newTestEnv(t, nil)
	seedBasic(t, env.store)

	c, rec := env.newContext(httptest.NewRequest(http.MethodGet, "/api/jobs/export?segment=remote", nil), requestOptions{params: []string{"resource", "jobs"}})
	require.NoError(t, env.handler.ExportRows(c))

	assert.Equal(t, export.ContentTypeXLSX, rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "jobs.xlsx")

	f, err := excelize.OpenReader(rec.Body)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Jobs")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Job Title", "Company", "Location", "Type", "Featured", "Posted"}, rows[0])
	assert.Equal(t, []string{"Backend Engineer", "Acme", "Berlin", "Remote", "No", "15/06/2025"}, rows[1])
}

func TestDetailView(t *testing.T) {
	env := newTestEnv(t, nil)
	data := seedBasic(t, env.store)

	t.Run("Job", func(t *testing.T) {
		c, rec := env.newContext(httptest.NewRequest(http.MethodGet, "/admin/jobs/"+data.remote.ID.String(), nil), requestOptions{params: []string{"resource", "jobs", "id", data.remote.ID.String()}, htmx: true})
		require.NoError(t, env.handler.DetailView(c))

		body := rec.Body.String()
		assert.Contains(t, body, "Backend Engineer")
		assert.Contains(t, body, "Acme")
		assert.Contains(t, body, "Remote")
	})

	t.Run("Company has a logo form", func(t *testing.T) {
		c, rec := env.newContext(httptest.NewRequest(http.MethodGet, "/admin/companies/"+data.company.ID.String(), nil), requestOptions{params: []string{"resource", "companies", "id", data.company.ID.String()}, htmx: true})
		require.NoError(t, env.handler.DetailView(c))

		body := rec.Body.String()
		assert.Contains(t, body, "Technology")
		assert.Contains(t, body, "/api/company/logo/"+data.company.ID.String())
	})

	t.Run("Invalid id", func(t *testing.T) {
		c, rec := env.newContext(httptest.NewRequest(http.MethodGet, "/admin/users/abc", nil), requestOptions{params: []string{"resource", "users", "id", "abc"}})
		require.NoError(t, env.handler.DetailView(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Missing row", func(t *testing.T) {
		id := data.message.ID.String()
		c, rec := env.newContext(httptest.NewRequest(http.MethodGet, "/admin/users/"+id, nil), requestOptions{params: []string{"resource", "users", "id", id}})
		require.NoError(t, env.handler.DetailView(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Resource without detail page", func(t *testing.T) {
		id := data.message.ID.String()
		c, _ := env.newContext(httptest.NewRequest(http.MethodGet, "/admin/contactMessages/"+id, nil), requestOptions{params: []string{"resource", "contactMessages", "id", id}})

		var httpErr *echo.HTTPError
		require.ErrorAs(t, env.handler.DetailView(c), &httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
	})
}
