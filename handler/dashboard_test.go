package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jobportal/portalManager/database"
	"github.com/jobportal/portalManager/database/memory"
	"github.com/jobportal/portalManager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardView(t *testing.T) {
	env := newTestEnv(t, nil)
	require.NoError(t, database.Seed(context.Background(), env.store, time.Now()))

	t.Run("Page", func(t *testing.T) {
		c, rec := env.newContext(httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil), requestOptions{})

		require.NoError(t, env.handler.DashboardView(c))

		body := rec.Body.String()
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, body, "Total Users")
		assert.Contains(t, body, "Recent Applications")
		assert.Contains(t, body, "You have 2 new message(s)")
		assert.NotContains(t, body, "Failed to load dashboard data")
	})

	t.Run("JSON", func(t *testing.T) {
		c, rec := env.newContext(httptest.NewRequest(http.MethodGet, "/api/dashboard", nil), requestOptions{})

		require.NoError(t, env.handler.GetDashboard(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var stats model.DashboardStats
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
		assert.Equal(t, 40, stats.Users.Total)
		assert.Len(t, stats.RecentApplications, 10)
		assert.Len(t, stats.Growth, 6)
	})
}

func TestDashboardViewFailure(t *testing.T) {
	store := memory.NewStore()
	store.Jobs = failingJobs{store.Jobs}
	env := newTestEnv(t, store)

	c, rec := env.newContext(httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil), requestOptions{htmx: true})
	require.NoError(t, env.handler.DashboardView(c))

	body := rec.Body.String()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, "Failed to load dashboard data")
	assert.Contains(t, body, "No applications yet")
}

func TestAnalyticsView(t *testing.T) {
	env := newTestEnv(t, nil)
	seedBasic(t, env.store)

	c, rec := env.newContext(httptest.NewRequest(http.MethodGet, "/admin/analytics", nil), requestOptions{htmx: true})
	require.NoError(t, env.handler.AnalyticsView(c))

	body := rec.Body.String()
	assert.Contains(t, body, "Jobs by Type")
	assert.Contains(t, body, "Remote")
	assert.Contains(t, body, "Technology")
}

func TestSearchView(t *testing.T) {
	env := newTestEnv(t, nil)

	t.Run("Redirect", func(t *testing.T) {
		c, rec := env.newContext(httptest.NewRequest(http.MethodGet, "/admin/search?q=engineer", nil), requestOptions{})

		require.NoError(t, env.handler.SearchView(c))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/admin/jobs?search=engineer", rec.Header().Get("Location"))
	})

	t.Run("htmx", func(t *testing.T) {
		c, rec := env.newContext(httptest.NewRequest(http.MethodGet, "/admin/search?q=", nil), requestOptions{htmx: true})

		require.NoError(t, env.handler.SearchView(c))
		assert.Equal(t, "/admin/jobs", rec.Header().Get("HX-Redirect"))
	})
}
