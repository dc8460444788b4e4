package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	env := newTestEnv(t, nil)

	t.Run("Should return healthy status", func(t *testing.T) {
		c, rec := env.newContext(httptest.NewRequest(http.MethodGet, "/health", nil), requestOptions{anonymous: true})

		err := env.handler.HealthCheck(c)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "healthy")
		assert.Contains(t, rec.Body.String(), "portal-manager")
	})

	t.Run("Every resource is registered", func(t *testing.T) {
		for _, name := range []string{ResourceJobs, ResourceUsers, ResourceCompanies, ResourceApplications, ResourceContactMessages} {
			assert.Contains(t, env.handler.resources, name)
		}
	})
}
