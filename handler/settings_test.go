package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jobportal/portalManager/model"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func notificationRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/settings/notifications", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func TestUpdateNotification(t *testing.T) {
	env := newTestEnv(t, nil)

	t.Run("Enable newsletter", func(t *testing.T) {
		c, rec := env.newContext(notificationRequest(`{"key":"newsletter","enabled":"true"}`), requestOptions{})

		require.NoError(t, env.handler.UpdateNotification(c))
		require.Equal(t, http.StatusOK, rec.Code)

		prefs := map[string]bool{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &prefs))
		assert.True(t, prefs[model.PrefNewsletter])
		assert.True(t, prefs[model.PrefJobAlerts])
		assert.NotEmpty(t, rec.Result().Cookies())
	})

	t.Run("htmx gets the toggles", func(t *testing.T) {
		c, rec := env.newContext(notificationRequest(`{"key":"job_alerts","enabled":"false"}`), requestOptions{htmx: true})

		require.NoError(t, env.handler.UpdateNotification(c))
		assert.Contains(t, rec.Body.String(), `id="notifications"`)
		assert.Contains(t, rec.Body.String(), "Job alerts")
	})

	t.Run("Unknown preference", func(t *testing.T) {
		c, rec := env.newContext(notificationRequest(`{"key":"sms","enabled":"true"}`), requestOptions{})

		require.NoError(t, env.handler.UpdateNotification(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Enabled must be a bool", func(t *testing.T) {
		c, rec := env.newContext(notificationRequest(`{"key":"newsletter","enabled":"maybe"}`), requestOptions{})

		require.NoError(t, env.handler.UpdateNotification(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSettingsView(t *testing.T) {
	env := newTestEnv(t, nil)

	c, rec := env.newContext(httptest.NewRequest(http.MethodGet, "/admin/settings", nil), requestOptions{htmx: true})
	require.NoError(t, env.handler.SettingsView(c))

	body := rec.Body.String()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, testEmail)
	assert.Contains(t, body, "Super Admin")
	assert.Contains(t, body, "Newsletter")
	assert.Contains(t, body, "Application updates")
}
