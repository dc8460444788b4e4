package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t, nil)

	t.Run("Valid credentials start a session", func(t *testing.T) {
		c, rec := env.newContext(loginRequest(`{"email":"Admin@Example.com","password":"secret"}`), requestOptions{anonymous: true})

		err := env.handler.Login(c)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), testEmail)
		require.NotEmpty(t, rec.Result().Cookies())

		req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
		for _, cookie := range rec.Result().Cookies() {
			req.AddCookie(cookie)
		}
		s := env.sessions.Load(req)
		assert.True(t, s.Authenticated)
		assert.Equal(t, testEmail, s.Email)
	})

	t.Run("Username works as identity", func(t *testing.T) {
		c, rec := env.newContext(loginRequest(`{"email":"admin","password":"secret"}`), requestOptions{anonymous: true})

		require.NoError(t, env.handler.Login(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Wrong password", func(t *testing.T) {
		c, rec := env.newContext(loginRequest(`{"email":"admin@example.com","password":"wrong"}`), requestOptions{anonymous: true})

		require.NoError(t, env.handler.Login(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid email or password")
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("Missing password", func(t *testing.T) {
		c, rec := env.newContext(loginRequest(`{"email":"admin@example.com"}`), requestOptions{anonymous: true})

		require.NoError(t, env.handler.Login(c))
		assert.Contains(t, []int{http.StatusBadRequest, http.StatusUnauthorized}, rec.Code)
		assert.Empty(t, rec.Result().Cookies())
	})
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t, nil)

	t.Run("htmx request is redirected by header", func(t *testing.T) {
		c, rec := env.newContext(httptest.NewRequest(http.MethodPost, "/admin/logout", nil), requestOptions{htmx: true})

		require.NoError(t, env.handler.Logout(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "/admin/login", rec.Header().Get("HX-Redirect"))
	})

	t.Run("Form post is redirected", func(t *testing.T) {
		c, rec := env.newContext(httptest.NewRequest(http.MethodPost, "/admin/logout", nil), requestOptions{})

		require.NoError(t, env.handler.Logout(c))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/admin/login", rec.Header().Get("Location"))
	})
}

func TestLoginView(t *testing.T) {
	env := newTestEnv(t, nil)

	t.Run("Anonymous", func(t *testing.T) {
		c, rec := env.newContext(httptest.NewRequest(http.MethodGet, "/admin/login", nil), requestOptions{anonymous: true})

		require.NoError(t, env.handler.LoginView(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Sign in")
		assert.Contains(t, rec.Body.String(), `name="gorilla.csrf.Token"`)
	})

	t.Run("Signed in", func(t *testing.T) {
		c, rec := env.newContext(httptest.NewRequest(http.MethodGet, "/admin/login", nil), requestOptions{})

		require.NoError(t, env.handler.LoginView(c))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/admin/dashboard", rec.Header().Get("Location"))
	})
}
