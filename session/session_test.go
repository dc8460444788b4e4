package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jobportal/portalManager/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthenticator(t *testing.T) {
	auth, err := NewAuthenticator("admin", "Admin@Example.com", "secret", "")
	require.NoError(t, err)

	email, err := auth.Authenticate("admin@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Admin@Example.com", email)

	_, err = auth.Authenticate("admin", "secret")
	assert.NoError(t, err)

	_, err = auth.Authenticate("admin@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Authenticate("someone@example.com", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticatorWithHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hashed"), bcrypt.MinCost)
	require.NoError(t, err)

	auth, err := NewAuthenticator("", "admin@example.com", "ignored", string(hash))
	require.NoError(t, err)

	_, err = auth.Authenticate("admin@example.com", "hashed")
	assert.NoError(t, err)
	_, err = auth.Authenticate("admin@example.com", "ignored")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = NewAuthenticator("", "admin@example.com", "", "not-a-hash")
	assert.Error(t, err)
	_, err = NewAuthenticator("", "admin@example.com", "", "")
	assert.Error(t, err)
}

// roundTrip copies the cookies set on rec into a new request.
func roundTrip(rec *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range rec.Result().Cookies() {
		req.AddCookie(cookie)
	}
	return req
}

func TestManager(t *testing.T) {
	manager, err := NewManager([]byte("0123456789abcdef0123456789abcdef"), false, time.Hour)
	require.NoError(t, err)

	t.Run("Anonymous session", func(t *testing.T) {
		s := manager.Load(httptest.NewRequest(http.MethodGet, "/", nil))
		assert.False(t, s.Authenticated)
		assert.Equal(t, model.DefaultNotifications(), s.Notifications)
	})

	t.Run("Login, preferences and logout", func(t *testing.T) {
		rec := httptest.NewRecorder()
		require.NoError(t, manager.Login(rec, httptest.NewRequest(http.MethodPost, "/", nil), "admin@example.com"))

		req := roundTrip(rec)
		s := manager.Load(req)
		assert.True(t, s.Authenticated)
		assert.Equal(t, "admin@example.com", s.Email)

		rec = httptest.NewRecorder()
		prefs, err := manager.SetNotification(rec, req, model.PrefNewsletter, true)
		require.NoError(t, err)
		assert.True(t, prefs[model.PrefNewsletter])

		req = roundTrip(rec)
		s = manager.Load(req)
		assert.True(t, s.Authenticated)
		assert.True(t, s.Notifications[model.PrefNewsletter])
		assert.True(t, s.Notifications[model.PrefJobAlerts])

		_, err = manager.SetNotification(httptest.NewRecorder(), req, "sms", true)
		assert.ErrorIs(t, err, ErrUnknownPreference)

		rec = httptest.NewRecorder()
		require.NoError(t, manager.Logout(rec, req))
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.True(t, cookies[0].MaxAge < 0)
	})

	t.Run("Cookie from another key is ignored", func(t *testing.T) {
		rec := httptest.NewRecorder()
		require.NoError(t, manager.Login(rec, httptest.NewRequest(http.MethodPost, "/", nil), "admin@example.com"))

		other, err := NewManager(nil, false, time.Hour)
		require.NoError(t, err)
		assert.False(t, other.Load(roundTrip(rec)).Authenticated)
	})
}
