package session

import (
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/gorilla/sessions"
	"github.com/jobportal/portalManager/model"
)

const (
	cookieName       = "portal_admin"
	keyAuthenticated = "authenticated"
	keyEmail         = "email"
	prefPrefix       = "pref_"
)

var ErrUnknownPreference = errors.New("unknown notification preference")

// Session is the admin state carried in the session cookie.
type Session struct {
	Authenticated bool
	Email         string
	Notifications map[string]bool
}

// Manager reads and writes the admin session cookie.
type Manager struct {
	store sessions.Store
}

// NewManager creates a cookie backed session store. An empty key is replaced
// by a random one, which logs everybody out on restart.
func NewManager(key []byte, secure bool, ttl time.Duration) (*Manager, error) {
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, err
		}
	}

	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{store: store}, nil
}

// Load returns the session of the request. A missing or undecodable cookie
// yields an anonymous session.
func (m *Manager) Load(r *http.Request) Session {
	s := Session{Notifications: model.DefaultNotifications()}

	session, err := m.store.Get(r, cookieName)
	if err != nil {
		return s
	}

	s.Authenticated, _ = session.Values[keyAuthenticated].(bool)
	s.Email, _ = session.Values[keyEmail].(string)
	for _, pref := range model.NotificationPrefs {
		if enabled, ok := session.Values[prefPrefix+pref].(bool); ok {
			s.Notifications[pref] = enabled
		}
	}
	return s
}

// Login marks the session as authenticated for email.
func (m *Manager) Login(w http.ResponseWriter, r *http.Request, email string) error {
	session, _ := m.store.Get(r, cookieName)
	session.Values[keyAuthenticated] = true
	session.Values[keyEmail] = email
	return session.Save(r, w)
}

// Logout expires the session cookie.
func (m *Manager) Logout(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, cookieName)
	session.Values = map[any]any{}
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// SetNotification stores one notification preference and returns the
// updated preferences.
func (m *Manager) SetNotification(w http.ResponseWriter, r *http.Request, pref string, enabled bool) (map[string]bool, error) {
	if !slices.Contains(model.NotificationPrefs, pref) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPreference, pref)
	}

	session, _ := m.store.Get(r, cookieName)
	session.Values[prefPrefix+pref] = enabled
	if err := session.Save(r, w); err != nil {
		return nil, err
	}

	prefs := model.DefaultNotifications()
	for _, key := range model.NotificationPrefs {
		if value, ok := session.Values[prefPrefix+key].(bool); ok {
			prefs[key] = value
		}
	}
	return prefs, nil
}
