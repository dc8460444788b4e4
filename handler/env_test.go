package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jobportal/portalManager/database"
	"github.com/jobportal/portalManager/database/memory"
	"github.com/jobportal/portalManager/model"
	"github.com/jobportal/portalManager/service"
	"github.com/jobportal/portalManager/session"
	"github.com/jobportal/portalManager/upload"
	"github.com/jobportal/portalManager/view/screens"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const (
	testEmail    = "admin@example.com"
	testPassword = "secret"
)

type testEnv struct {
	handler    *AdminHandler
	store      *database.Store
	filesystem upload.Filesystem
	sessions   *session.Manager
	echo       *echo.Echo
}

func newTestEnv(t *testing.T, store *database.Store) *testEnv {
	t.Helper()
	if store == nil {
		store = memory.NewStore()
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sessions, err := session.NewManager([]byte("0123456789abcdef0123456789abcdef"), false, time.Hour)
	require.NoError(t, err)
	auth, err := session.NewAuthenticator("admin", testEmail, testPassword, "")
	require.NoError(t, err)

	fs := upload.NewFilesystemMemory()
	admin := screens.AdminInfo{Username: "admin", Email: testEmail, Role: "Super Admin"}

	return &testEnv{
		handler:    NewAdminHandler(service.NewService(store, logger), fs, sessions, auth, admin, logger),
		store:      store,
		filesystem: fs,
		sessions:   sessions,
		echo:       echo.New(),
	}
}

// newContext builds an echo context with a request context, authenticated
// unless opts.anonymous is set.
func (env *testEnv) newContext(req *http.Request, opts requestOptions) (echo.Context, *httptest.ResponseRecorder) {
	if opts.htmx {
		req.Header.Set("HX-Request", "true")
	}
	rec := httptest.NewRecorder()
	c := env.echo.NewContext(req, rec)

	names := []string{}
	values := []string{}
	for i := 0; i+1 < len(opts.params); i += 2 {
		names = append(names, opts.params[i])
		values = append(values, opts.params[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	model.SetRequestContext(c, model.RequestContext{
		Url:           req.URL.Path,
		HxRequest:     opts.htmx,
		Authenticated: !opts.anonymous,
		Email:         testEmail,
		Notifications: model.DefaultNotifications(),
	})
	return c, rec
}

// requestOptions configure newContext. params alternate between path
// parameter names and values.
type requestOptions struct {
	params    []string
	htmx      bool
	anonymous bool
}

type seeded struct {
	company  *model.Company
	remote   *model.Job
	fullTime *model.Job
	user     *model.Profile
	message  *model.ContactMessage
}

func seedBasic(t *testing.T, store *database.Store) seeded {
	t.Helper()
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	company, err := store.Companies.InsertCompany(ctx, &model.Company{Name: "Acme", Industry: "Technology", Website: "https://acme.example"})
	require.NoError(t, err)
	remote, err := store.Jobs.InsertJob(ctx, &model.Job{Title: "Backend Engineer", CompanyID: &company.ID, JobType: model.JobTypeRemote, Location: "Berlin", CreatedAt: now})
	require.NoError(t, err)
	fullTime, err := store.Jobs.InsertJob(ctx, &model.Job{Title: "Office Manager", JobType: model.JobTypeFullTime, Location: "Hamburg", CreatedAt: now.Add(-time.Hour)})
	require.NoError(t, err)
	user, err := store.Profiles.InsertProfile(ctx, &model.Profile{FirstName: "Ann", LastName: "Lee", Role: model.RoleCandidate, CreatedAt: now})
	require.NoError(t, err)
	_, err = store.Applications.InsertApplication(ctx, &model.Application{UserID: user.ID, JobID: remote.ID, AppliedAt: now})
	require.NoError(t, err)
	message, err := store.ContactMessages.InsertContactMessage(ctx, &model.ContactMessage{Name: "Bob", Email: "bob@example.com", Subject: "Hello", Message: "Question about pricing", CreatedAt: now})
	require.NoError(t, err)

	return seeded{company: company, remote: remote, fullTime: fullTime, user: user, message: message}
}
