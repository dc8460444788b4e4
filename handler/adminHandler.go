package handler

import (
	"log/slog"
	"net/http"

	"github.com/jobportal/portalManager/database"
	"github.com/jobportal/portalManager/service"
	"github.com/jobportal/portalManager/session"
	"github.com/jobportal/portalManager/upload"
	"github.com/jobportal/portalManager/view/screens"

	"github.com/labstack/echo/v4"
	"github.com/siherrmann/validator"
)

type AdminHandler struct {
	service    *service.Service
	store      *database.Store
	filesystem upload.Filesystem
	validator  *validator.Validator
	sessions   *session.Manager
	auth       *session.Authenticator
	admin      screens.AdminInfo
	logger     *slog.Logger
	resources  map[string]*resource
}

func NewAdminHandler(svc *service.Service, filesystem upload.Filesystem, sessions *session.Manager, auth *session.Authenticator, admin screens.AdminInfo, logger *slog.Logger) *AdminHandler {
	h := &AdminHandler{
		service:    svc,
		store:      svc.Store,
		filesystem: filesystem,
		validator:  validator.NewValidator(),
		sessions:   sessions,
		auth:       auth,
		admin:      admin,
		logger:     logger,
	}
	h.resources = map[string]*resource{}
	for _, r := range []*resource{h.jobsResource(), h.usersResource(), h.companiesResource(), h.applicationsResource(), h.contactMessagesResource()} {
		h.resources[r.name] = r
	}
	return h
}

// Health check handler
func (m *AdminHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "portal-manager",
	})
}
