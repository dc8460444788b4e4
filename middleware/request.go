package middleware

import (
	"github.com/gorilla/csrf"
	"github.com/jobportal/portalManager/model"
	"github.com/labstack/echo/v4"
)

// RequestContextMiddleware fills model.RequestContext from the request, the
// session cookie and the CSRF token. It must run after CsrfMiddleware.
func (r *Middleware) RequestContextMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		rc := model.GetRequestContext(c)

		rc.Url = c.Request().URL.Path
		rc.HxRequest = c.Request().Header.Get("hx-request") == "true"
		rc.CsrfToken = csrf.Token(c.Request())

		s := r.sessions.Load(c.Request())
		rc.Authenticated = s.Authenticated
		rc.Email = s.Email
		rc.Notifications = s.Notifications

		if rc.Authenticated && r.unread != nil {
			unread, err := r.unread(c.Request().Context())
			if err != nil {
				r.logger.Error("Failed to count unread messages", "error", err)
			}
			rc.UnreadCount = unread
		}

		model.SetRequestContext(c, rc)

		return next(c)
	}
}
