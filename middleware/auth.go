package middleware

import (
	"net/http"
	"strings"

	"github.com/jobportal/portalManager/model"
	"github.com/labstack/echo/v4"
)

const LoginPath = "/admin/login"

// RequireSession rejects requests without an authenticated session. Pages
// are redirected to the login page, htmx requests get an HX-Redirect and API
// calls a 401.
func (r *Middleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		rc := model.GetRequestContext(c)
		if rc.Authenticated {
			return next(c)
		}

		if rc.HxRequest {
			c.Response().Header().Set("HX-Redirect", LoginPath)
			return c.NoContent(http.StatusUnauthorized)
		}
		if strings.HasPrefix(c.Request().URL.Path, "/api/") {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "authentication required"})
		}
		return c.Redirect(http.StatusSeeOther, LoginPath)
	}
}
