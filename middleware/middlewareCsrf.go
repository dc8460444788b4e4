package middleware

import (
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/jobportal/portalManager/handler"
	"github.com/labstack/echo/v4"
)

func (r *Middleware) CsrfMiddleware() echo.MiddlewareFunc {
	protect := csrf.Protect(
		r.csrfKey,
		csrf.Path("/"),
		csrf.Secure(r.secure),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(handler.HandleCSRFErrorView)),
		csrf.TrustedOrigins(r.trustedOrigins),
	)

	// Without TLS the origin check has to be told the request is plaintext.
	csrfMiddleware := func(next http.Handler) http.Handler {
		protected := protect(next)
		if r.secure {
			return protected
		}
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			protected.ServeHTTP(w, csrf.PlaintextHTTPRequest(req))
		})
	}
	return echo.WrapMiddleware(csrfMiddleware)
}
