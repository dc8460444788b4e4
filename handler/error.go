package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jobportal/portalManager/view/components"

	"github.com/gorilla/csrf"
	"github.com/labstack/echo/v4"
)

func HandleErrorView(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	var message interface{}
	message = err.Error()
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		message = he.Message
	}
	c.Logger().Error(code, err)

	if !isHtmx(c) {
		if err := c.JSON(code, map[string]any{"message": message}); err != nil {
			c.Logger().Error(err)
		}
		return
	}

	if err := renderPopup(c, components.PopupError("Error", fmt.Sprint(message))); err != nil {
		c.Logger().Error(err)
	}
}

func HandleCSRFErrorView(w http.ResponseWriter, r *http.Request) {
	err := csrf.FailureReason(r)
	slog.Warn("CSRF error", "path", r.URL.Path, "error", err)
	renderPopupHTTP(w, components.PopupError("Error", "Invalid CSRF token, please reload the page."))
}
