package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jobportal/portalManager/model"
	"github.com/jobportal/portalManager/session"
	"github.com/jobportal/portalManager/view/screens"

	"github.com/labstack/echo/v4"
	vm "github.com/siherrmann/validator/model"
)

const (
	dashboardPath = "/admin/dashboard"
	loginPath     = "/admin/login"
)

var loginValidations = []vm.Validation{
	{Key: "email", Type: vm.String, Requirement: "min1"},
	{Key: "password", Type: vm.String, Requirement: "min1"},
}

// =======API Handlers=======

// Login checks the admin credentials and starts a session. Form posts are
// redirected to the dashboard, JSON clients get a JSON answer.
func (m *AdminHandler) Login(c echo.Context) error {
	jsonRequest := strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON)

	parameters := map[string]any{}
	err := m.validator.UnmapOrUnmarshalValidateAndUpdateWithValidation(c.Request(), &parameters, loginValidations)
	if err != nil {
		if jsonRequest {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": fmt.Sprintf("Validation error: %v", err)})
		}
		return render(c, screens.Login("", "Please enter your email and password"), http.StatusBadRequest)
	}

	identity := fmt.Sprint(parameters["email"])
	email, err := m.auth.Authenticate(identity, fmt.Sprint(parameters["password"]))
	if errors.Is(err, session.ErrInvalidCredentials) {
		m.logger.Warn("Failed admin login", "identity", identity, "ip", c.RealIP())
		if jsonRequest {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Invalid email or password"})
		}
		return render(c, screens.Login(identity, "Invalid email or password"), http.StatusUnauthorized)
	} else if err != nil {
		return err
	}

	err = m.sessions.Login(c.Response(), c.Request(), email)
	if err != nil {
		m.logger.Error("Failed to save session", "error", err)
		return renderPopupOrJson(c, http.StatusInternalServerError, "Failed to start session")
	}
	m.logger.Info("Admin logged in", "email", email)

	if jsonRequest {
		return c.JSON(http.StatusOK, map[string]string{"message": "Logged in", "email": email})
	}
	return c.Redirect(http.StatusSeeOther, dashboardPath)
}

// Logout ends the session and returns to the login page.
func (m *AdminHandler) Logout(c echo.Context) error {
	err := m.sessions.Logout(c.Response(), c.Request())
	if err != nil {
		m.logger.Error("Failed to clear session", "error", err)
		return renderPopupOrJson(c, http.StatusInternalServerError, "Failed to log out")
	}

	if isHtmx(c) {
		c.Response().Header().Set("HX-Redirect", loginPath)
		return c.NoContent(http.StatusOK)
	}
	return c.Redirect(http.StatusSeeOther, loginPath)
}

// =======View Handlers=======

// LoginView renders the login form. Signed in admins go to the dashboard.
func (m *AdminHandler) LoginView(c echo.Context) error {
	if model.GetRequestContext(c).Authenticated {
		return c.Redirect(http.StatusSeeOther, dashboardPath)
	}
	return render(c, screens.Login("", ""))
}

// RootView redirects to the dashboard.
func (m *AdminHandler) RootView(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, dashboardPath)
}
