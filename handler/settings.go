package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/jobportal/portalManager/model"
	"github.com/jobportal/portalManager/session"
	"github.com/jobportal/portalManager/view/screens"

	"github.com/labstack/echo/v4"
	vm "github.com/siherrmann/validator/model"
)

var notificationValidations = []vm.Validation{
	{Key: "key", Type: vm.String, Requirement: "min1"},
	{Key: "enabled", Type: vm.String, Requirement: "min1"},
}

// =======API Handlers=======

// UpdateNotification stores one notification preference in the session.
// htmx requests get the re-rendered toggles.
func (m *AdminHandler) UpdateNotification(c echo.Context) error {
	parameters := map[string]any{}
	err := m.validator.UnmapOrUnmarshalValidateAndUpdateWithValidation(c.Request(), &parameters, notificationValidations)
	if err != nil {
		return renderPopupOrJson(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
	}

	enabled, err := strconv.ParseBool(fmt.Sprint(parameters["enabled"]))
	if err != nil {
		return renderPopupOrJson(c, http.StatusBadRequest, "enabled must be true or false")
	}

	prefs, err := m.sessions.SetNotification(c.Response(), c.Request(), fmt.Sprint(parameters["key"]), enabled)
	if errors.Is(err, session.ErrUnknownPreference) {
		return renderPopupOrJson(c, http.StatusBadRequest, err.Error())
	} else if err != nil {
		m.logger.Error("Failed to save notification preference", "error", err)
		return renderPopupOrJson(c, http.StatusInternalServerError, "Failed to save settings")
	}

	if isHtmx(c) {
		return render(c, screens.Notifications(prefs))
	}
	return c.JSON(http.StatusOK, prefs)
}

// =======View Handlers=======

// SettingsView renders the admin account and notification settings.
func (m *AdminHandler) SettingsView(c echo.Context) error {
	rc := model.GetRequestContext(c)
	notifications := rc.Notifications
	if notifications == nil {
		notifications = model.DefaultNotifications()
	}

	c.Response().Header().Add("HX-Push-Url", "/admin/settings")

	return render(c, screens.Settings(m.admin, notifications))
}
