package handler

import (
	"net/http"

	"github.com/jobportal/portalManager/model"
	"github.com/jobportal/portalManager/view/components"
	"github.com/jobportal/portalManager/view/screens"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// =======API Handlers=======

// GetDashboard returns the dashboard figures as JSON.
func (m *AdminHandler) GetDashboard(c echo.Context) error {
	stats, err := m.service.Dashboard(c.Request().Context())
	if err != nil {
		m.logger.Error("Failed to load dashboard", "error", err)
		return renderPopupOrJson(c, http.StatusInternalServerError, "Failed to load dashboard data")
	}
	return c.JSON(http.StatusOK, stats)
}

// GetAnalytics returns the analytics figures as JSON.
func (m *AdminHandler) GetAnalytics(c echo.Context) error {
	stats, err := m.service.Analytics(c.Request().Context())
	if err != nil {
		m.logger.Error("Failed to load analytics", "error", err)
		return renderPopupOrJson(c, http.StatusInternalServerError, "Failed to load analytics")
	}
	return c.JSON(http.StatusOK, stats)
}

// =======View Handlers=======

// DashboardView renders the dashboard. When any read fails the page is shown
// without data and an error popup.
func (m *AdminHandler) DashboardView(c echo.Context) error {
	stats, err := m.service.Dashboard(c.Request().Context())

	var recent templ.Component
	if err != nil {
		m.logger.Error("Failed to load dashboard", "error", err)
		stats = &model.DashboardStats{}
		recent = templ.Join(screens.RecentApplications(nil), components.PopupError("Error", "Failed to load dashboard data"))
	} else {
		recent = screens.RecentApplications(stats.RecentApplications)
	}

	c.Response().Header().Add("HX-Push-Url", "/admin/dashboard")

	return render(c, screens.Dashboard(stats, recent))
}

// AnalyticsView renders the analytics page.
func (m *AdminHandler) AnalyticsView(c echo.Context) error {
	stats, err := m.service.Analytics(c.Request().Context())

	var notice templ.Component
	if err != nil {
		m.logger.Error("Failed to load analytics", "error", err)
		stats = &model.AnalyticsStats{}
		notice = components.PopupError("Error", "Failed to load analytics")
	}

	c.Response().Header().Add("HX-Push-Url", "/admin/analytics")

	return render(c, screens.Analytics(stats, notice))
}

// SearchView sends the header search to the jobs table.
func (m *AdminHandler) SearchView(c echo.Context) error {
	target := components.WithQuery("/admin/jobs", map[string]string{"search": c.QueryParam("q")})
	if isHtmx(c) {
		c.Response().Header().Set("HX-Redirect", target)
		return c.NoContent(http.StatusOK)
	}
	return c.Redirect(http.StatusSeeOther, target)
}
