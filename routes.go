package portalManager

import (
	"github.com/jobportal/portalManager/handler"
	mw "github.com/jobportal/portalManager/middleware"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// SetupRoutes configures all view and API routes of the admin console.
func SetupRoutes(e *echo.Echo, h *handler.AdminHandler, m *mw.Middleware) {
	e.HTTPErrorHandler = handler.HandleErrorView

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mw.SecurityHeaders(mw.SecurityHeadersConfig{}))

	// Custom Middleware
	e.Use(m.CsrfMiddleware())
	e.Use(m.RequestContextMiddleware)

	e.GET("/health", h.HealthCheck)
	e.GET("/", h.RootView)
	e.GET("/admin/login", h.LoginView)
	e.POST("/admin/login", h.Login)

	// View routes
	admin := e.Group("/admin", m.RequireSession)
	admin.POST("/logout", h.Logout)
	admin.GET("/dashboard", h.DashboardView)
	admin.GET("/analytics", h.AnalyticsView)
	admin.GET("/settings", h.SettingsView)
	admin.GET("/search", h.SearchView)
	admin.GET("/:resource", h.ResourceView)
	admin.GET("/:resource/table", h.TableView)
	admin.GET("/:resource/:id", h.DetailView)

	// API routes
	api := e.Group("/api", m.RequireSession)
	api.GET("/dashboard", h.GetDashboard)
	api.GET("/analytics", h.GetAnalytics)
	api.POST("/settings/notifications", h.UpdateNotification)
	api.POST("/company/logo/:id", h.UploadLogo)
	api.GET("/files", h.GetFiles)
	api.GET("/:resource", h.GetRows)
	api.GET("/:resource/export", h.ExportRows)
	api.POST("/:resource/:action/:id", h.InvokeAction)

	files := e.Group("/files", m.RequireSession)
	files.GET("/*", h.ServeFile)

	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))
}
