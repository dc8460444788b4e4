package model

import (
	"context"

	"github.com/labstack/echo/v4"
)

type ContextKey string

const REQUEST_CONTEXT_KEY ContextKey = "request_context"

// Notification preference keys stored in the admin session.
const (
	PrefJobAlerts          = "job_alerts"
	PrefApplicationUpdates = "application_updates"
	PrefNewsletter         = "newsletter"
)

var NotificationPrefs = []string{PrefJobAlerts, PrefApplicationUpdates, PrefNewsletter}

// DefaultNotifications are the preferences of a fresh session.
func DefaultNotifications() map[string]bool {
	return map[string]bool{
		PrefJobAlerts:          true,
		PrefApplicationUpdates: true,
		PrefNewsletter:         false,
	}
}

type RequestContext struct {
	Url           string          `json:"url"`
	HxRequest     bool            `json:"hx_request"`
	Authenticated bool            `json:"authenticated"`
	Email         string          `json:"email"`
	CsrfToken     string          `json:"-"`
	Notifications map[string]bool `json:"notifications"`
	UnreadCount   int             `json:"unread_count"`
}

func SetRequestContext(c echo.Context, value RequestContext) {
	ctx := context.WithValue(c.Request().Context(), REQUEST_CONTEXT_KEY, value)
	c.SetRequest(c.Request().WithContext(ctx))
}

func GetRequestContext(c interface{}) RequestContext {
	var ctx context.Context
	if goCtx, ok := c.(context.Context); ok {
		ctx = goCtx
	} else if echoCtx, ok := c.(echo.Context); ok {
		ctx = echoCtx.Request().Context()
	} else {
		panic("invalid context, must be echo.Context or context.Context")
	}
	value, ok := ctx.Value(REQUEST_CONTEXT_KEY).(RequestContext)
	if !ok {
		return RequestContext{}
	}
	return value
}
