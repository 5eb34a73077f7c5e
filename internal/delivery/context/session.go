package context

import (
	"github.com/labstack/echo/v4"
)

const (
	// KeySessionID is the echo.Context key of the browser session that owns a cart and checkout.
	KeySessionID ContextKey = "session_id"

	// HeaderXSessionID carries the browser session id in both directions.
	HeaderXSessionID = "X-Session-Id"
)

// GetSessionID returns the session id set by the session middleware.
func GetSessionID(c echo.Context) (string, bool) {
	id, ok := c.Get(string(KeySessionID)).(string)

	return id, ok && id != ""
}

// SetSessionID stores the session id in echo.Context.
func SetSessionID(c echo.Context, sessionID string) {
	c.Set(string(KeySessionID), sessionID)
}
