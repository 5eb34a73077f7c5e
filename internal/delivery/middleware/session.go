package middleware

import (
	deliverycontext "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SessionMiddleware scopes carts and checkouts to a browser session. A missing or malformed
// X-Session-Id gets a fresh id; the effective id is always echoed so the client can keep it.
type SessionMiddleware struct{}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware() *SessionMiddleware {
	return &SessionMiddleware{}
}

// Process resolves the session id before the handler runs.
func (m *SessionMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID := c.Request().Header.Get(deliverycontext.HeaderXSessionID)
		if !clientIDPattern.MatchString(sessionID) {
			sessionID = uuid.NewString()
		}

		deliverycontext.SetSessionID(c, sessionID)
		c.Response().Header().Set(deliverycontext.HeaderXSessionID, sessionID)

		return next(c)
	}
}
