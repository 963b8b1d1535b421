package middleware

import (
	"civicvoter/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// SessionIDHeader carries the client's session identifier.
const SessionIDHeader = "X-Session-ID"

const sessionLocalKey = "sessionID"

// RequireSession extracts the session ID header and stores it in the request
// context. Requests without one are rejected before reaching the handler.
func RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Get(SessionIDHeader)
		if sessionID == "" {
			return domain.NewSessionRequiredError()
		}
		c.Locals(sessionLocalKey, sessionID)
		return c.Next()
	}
}

// SessionID returns the session ID stored by RequireSession.
func SessionID(c *fiber.Ctx) string {
	sessionID, _ := c.Locals(sessionLocalKey).(string)
	return sessionID
}
