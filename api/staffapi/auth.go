package staffapi

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/xerodma/panel/session"
)

// SessionCookie is the cookie the login endpoint sets and the guard reads.
const SessionCookie = "panel_session"

const identityKey = "panel_identity"

// RequireSession enforces a valid session token on every request that
// reaches the wrapped routes. Missing, malformed and expired tokens are all
// treated identically: nothing downstream runs and a 401 is returned. On
// success the decoded identity is attached to the request context.
func RequireSession(sessions *session.Codec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := sessions.Verify(tokenFromRequest(c))
		if err != nil {
			return errorRes(c, fiber.StatusUnauthorized, "Unauthorized")
		}
		c.Locals(identityKey, id)
		return c.Next()
	}
}

// RequireSessionOrRedirect is the guard variant for dashboard page routes:
// instead of a JSON 401 it redirects to the login page, leaking no resource
// content.
func RequireSessionOrRedirect(sessions *session.Codec, loginPath string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := sessions.Verify(tokenFromRequest(c))
		if err != nil {
			return c.Redirect(loginPath, fiber.StatusFound)
		}
		c.Locals(identityKey, id)
		return c.Next()
	}
}

// IdentityFromCtx returns the identity attached by the session guard.
func IdentityFromCtx(c *fiber.Ctx) (*session.Identity, bool) {
	id, ok := c.Locals(identityKey).(*session.Identity)
	return id, ok
}

// tokenFromRequest extracts the session token from the Authorization header
// or, failing that, the session cookie.
func tokenFromRequest(c *fiber.Ctx) string {
	auth := string(c.Request().Header.Peek(fiber.HeaderAuthorization))
	const prefix = "Bearer "
	if strings.HasPrefix(auth, prefix) {
		return auth[len(prefix):]
	}
	return c.Cookies(SessionCookie)
}
