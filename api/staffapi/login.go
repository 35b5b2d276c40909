package staffapi

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/xerodma/panel/session"
	"github.com/xerodma/panel/storage/model"
)

// registerLogin wires the credential-verification endpoint. Malformed
// bodies, missing fields, unknown usernames and wrong passwords all produce
// the same generic 401 so that nothing about existing accounts can be
// probed.
func registerLogin(r fiber.Router, users model.UsersStore, sessions *session.Codec, ttl time.Duration) {
	type loginReq struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	r.Post(
		"/login", func(c *fiber.Ctx) error {
			var req loginReq
			if err := c.BodyParser(&req); err != nil {
				return errorRes(c, fiber.StatusUnauthorized, "Invalid credentials")
			}
			u, err := users.Authenticate(req.Username, req.Password)
			if err != nil {
				switch err.(type) {
				case model.InvalidCredentialsError, model.MissingCredentialsError:
					return errorRes(c, fiber.StatusUnauthorized, "Invalid credentials")
				default:
					return serverErrorRes(c, err)
				}
			}
			token, err := sessions.Mint(
				session.Identity{
					UserID:   u.ID,
					Username: u.Username,
					Role:     u.Role,
				},
			)
			if err != nil {
				return serverErrorRes(c, err)
			}
			c.Cookie(
				&fiber.Cookie{
					Name:     SessionCookie,
					Value:    token,
					Expires:  time.Now().Add(ttl),
					HTTPOnly: true,
					SameSite: fiber.CookieSameSiteLaxMode,
				},
			)
			return c.JSON(
				fiber.Map{
					"success":  true,
					"id":       u.ID,
					"username": u.Username,
					"role":     u.Role,
					"token":    token,
				},
			)
		},
	)
}

// registerLogout clears the session cookie. Tokens are stateless, so there
// is nothing to revoke server side; the token simply runs out.
func registerLogout(r fiber.Router) {
	r.Post(
		"/logout", func(c *fiber.Ctx) error {
			c.Cookie(
				&fiber.Cookie{
					Name:     SessionCookie,
					Value:    "",
					Expires:  time.Now().Add(-time.Hour),
					HTTPOnly: true,
					SameSite: fiber.CookieSameSiteLaxMode,
				},
			)
			return c.SendStatus(fiber.StatusNoContent)
		},
	)
}
