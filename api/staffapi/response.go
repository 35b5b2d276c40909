package staffapi

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// errorRes writes the uniform error payload used by all panel endpoints.
func errorRes(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "error": msg})
}

// serverErrorRes logs the real cause and returns a generic message; storage
// details never reach the response body.
func serverErrorRes(c *fiber.Ctx, err error) error {
	log.WithError(err).WithField("path", c.Path()).Error("request failed")
	return errorRes(c, fiber.StatusInternalServerError, "Server error")
}
