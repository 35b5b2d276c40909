package staffapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/xerodma/panel/storage/model"
)

// registerPublicGuides wires the anonymous guide endpoints: browsing and the
// per-guide password gate. The gate is stateless; every request is checked
// against the stored hash again.
func registerPublicGuides(r fiber.Router, guides model.GuidesStore) {
	r.Get(
		"/guides", func(c *fiber.Ctx) error {
			list, err := guides.List()
			if err != nil {
				return serverErrorRes(c, err)
			}
			return c.JSON(list)
		},
	)

	r.Get(
		"/guides/:id", func(c *fiber.Ctx) error {
			guideID := c.Params("id")
			access, err := guides.CheckAccess(guideID, c.Query("password"))
			if err != nil {
				if _, ok := err.(model.NotFoundError); ok {
					return errorRes(c, fiber.StatusNotFound, "Guide not found")
				}
				return serverErrorRes(c, err)
			}
			if !access.Granted() {
				return errorRes(c, fiber.StatusUnauthorized, "Invalid password")
			}
			g, err := guides.Get(guideID)
			if err != nil {
				return serverErrorRes(c, err)
			}
			return c.JSON(g)
		},
	)

	type verifyReq struct {
		GuideID  string `json:"guideId"`
		Password string `json:"password"`
	}
	r.Post(
		"/guides/verify", func(c *fiber.Ctx) error {
			var req verifyReq
			if err := c.BodyParser(&req); err != nil {
				return errorRes(c, fiber.StatusBadRequest, "Missing parameters")
			}
			if req.GuideID == "" || req.Password == "" {
				return errorRes(c, fiber.StatusBadRequest, "Missing parameters")
			}
			access, err := guides.CheckAccess(req.GuideID, req.Password)
			if err != nil {
				if _, ok := err.(model.NotFoundError); ok {
					return errorRes(c, fiber.StatusNotFound, "Guide not found")
				}
				return serverErrorRes(c, err)
			}
			if !access.Granted() {
				return errorRes(c, fiber.StatusUnauthorized, "Invalid password")
			}
			return c.JSON(fiber.Map{"success": true})
		},
	)
}

// registerStaffGuides wires guide management for authenticated staff. The
// session guard runs on the surrounding group before any of these handlers.
func registerStaffGuides(r fiber.Router, guides model.GuidesStore) {
	g := r.Group("/guides")

	g.Get("/", func(c *fiber.Ctx) error {
		list, err := guides.List()
		if err != nil {
			return serverErrorRes(c, err)
		}
		return c.JSON(list)
	})

	type createReq struct {
		model.Guide
		Password string `json:"password"`
	}
	g.Post("/", func(c *fiber.Ctx) error {
		var req createReq
		if err := c.BodyParser(&req); err != nil {
			return errorRes(c, fiber.StatusBadRequest, "Invalid body")
		}
		if req.Title == "" {
			return errorRes(c, fiber.StatusBadRequest, "Missing title")
		}
		created, err := guides.Create(req.Guide, req.Password)
		if err != nil {
			if _, ok := err.(model.AlreadyExistsError); ok {
				return errorRes(c, fiber.StatusConflict, "Guide already exists")
			}
			return serverErrorRes(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	})

	g.Put("/:id", func(c *fiber.Ctx) error {
		var req model.GuideUpdate
		if err := c.BodyParser(&req); err != nil {
			return errorRes(c, fiber.StatusBadRequest, "Invalid body")
		}
		updated, err := guides.Update(c.Params("id"), req)
		if err != nil {
			if _, ok := err.(model.NotFoundError); ok {
				return errorRes(c, fiber.StatusNotFound, "Guide not found")
			}
			return serverErrorRes(c, err)
		}
		return c.JSON(updated)
	})

	g.Delete("/:id", func(c *fiber.Ctx) error {
		if err := guides.Delete(c.Params("id")); err != nil {
			if _, ok := err.(model.NotFoundError); ok {
				return errorRes(c, fiber.StatusNotFound, "Guide not found")
			}
			return serverErrorRes(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	// Sets, rotates or removes a guide's secret. An empty or absent
	// newPassword removes protection; it is not "set the password to the
	// empty string".
	type updateSecretReq struct {
		GuideID     string `json:"guideId"`
		NewPassword string `json:"newPassword"`
	}
	g.Post("/update", func(c *fiber.Ctx) error {
		var req updateSecretReq
		if err := c.BodyParser(&req); err != nil {
			return errorRes(c, fiber.StatusBadRequest, "Missing guideId")
		}
		if req.GuideID == "" {
			return errorRes(c, fiber.StatusBadRequest, "Missing guideId")
		}
		if err := guides.SetSecret(req.GuideID, req.NewPassword); err != nil {
			if _, ok := err.(model.NotFoundError); ok {
				return errorRes(c, fiber.StatusNotFound, "Guide not found")
			}
			return serverErrorRes(c, err)
		}
		return c.JSON(fiber.Map{"success": true})
	})
}
