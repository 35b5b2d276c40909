package staffapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/xerodma/panel/storage/model"
)

// registerStaffUsers wires handlers using a UsersStore abstraction.
func registerStaffUsers(r fiber.Router, users model.UsersStore) {
	g := r.Group("/users")

	g.Get("/", func(c *fiber.Ctx) error {
		list, err := users.List()
		if err != nil {
			return serverErrorRes(c, err)
		}
		return c.JSON(list)
	})

	type createReq struct {
		Username    string `json:"username"`
		Password    string `json:"password"`
		Role        string `json:"role"`
		DisplayName string `json:"display_name"`
	}
	g.Post("/", func(c *fiber.Ctx) error {
		var req createReq
		if err := c.BodyParser(&req); err != nil {
			return errorRes(c, fiber.StatusBadRequest, "Invalid body")
		}
		if req.Username == "" || req.Password == "" {
			return errorRes(c, fiber.StatusBadRequest, "Username and password are required")
		}
		u, err := users.Create(req.Username, req.Password, req.Role, req.DisplayName)
		if err != nil {
			if _, ok := err.(model.AlreadyExistsError); ok {
				return errorRes(c, fiber.StatusConflict, "User already exists")
			}
			return serverErrorRes(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(u)
	})

	type updateReq struct {
		Role        *string `json:"role"`
		DisplayName *string `json:"display_name"`
		Password    *string `json:"password"`
		Disabled    *bool   `json:"disabled"`
	}
	g.Put("/:username", func(c *fiber.Ctx) error {
		username := c.Params("username")
		var req updateReq
		if err := c.BodyParser(&req); err != nil {
			return errorRes(c, fiber.StatusBadRequest, "Invalid body")
		}
		u, err := users.Update(username, req.Role, req.DisplayName, req.Password, req.Disabled)
		if err != nil {
			if _, ok := err.(model.NotFoundError); ok {
				return errorRes(c, fiber.StatusNotFound, "User not found")
			}
			return serverErrorRes(c, err)
		}
		return c.JSON(u)
	})

	g.Get("/:username", func(c *fiber.Ctx) error {
		u, err := users.Get(c.Params("username"))
		if err != nil {
			if _, ok := err.(model.NotFoundError); ok {
				return errorRes(c, fiber.StatusNotFound, "User not found")
			}
			return serverErrorRes(c, err)
		}
		return c.JSON(u)
	})

	g.Delete("/:username", func(c *fiber.Ctx) error {
		if err := users.Delete(c.Params("username")); err != nil {
			if _, ok := err.(model.NotFoundError); ok {
				return errorRes(c, fiber.StatusNotFound, "User not found")
			}
			return serverErrorRes(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}
