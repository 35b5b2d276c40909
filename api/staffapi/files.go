package staffapi

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/xerodma/panel/storage/model"
)

// fileRes decorates a FileAsset with its public download link, if one has
// been minted.
type fileRes struct {
	model.FileAsset
	DownloadLink string `json:"download_link,omitempty"`
}

func newFileRes(f model.FileAsset, baseURL string) fileRes {
	res := fileRes{FileAsset: f}
	if f.DownloadSlug != nil {
		res.DownloadLink = fmt.Sprintf("%s/dl/%s-%s", baseURL, f.FileID, *f.DownloadSlug)
	}
	return res
}

// registerStaffFiles wires file-asset management for authenticated staff.
// Only metadata is managed here; the bytes live in an external file store.
func registerStaffFiles(r fiber.Router, files model.FilesStore, baseURL string) {
	g := r.Group("/files")

	g.Get("/", func(c *fiber.Ctx) error {
		list, err := files.List()
		if err != nil {
			return serverErrorRes(c, err)
		}
		res := make([]fileRes, len(list))
		for i, f := range list {
			res[i] = newFileRes(f, baseURL)
		}
		return c.JSON(res)
	})

	type createReq struct {
		Name        string `json:"name"`
		Size        int64  `json:"size"`
		ContentType string `json:"type"`
	}
	g.Post("/", func(c *fiber.Ctx) error {
		var req createReq
		if err := c.BodyParser(&req); err != nil {
			return errorRes(c, fiber.StatusBadRequest, "Invalid body")
		}
		if req.Name == "" {
			return errorRes(c, fiber.StatusBadRequest, "Missing name")
		}
		f, err := files.Create(req.Name, req.Size, req.ContentType)
		if err != nil {
			return serverErrorRes(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(newFileRes(*f, baseURL))
	})

	g.Delete("/:id", func(c *fiber.Ctx) error {
		if err := files.Delete(c.Params("id")); err != nil {
			if _, ok := err.(model.NotFoundError); ok {
				return errorRes(c, fiber.StatusNotFound, "File not found")
			}
			return serverErrorRes(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	// Mints a fresh download link, invalidating the previous one.
	g.Post("/:id/link", func(c *fiber.Ctx) error {
		f, err := files.MintDownloadSlug(c.Params("id"))
		if err != nil {
			if _, ok := err.(model.NotFoundError); ok {
				return errorRes(c, fiber.StatusNotFound, "File not found")
			}
			return serverErrorRes(c, err)
		}
		return c.JSON(newFileRes(*f, baseURL))
	})

	g.Post("/:id/downloaded", func(c *fiber.Ctx) error {
		if err := files.CountDownload(c.Params("id")); err != nil {
			if _, ok := err.(model.NotFoundError); ok {
				return errorRes(c, fiber.StatusNotFound, "File not found")
			}
			return serverErrorRes(c, err)
		}
		return c.JSON(fiber.Map{"success": true})
	})
}
