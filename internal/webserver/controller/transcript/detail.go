package transcript

import (
	"github.com/gofiber/fiber/v2"
	"github.com/minutary/minutary/internal/webserver/view"
)

// Detail renders a transcript page, with its metadata and full content.
func (t *Controller) Detail(c *fiber.Ctx) error {
	doc, err := t.idx.Document(c.Params("slug"))
	if err != nil {
		return fiber.ErrInternalServerError
	}

	if doc.Slug == "" {
		return fiber.ErrNotFound
	}

	return c.Render("transcript/detail", fiber.Map{
		"Title":      doc.Title,
		"Transcript": doc,
		"URL":        view.URL(c),
	}, "layout")
}
