package transcript

import (
	"fmt"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
)

// Download sends the transcript file as an attachment.
func (t *Controller) Download(c *fiber.Ctx) error {
	doc, err := t.idx.Document(c.Params("slug"))
	if err != nil {
		return fiber.ErrInternalServerError
	}

	if doc.Slug == "" {
		return fiber.ErrNotFound
	}

	fullPath := filepath.Join(t.config.LibraryPath, doc.ID)
	contents, err := afero.ReadFile(t.appFs, fullPath)
	if err != nil {
		return fiber.ErrNotFound
	}

	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filepath.Base(doc.ID)))
	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	return c.Send(contents)
}
