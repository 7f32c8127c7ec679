package transcript

import (
	"log"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
)

// Delete removes a transcript from the index and its file from the library.
func (t *Controller) Delete(c *fiber.Ctx) error {
	doc, err := t.idx.Document(c.FormValue("slug"))
	if err != nil {
		return fiber.ErrInternalServerError
	}

	if doc.Slug == "" {
		return fiber.ErrNotFound
	}

	fullPath := filepath.Join(t.config.LibraryPath, doc.ID)
	if err := t.idxWriter.RemoveFile(fullPath); err != nil {
		log.Printf("error removing %s from index: %s\n", fullPath, err)
		return fiber.ErrInternalServerError
	}

	if err := t.appFs.Remove(fullPath); err != nil {
		log.Printf("error removing file %s: %s\n", fullPath, err)
		return fiber.ErrInternalServerError
	}

	return nil
}
