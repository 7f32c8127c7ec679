package snippet

import (
	"github.com/gofiber/fiber/v2"
)

// Delete removes a snippet from the content library
func (s *Controller) Delete(c *fiber.Ctx) error {
	snip, err := s.repository.FindByUuid(c.FormValue("uuid"))
	if err != nil {
		return fiber.ErrInternalServerError
	}

	if snip == nil {
		return fiber.ErrNotFound
	}

	if err := s.repository.Delete(snip.Uuid); err != nil {
		return fiber.ErrInternalServerError
	}

	return nil
}
