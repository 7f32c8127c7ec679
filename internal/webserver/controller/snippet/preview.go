package snippet

import (
	"github.com/gofiber/fiber/v2"
	"github.com/minutary/minutary/internal/snippet"
)

// Preview interpolates a snippet with the posted variable values, rendering
// bracketed placeholders for the variables still without a value.
func (s *Controller) Preview(c *fiber.Ctx) error {
	snip, err := s.repository.FindByUuid(c.Params("uuid"))
	if err != nil {
		return fiber.ErrInternalServerError
	}

	if snip == nil {
		return fiber.ErrNotFound
	}

	return c.JSON(fiber.Map{
		"content": snippet.Preview(snip.Content, formValues(c)),
	})
}
