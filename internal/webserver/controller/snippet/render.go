package snippet

import (
	"github.com/gofiber/fiber/v2"
	"github.com/minutary/minutary/internal/snippet"
)

// Render interpolates a snippet with the posted variable values and returns
// the resulting text, along with the names of the variables that could not
// be resolved. Unresolvable variables never make the request fail, they are
// reported back so the form can flag them.
func (s *Controller) Render(c *fiber.Ctx) error {
	snip, err := s.repository.FindByUuid(c.Params("uuid"))
	if err != nil {
		return fiber.ErrInternalServerError
	}

	if snip == nil {
		return fiber.ErrNotFound
	}

	result := snippet.InterpolateWithValidation(snip.Content, formValues(c), snip.VariableDefinitions())

	return c.JSON(fiber.Map{
		"content":          result.Content,
		"missingVariables": result.MissingVariables,
		"hasWarnings":      result.HasWarnings,
	})
}
