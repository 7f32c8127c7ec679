package snippet

import (
	"github.com/gofiber/fiber/v2"
	"github.com/minutary/minutary/internal/webserver/model"
)

// Edit renders the edit snippet form
func (s *Controller) Edit(c *fiber.Ctx) error {
	snip, err := s.repository.FindByUuid(c.Params("uuid"))
	if err != nil {
		return fiber.ErrInternalServerError
	}

	if snip == nil {
		return fiber.ErrNotFound
	}

	return c.Render("snippet/edit", fiber.Map{
		"Title":            "Edit snippet",
		"Snippet":          *snip,
		"Variables":        snip.VariableDefinitions(),
		"MaxTitleLength":   model.SnippetMaxTitleLength,
		"MaxContentLength": model.SnippetMaxContentLength,
		"Errors":           map[string]string{},
	}, "layout")
}
