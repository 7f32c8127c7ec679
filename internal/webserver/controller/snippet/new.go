package snippet

import (
	"github.com/gofiber/fiber/v2"
	"github.com/minutary/minutary/internal/webserver/model"
)

// New renders the new snippet form
func (s *Controller) New(c *fiber.Ctx) error {
	return c.Render("snippet/new", fiber.Map{
		"Title":            "Add snippet",
		"Snippet":          model.Snippet{},
		"MaxTitleLength":   model.SnippetMaxTitleLength,
		"MaxContentLength": model.SnippetMaxContentLength,
		"Errors":           map[string]string{},
	}, "layout")
}
