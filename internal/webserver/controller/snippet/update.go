package snippet

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/minutary/minutary/internal/snippet"
	"github.com/minutary/minutary/internal/webserver/model"
)

// Update saves the changes coming from the edit snippet form, refreshing
// the stored variable definitions from the new content.
func (s *Controller) Update(c *fiber.Ctx) error {
	snip, err := s.repository.FindByUuid(c.Params("uuid"))
	if err != nil {
		return fiber.ErrInternalServerError
	}

	if snip == nil {
		return fiber.ErrNotFound
	}

	snip.Title = c.FormValue("title")
	snip.Content = c.FormValue("content")

	if errs := snip.Validate(); len(errs) > 0 {
		return c.Render("snippet/edit", fiber.Map{
			"Title":            "Edit snippet",
			"Snippet":          *snip,
			"Variables":        snip.VariableDefinitions(),
			"MaxTitleLength":   model.SnippetMaxTitleLength,
			"MaxContentLength": model.SnippetMaxContentLength,
			"Errors":           errs,
		}, "layout")
	}

	if err := snip.SetVariableDefinitions(snippet.VariableDefinitions(snip.Content, true)); err != nil {
		return fiber.ErrInternalServerError
	}

	if err := s.repository.Update(snip); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Redirect(fmt.Sprintf("/%s/snippets", c.Params("lang")))
}
