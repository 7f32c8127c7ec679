package snippet

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/minutary/minutary/internal/snippet"
	"github.com/minutary/minutary/internal/webserver/jwtclaimsreader"
	"github.com/minutary/minutary/internal/webserver/model"
)

// Create gathers information coming from the new snippet form and adds a
// new snippet to the content library. Variable definitions are derived from
// the {{placeholders}} found in the content.
func (s *Controller) Create(c *fiber.Ctx) error {
	session := jwtclaimsreader.SessionData(c)

	snip := model.Snippet{
		Uuid:    uuid.NewString(),
		UserID:  session.ID,
		Title:   c.FormValue("title"),
		Content: c.FormValue("content"),
	}

	if errs := snip.Validate(); len(errs) > 0 {
		return c.Render("snippet/new", fiber.Map{
			"Title":            "Add snippet",
			"Snippet":          snip,
			"MaxTitleLength":   model.SnippetMaxTitleLength,
			"MaxContentLength": model.SnippetMaxContentLength,
			"Errors":           errs,
		}, "layout")
	}

	if err := snip.SetVariableDefinitions(snippet.VariableDefinitions(snip.Content, true)); err != nil {
		return fiber.ErrInternalServerError
	}

	if err := s.repository.Create(&snip); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Redirect(fmt.Sprintf("/%s/snippets", c.Params("lang")))
}
