package snippet

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/minutary/minutary/internal/webserver/model"
	"github.com/minutary/minutary/internal/webserver/view"
)

// List renders the snippets in the content library, optionally narrowed
// down by a text filter on title and content.
func (s *Controller) List(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		page = 1
	}

	snippets, err := s.repository.List(page, model.ResultsPerPage, c.Query("filter"))
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("snippet/index", fiber.Map{
		"Title":     "Snippets",
		"Snippets":  snippets.Hits(),
		"Filter":    c.Query("filter"),
		"Paginator": view.Pagination(model.MaxPagesNavigator, snippets, c.Queries()),
		"URL":       view.URL(c),
	}, "layout")
}
