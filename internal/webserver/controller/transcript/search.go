package transcript

import (
	"fmt"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/minutary/minutary/internal/filter"
	"github.com/minutary/minutary/internal/querysyntax"
	"github.com/minutary/minutary/internal/webserver/jwtclaimsreader"
	"github.com/minutary/minutary/internal/webserver/model"
	"github.com/minutary/minutary/internal/webserver/view"
)

// Search renders the transcripts matching the search expression. Directives
// in the search box (participant:, date:, tag:, ...) are folded into filter
// parameters and the request is redirected to its canonical URL, so filters
// are always carried in the query string and results pages are shareable.
func (t *Controller) Search(c *fiber.Ctx) error {
	keywords := c.Query("search")

	syntax := querysyntax.Parse(keywords)
	if state := t.codec.FromSyntax(syntax); !state.IsZero() {
		t.addToHistory(c, keywords)

		values := filter.ToURLValues(state)
		if syntax.PlainText != "" {
			values.Set("search", syntax.PlainText)
		}
		return c.Redirect(fmt.Sprintf("%s?%s", c.Path(), values.Encode()))
	}

	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		page = 1
	}

	state := filter.FromURLValues(queryValues(c))
	if keywords != "" && page == 1 {
		t.addToHistory(c, keywords)
	}

	results, err := t.idx.Search(keywords, state, page, model.ResultsPerPage)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	total, err := t.idx.Count()
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("transcript/index", fiber.Map{
		"Title":           "Search transcripts",
		"Keywords":        keywords,
		"Results":         results.Hits(),
		"Total":           results.TotalHits(),
		"Count":           total,
		"Paginator":       view.Pagination(model.MaxPagesNavigator, results, c.Queries()),
		"History":         t.recentSearches(c),
		"URL":             view.URL(c),
		"HasFilters":      !state.IsZero(),
		"ClearFiltersURL": view.BaseURLWithout(c, append(filter.ParamNames(), "page", "search")...),
	}, "layout")
}

func (t *Controller) addToHistory(c *fiber.Ctx, keywords string) {
	session := jwtclaimsreader.SessionData(c)
	if session.Uuid == "" {
		return
	}
	if err := t.history.Add(session.Uuid, keywords); err != nil {
		log.Printf("error adding search to history: %s\n", err)
	}
}

func (t *Controller) recentSearches(c *fiber.Ctx) []string {
	session := jwtclaimsreader.SessionData(c)
	if session.Uuid == "" {
		return nil
	}
	return t.history.Entries(session.Uuid)
}

// ClearHistory forgets the recent searches of the current user.
func (t *Controller) ClearHistory(c *fiber.Ctx) error {
	session := jwtclaimsreader.SessionData(c)
	if session.Uuid == "" {
		return fiber.ErrForbidden
	}
	if err := t.history.Clear(session.Uuid); err != nil {
		return fiber.ErrInternalServerError
	}
	return c.Redirect(fmt.Sprintf("/%s", c.Params("lang")))
}
