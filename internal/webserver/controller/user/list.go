package user

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/minutary/minutary/internal/webserver/model"
	"github.com/minutary/minutary/internal/webserver/view"
)

// List lists all users registered in the database
func (u *Controller) List(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		page = 1
	}

	users, _ := u.repository.List(page, model.ResultsPerPage)

	msg := ""
	if c.Cookies("success") == "true" {
		c.Cookie(&fiber.Cookie{
			Name:    "success",
			Expires: time.Now().Add(-(time.Hour * 2)),
		})
		msg = "User created."
	}

	return c.Render("user/index", fiber.Map{
		"Title":     "Users",
		"Users":     users.Hits(),
		"Paginator": view.Pagination(model.MaxPagesNavigator, users, c.Queries()),
		"Admins":    u.repository.Admins(),
		"URL":       view.URL(c),
		"Message":   msg,
	}, "layout")
}
