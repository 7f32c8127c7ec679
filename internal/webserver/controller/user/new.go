package user

import (
	"github.com/gofiber/fiber/v2"
	"github.com/minutary/minutary/internal/webserver/model"
)

// New renders the new user form
func (u *Controller) New(c *fiber.Ctx) error {
	return c.Render("user/new", fiber.Map{
		"Title":             "Add user",
		"MinPasswordLength": u.config.MinPasswordLength,
		"User":              model.User{},
		"UsernamePattern":   model.UsernamePattern,
		"Errors":            map[string]string{},
	}, "layout")
}
