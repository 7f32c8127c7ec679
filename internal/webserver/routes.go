package webserver

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/minutary/minutary/internal/webserver/controller"
)

func routes(app *fiber.App, controllers Controllers, cfg Config) {
	supportedLanguages := getSupportedLanguages()

	app.Use("/css", filesystem.New(filesystem.Config{
		Root: http.FS(cssFS),
	}))

	app.Use(SetFQDN(cfg))

	langGroup := app.Group(fmt.Sprintf("/:lang<regex(%s)>", strings.Join(supportedLanguages, "|")), func(c *fiber.Ctx) error {
		pathMinusLang := c.Path()[3:]
		query := string(c.Request().URI().QueryString())
		if query != "" {
			pathMinusLang = pathMinusLang + "?" + query
		}
		c.Locals("Lang", c.Params("lang"))
		c.Locals("SupportedLanguages", supportedLanguages)
		c.Locals("PathMinusLang", pathMinusLang)
		c.Locals("Version", c.App().Config().AppName)
		return c.Next()
	})

	langGroup.Get("/login", AllowIfNotLoggedIn(cfg.JwtSecret), controllers.Auth.Login)
	langGroup.Post("/login", AllowIfNotLoggedIn(cfg.JwtSecret), controllers.Auth.SignIn)

	usersGroup := langGroup.Group("/users", AlwaysRequireAuthentication(cfg.JwtSecret), RequireAdmin)

	usersGroup.Get("/", controllers.Users.List)
	usersGroup.Get("/new", controllers.Users.New)
	usersGroup.Post("/new", controllers.Users.Create)
	usersGroup.Post("/delete", controllers.Users.Delete)

	snippetsGroup := langGroup.Group("/snippets", AlwaysRequireAuthentication(cfg.JwtSecret))

	snippetsGroup.Get("/", controllers.Snippets.List)
	snippetsGroup.Get("/new", controllers.Snippets.New)
	snippetsGroup.Post("/new", controllers.Snippets.Create)
	snippetsGroup.Get("/:uuid<guid>/edit", controllers.Snippets.Edit)
	snippetsGroup.Post("/:uuid<guid>/edit", controllers.Snippets.Update)
	snippetsGroup.Post("/:uuid<guid>/render", controllers.Snippets.Render)
	snippetsGroup.Post("/:uuid<guid>/preview", controllers.Snippets.Preview)
	snippetsGroup.Post("/delete", controllers.Snippets.Delete)

	langGroup.Post("/history/clear", AlwaysRequireAuthentication(cfg.JwtSecret), controllers.Transcripts.ClearHistory)

	app.Post("/delete", AlwaysRequireAuthentication(cfg.JwtSecret), RequireAdmin, controllers.Transcripts.Delete)

	// Authentication requirement is configurable for all routes below this middleware
	app.Use(ConfigurableAuthentication(cfg.JwtSecret, cfg.RequireAuth))

	langGroup.Get("/logout", controllers.Auth.SignOut)

	langGroup.Get("/transcript/:slug", controllers.Transcripts.Detail)

	app.Get("/download/:slug", controllers.Transcripts.Download)

	langGroup.Get("/", controllers.Transcripts.Search)

	app.Get("/", func(c *fiber.Ctx) error {
		return controller.Root(c, supportedLanguages)
	})
}
