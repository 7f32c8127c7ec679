package webserver

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/minutary/minutary/internal/i18n"
	"github.com/minutary/minutary/internal/webserver/infrastructure"
)

const version = "v1.0.0"

// New builds a new Fiber application and sets up the required routes
func New(cfg Config, controllers Controllers) *fiber.App {
	printers, err := i18n.Printers(translationsFS)
	if err != nil {
		log.Fatal(err)
	}

	engine, err := infrastructure.TemplateEngine(viewsFS, printers)
	if err != nil {
		log.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		Views:                 engine,
		AppName:               version,
		DisableStartupMessage: true,
		PassLocalsToViews:     true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			template := 500
			if code == fiber.StatusNotFound || code == fiber.StatusForbidden {
				template = code
			}

			// Errors blowing up before the lang group runs have no
			// language in the path, fall back to the best match.
			lang := c.Params("lang")
			if lang == "" {
				lang = chooseBestLanguage(c)
			}

			err = c.Status(code).Render(
				fmt.Sprintf("errors/%d", template),
				fiber.Map{
					"Lang":    lang,
					"Title":   "Minutary",
					"Version": c.App().Config().AppName,
				},
				"layout")
			if err != nil {
				log.Println(err)
				return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
			}
			return nil
		},
	})

	routes(app, controllers, cfg)

	return app
}
