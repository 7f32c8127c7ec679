package webserver_test

import (
	"log"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/blevesearch/bleve/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/minutary/minutary/internal/index"
	"github.com/minutary/minutary/internal/transcript"
	"github.com/minutary/minutary/internal/webserver"
	"github.com/minutary/minutary/internal/webserver/infrastructure"
	"github.com/spf13/afero"
	"gorm.io/gorm"
)

func TestGET(t *testing.T) {
	var cases = []struct {
		name           string
		url            string
		expectedStatus int
	}{
		{"Redirect if the user tries to access to the root URL", "/", http.StatusFound},
		{"Page loads successfully if the user tries to access the spanish version", "/es", http.StatusOK},
		{"Page loads successfully if the user tries to access the english version", "/en", http.StatusOK},
		{"Server returns not found if the user tries to access a non-existent URL", "/xx", http.StatusNotFound},
	}

	db := infrastructure.Connect("file::memory:")
	app := bootstrapApp(db)

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, tcase.url, nil)

			response, err := app.Test(req)
			if err != nil {
				t.Errorf("Unexpected error: %v", err.Error())
			}
			if response.StatusCode != tcase.expectedStatus {
				t.Errorf("Wrong status code received, expected %d, got %d", tcase.expectedStatus, response.StatusCode)
			}
		})
	}
}

func bootstrapApp(db *gorm.DB) *fiber.App {
	return bootstrapAppWithConfig(db, webserver.Config{
		LibraryPath:       "fixtures",
		JwtSecret:         []byte("supersecret"),
		MinPasswordLength: 5,
		SessionTimeout:    time.Hour,
	})
}

func bootstrapAppRequiringAuth(db *gorm.DB) *fiber.App {
	return bootstrapAppWithConfig(db, webserver.Config{
		LibraryPath:       "fixtures",
		JwtSecret:         []byte("supersecret"),
		MinPasswordLength: 5,
		SessionTimeout:    time.Hour,
		RequireAuth:       true,
	})
}

func bootstrapAppWithConfig(db *gorm.DB, cfg webserver.Config) *fiber.App {
	appFs := libraryFixtures()

	readers := map[string]transcript.Reader{
		".txt": transcript.TxtReader{FS: appFs},
		".vtt": transcript.VttReader{FS: appFs},
	}

	indexFile, err := bleve.NewMemOnly(index.Mapping())
	if err != nil {
		log.Fatal(err)
	}
	idx := index.NewBleve(indexFile, "fixtures", readers)

	if err := idx.AddLibrary(appFs, 100); err != nil {
		log.Fatal(err)
	}

	controllers := webserver.SetupControllers(cfg, db, idx, appFs)
	return webserver.New(cfg, controllers)
}

func libraryFixtures() afero.Fs {
	appFs := afero.NewMemMapFs()

	files := map[string]string{
		"fixtures/q3-kickoff.txt": "#title: Q3 Kickoff\n" +
			"#participants: Alice, Bob\n" +
			"#tags: planning\n" +
			"#status: final\n" +
			"#date: 2026-07-10\n" +
			"\n" +
			"Welcome everyone to the quarterly kickoff meeting.\n",
		"fixtures/retro.txt": "#title: Sprint Retrospective\n" +
			"#participants: Carol\n" +
			"#status: draft\n" +
			"#date: 2026-07-20\n" +
			"\n" +
			"What went well and what did not.\n",
	}
	for name, contents := range files {
		if err := afero.WriteFile(appFs, name, []byte(contents), 0644); err != nil {
			log.Fatal(err)
		}
	}
	return appFs
}

// loginCookie signs in as the default admin and returns the session cookie.
func loginCookie(t *testing.T, app *fiber.App) *http.Cookie {
	t.Helper()

	form := url.Values{
		"email":    {"admin@example.com"},
		"password": {"admin"},
	}
	req, _ := http.NewRequest(http.MethodPost, "/en/login", strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	response, err := app.Test(req)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if response.StatusCode != http.StatusFound {
		t.Fatalf("Expected redirect after login, got %d", response.StatusCode)
	}
	for _, cookie := range response.Cookies() {
		if cookie.Name == "session" && cookie.Value != "" {
			return cookie
		}
	}
	t.Fatal("No session cookie returned")
	return nil
}
