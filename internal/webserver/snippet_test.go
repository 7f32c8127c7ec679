package webserver_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/minutary/minutary/internal/webserver/infrastructure"
	"github.com/minutary/minutary/internal/webserver/model"
)

func TestSnippets(t *testing.T) {
	db := infrastructure.Connect("file::memory:")
	app := bootstrapApp(db)
	cookie := loginCookie(t, app)
	repository := &model.SnippetRepository{DB: db}

	t.Run("Snippets section is forbidden without a session", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/en/snippets", nil)
		response, err := app.Test(req)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if response.StatusCode != http.StatusForbidden {
			t.Errorf("Expected %d, got %d", http.StatusForbidden, response.StatusCode)
		}
	})

	t.Run("Creating a snippet stores it with its variable definitions", func(t *testing.T) {
		form := url.Values{
			"title":   {"Greeting"},
			"content": {"Hello {{name}}, welcome to {{company}}"},
		}
		req, _ := http.NewRequest(http.MethodPost, "/en/snippets/new", strings.NewReader(form.Encode()))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
		req.AddCookie(cookie)

		response, err := app.Test(req)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if response.StatusCode != http.StatusFound {
			t.Fatalf("Expected %d, got %d", http.StatusFound, response.StatusCode)
		}

		snippets, err := repository.List(1, 10, "")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(snippets.Hits()) != 1 {
			t.Fatalf("Expected 1 snippet, got %d", len(snippets.Hits()))
		}
		variables := snippets.Hits()[0].VariableDefinitions()
		if len(variables) != 2 || variables[0].Name != "name" || variables[1].Name != "company" {
			t.Errorf("Expected variable definitions for name and company, got %v", variables)
		}
	})

	t.Run("Creating a snippet without a title renders the form again", func(t *testing.T) {
		form := url.Values{
			"title":   {""},
			"content": {"Some content"},
		}
		req, _ := http.NewRequest(http.MethodPost, "/en/snippets/new", strings.NewReader(form.Encode()))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
		req.AddCookie(cookie)

		response, err := app.Test(req)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if response.StatusCode != http.StatusOK {
			t.Fatalf("Expected %d, got %d", http.StatusOK, response.StatusCode)
		}
		body, _ := io.ReadAll(response.Body)
		if !strings.Contains(string(body), "Title cannot be empty") {
			t.Error("Expected the form to show the validation error")
		}
	})

	t.Run("Rendering a snippet interpolates the posted values", func(t *testing.T) {
		uuid := firstSnippetUuid(t, repository)

		form := url.Values{
			"var-name":    {"Alice"},
			"var-company": {"Acme"},
		}
		req, _ := http.NewRequest(http.MethodPost, "/en/snippets/"+uuid+"/render", strings.NewReader(form.Encode()))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
		req.AddCookie(cookie)

		response, err := app.Test(req)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if response.StatusCode != http.StatusOK {
			t.Fatalf("Expected %d, got %d", http.StatusOK, response.StatusCode)
		}

		var payload struct {
			Content          string   `json:"content"`
			MissingVariables []string `json:"missingVariables"`
			HasWarnings      bool     `json:"hasWarnings"`
		}
		if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if payload.Content != "Hello Alice, welcome to Acme" {
			t.Errorf("Unexpected rendered content %q", payload.Content)
		}
		if payload.HasWarnings {
			t.Error("Expected no warnings when every variable has a value")
		}
	})

	t.Run("Rendering a snippet reports missing variables without failing", func(t *testing.T) {
		uuid := firstSnippetUuid(t, repository)

		form := url.Values{
			"var-name": {"Alice"},
		}
		req, _ := http.NewRequest(http.MethodPost, "/en/snippets/"+uuid+"/render", strings.NewReader(form.Encode()))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
		req.AddCookie(cookie)

		response, err := app.Test(req)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if response.StatusCode != http.StatusOK {
			t.Fatalf("Expected %d, got %d", http.StatusOK, response.StatusCode)
		}

		var payload struct {
			Content          string   `json:"content"`
			MissingVariables []string `json:"missingVariables"`
			HasWarnings      bool     `json:"hasWarnings"`
		}
		if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !payload.HasWarnings {
			t.Error("Expected warnings when a required variable has no value")
		}
		if len(payload.MissingVariables) != 1 || payload.MissingVariables[0] != "company" {
			t.Errorf("Expected company to be reported missing, got %v", payload.MissingVariables)
		}
	})

	t.Run("Previewing a snippet brackets unresolved variables", func(t *testing.T) {
		uuid := firstSnippetUuid(t, repository)

		form := url.Values{
			"var-name": {"Alice"},
		}
		req, _ := http.NewRequest(http.MethodPost, "/en/snippets/"+uuid+"/preview", strings.NewReader(form.Encode()))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
		req.AddCookie(cookie)

		response, err := app.Test(req)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		var payload struct {
			Content string `json:"content"`
		}
		if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if payload.Content != "Hello Alice, welcome to [company]" {
			t.Errorf("Unexpected preview content %q", payload.Content)
		}
	})

	t.Run("Deleting a snippet removes it", func(t *testing.T) {
		uuid := firstSnippetUuid(t, repository)

		form := url.Values{"uuid": {uuid}}
		req, _ := http.NewRequest(http.MethodPost, "/en/snippets/delete", strings.NewReader(form.Encode()))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
		req.AddCookie(cookie)

		response, err := app.Test(req)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if response.StatusCode != http.StatusOK {
			t.Fatalf("Expected %d, got %d", http.StatusOK, response.StatusCode)
		}
		if total := repository.Total(""); total != 0 {
			t.Errorf("Expected no snippets left, got %d", total)
		}
	})
}

func firstSnippetUuid(t *testing.T, repository *model.SnippetRepository) string {
	t.Helper()

	snippets, err := repository.List(1, 10, "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(snippets.Hits()) == 0 {
		t.Fatal("Expected at least one snippet")
	}
	return snippets.Hits()[0].Uuid
}
