package model

import (
	"encoding/json"
	"time"

	"github.com/minutary/minutary/internal/snippet"
)

const (
	SnippetMaxTitleLength   = 100
	SnippetMaxContentLength = 10000
)

// Snippet is a reusable piece of text with {{variable}} placeholders, kept
// in the content library. Variable definitions are stored serialized next
// to the content they describe.
type Snippet struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Uuid      string `gorm:"uniqueIndex"`
	UserID    uint
	Title     string
	Content   string
	Variables string
}

// Validate checks the snippet fields to ensure they are in the required format
func (s Snippet) Validate() map[string]string {
	errs := map[string]string{}

	if s.Title == "" {
		errs["title"] = "Title cannot be empty"
	}

	if len(s.Title) > SnippetMaxTitleLength {
		errs["title"] = "Title is too long"
	}

	if s.Content == "" {
		errs["content"] = "Content cannot be empty"
	}

	if len(s.Content) > SnippetMaxContentLength {
		errs["content"] = "Content is too long"
	}

	return errs
}

// VariableDefinitions decodes the stored variable definitions. An empty or
// unreadable column means the definitions are derived from the content
// placeholders instead.
func (s Snippet) VariableDefinitions() []snippet.Variable {
	if s.Variables != "" {
		var variables []snippet.Variable
		if err := json.Unmarshal([]byte(s.Variables), &variables); err == nil {
			return variables
		}
	}
	return snippet.VariableDefinitions(s.Content, true)
}

// SetVariableDefinitions stores the variable definitions serialized.
func (s *Snippet) SetVariableDefinitions(variables []snippet.Variable) error {
	encoded, err := json.Marshal(variables)
	if err != nil {
		return err
	}
	s.Variables = string(encoded)
	return nil
}
