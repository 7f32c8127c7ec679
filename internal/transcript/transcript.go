// Package transcript extracts metadata and content from meeting transcript
// files. Readers are registered by file extension, mirroring how document
// formats are usually plugged into the indexer.
package transcript

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/gosimple/slug"
)

// Transcript is the metadata and content of one meeting-call transcript.
// Duration is in minutes.
type Transcript struct {
	ID           string
	Slug         string
	Title        string
	Participants []string
	Categories   []string
	Status       string
	Tags         []string
	Folder       string
	Date         time.Time
	Duration     float64
	Content      string
	Words        float64
}

// Type is used by bleve to pick the document mapping.
func (t Transcript) Type() string {
	return "transcript"
}

// Reader extracts a transcript from a file.
type Reader interface {
	Metadata(file string) (Transcript, error)
}

// applyHeader fills a transcript field from a key: value metadata header.
// Unknown keys and unparseable values are ignored.
func applyHeader(t *Transcript, key, value string) {
	value = strings.TrimSpace(value)
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "title":
		t.Title = value
		t.Slug = slug.Make(value)
	case "participants":
		t.Participants = splitList(value)
	case "categories":
		t.Categories = splitList(value)
	case "status":
		t.Status = value
	case "tags":
		t.Tags = splitList(value)
	case "folder":
		t.Folder = value
	case "date":
		if parsed, err := dateparse.ParseAny(value); err == nil {
			t.Date = parsed
		}
	}
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
