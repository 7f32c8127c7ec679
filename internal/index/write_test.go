package index_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/blevesearch/bleve/v2"
	"github.com/minutary/minutary/internal/index"
	"github.com/minutary/minutary/internal/transcript"
	"github.com/spf13/afero"
)

func TestAddFile(t *testing.T) {
	reader := transcript.NewReaderMock()
	idx := writerIndex(t, &reader)

	t.Run("Indexes a transcript keyed by its library-relative path", func(t *testing.T) {
		reader.MetadataFake = func(file string) (transcript.Transcript, error) {
			return transcript.Transcript{Slug: "weekly-sync", Title: "Weekly Sync"}, nil
		}

		slug, err := idx.AddFile("/library/weekly-sync.txt")
		if err != nil {
			t.Fatalf("unexpected error adding file: %v", err)
		}
		if slug != "weekly-sync" {
			t.Errorf("expected slug weekly-sync, got %q", slug)
		}

		doc, err := idx.Document("weekly-sync")
		if err != nil {
			t.Fatalf("unexpected error retrieving document: %v", err)
		}
		if doc.ID != "weekly-sync.txt" {
			t.Errorf("expected the document ID to be relative to the library, got %q", doc.ID)
		}
	})

	t.Run("Skips files without a matching reader", func(t *testing.T) {
		slug, err := idx.AddFile("/library/notes.pdf")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if slug != "" {
			t.Errorf("expected no slug for an unsupported extension, got %q", slug)
		}
	})

	t.Run("Reports unreadable files", func(t *testing.T) {
		reader.MetadataFake = func(file string) (transcript.Transcript, error) {
			return transcript.Transcript{}, errors.New("unreadable")
		}

		_, err := idx.AddFile("/library/broken.txt")
		if err == nil {
			t.Fatal("expected an error for an unreadable file")
		}
		if !strings.Contains(err.Error(), "broken.txt") {
			t.Errorf("expected the error to name the offending file, got %q", err)
		}
	})
}

func TestAddLibrarySkipsUnreadableFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/library/good.txt", []byte("fine"), 0644)
	afero.WriteFile(fs, "/library/bad.txt", []byte("broken"), 0644)

	reader := transcript.NewReaderMock()
	reader.MetadataFake = func(file string) (transcript.Transcript, error) {
		if strings.HasSuffix(file, "bad.txt") {
			return transcript.Transcript{}, errors.New("unreadable")
		}
		return transcript.Transcript{Slug: "good", Title: "Good"}, nil
	}
	idx := writerIndex(t, &reader)

	if err := idx.AddLibrary(fs, 10); err != nil {
		t.Fatalf("unexpected error indexing library: %v", err)
	}

	count, err := idx.Count()
	if err != nil {
		t.Fatalf("unexpected error counting documents: %v", err)
	}
	if count != 1 {
		t.Errorf("expected only the readable transcript to be indexed, got %d", count)
	}
}

func TestRemoveFile(t *testing.T) {
	reader := transcript.NewReaderMock()
	reader.MetadataFake = func(file string) (transcript.Transcript, error) {
		return transcript.Transcript{Slug: "weekly-sync", Title: "Weekly Sync"}, nil
	}
	idx := writerIndex(t, &reader)

	if _, err := idx.AddFile("/library/weekly-sync.txt"); err != nil {
		t.Fatalf("unexpected error adding file: %v", err)
	}
	if err := idx.RemoveFile("/library/weekly-sync.txt"); err != nil {
		t.Fatalf("unexpected error removing file: %v", err)
	}

	count, err := idx.Count()
	if err != nil {
		t.Fatalf("unexpected error counting documents: %v", err)
	}
	if count != 0 {
		t.Errorf("expected an empty index after removal, got %d documents", count)
	}
}

func writerIndex(t *testing.T, reader *transcript.ReaderMock) *index.BleveIndexer {
	t.Helper()

	indexFile, err := bleve.NewMemOnly(index.Mapping())
	if err != nil {
		t.Fatalf("unexpected error creating index: %v", err)
	}
	return index.NewBleve(indexFile, "/library", map[string]transcript.Reader{
		".txt": reader,
	})
}
