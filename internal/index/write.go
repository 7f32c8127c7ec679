package index

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// indexablePatterns are the library-relative glob patterns of files worth
// indexing.
var indexablePatterns = []string{"**/*.txt", "**/*.vtt"}

// AddFile parses and indexes a single transcript file, keyed by its
// library-relative path. Files without a matching reader are skipped.
func (b *BleveIndexer) AddFile(file string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file))
	reader, ok := b.readers[ext]
	if !ok {
		return "", nil
	}
	meta, err := reader.Metadata(file)
	if err != nil {
		return "", fmt.Errorf("error extracting metadata from file %s: %w", file, err)
	}

	id := b.relative(file)
	meta.ID = id
	if err = b.idx.Index(id, meta); err != nil {
		return "", fmt.Errorf("error indexing file %s: %w", file, err)
	}
	return meta.Slug, nil
}

// RemoveFile removes a file from the index
func (b *BleveIndexer) RemoveFile(file string) error {
	return b.idx.Delete(b.relative(file))
}

// AddLibrary scans the library directory for transcripts and indexes them
// in batches of batchSize. Unreadable files are logged and skipped.
func (b *BleveIndexer) AddLibrary(fs afero.Fs, batchSize int) error {
	batch := b.idx.NewBatch()
	e := afero.Walk(fs, b.libraryPath, func(path string, f os.FileInfo, err error) error {
		if err != nil || f.IsDir() || !b.indexable(path) {
			return nil
		}
		reader, ok := b.readers[strings.ToLower(filepath.Ext(path))]
		if !ok {
			return nil
		}
		meta, err := reader.Metadata(path)
		if err != nil {
			log.Printf("error extracting metadata from file %s: %s\n", path, err)
			return nil
		}

		id := b.relative(path)
		meta.ID = id
		if err = batch.Index(id, meta); err != nil {
			log.Printf("error indexing file %s: %s\n", path, err)
			return nil
		}

		if batch.Size() == batchSize {
			b.idx.Batch(batch)
			batch.Reset()
		}
		return nil
	})
	b.idx.Batch(batch)
	return e
}

func (b *BleveIndexer) indexable(path string) bool {
	for _, pattern := range indexablePatterns {
		if match, err := doublestar.Match(pattern, b.relative(path)); err == nil && match {
			return true
		}
	}
	return false
}

func (b *BleveIndexer) relative(path string) string {
	path = strings.Replace(path, b.libraryPath, "", 1)
	return strings.TrimPrefix(path, "/")
}
