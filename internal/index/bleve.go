package index

import (
	"log"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/custom"
	"github.com/blevesearch/bleve/v2/analysis/char/asciifolding"
	"github.com/blevesearch/bleve/v2/analysis/token/lowercase"
	"github.com/blevesearch/bleve/v2/analysis/tokenizer/single"
	"github.com/blevesearch/bleve/v2/analysis/tokenizer/unicode"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/minutary/minutary/internal/transcript"
)

// BleveIndexer maintains a full-text index over the transcripts found in
// the library directory, using a reader per file extension.
type BleveIndexer struct {
	idx         bleve.Index
	libraryPath string
	readers     map[string]transcript.Reader
}

// NewBleve creates a new BleveIndexer instance using the passed parameters
func NewBleve(index bleve.Index, libraryPath string, readers map[string]transcript.Reader) *BleveIndexer {
	return &BleveIndexer{
		index,
		strings.TrimSuffix(libraryPath, "/"),
		readers,
	}
}

// Mapping builds the index mapping for transcripts: free text fields are
// asciifolded and lowercased, label fields (slug, status, tags, folder,
// categories) are single-token lowercased so term filters match whole
// values case-insensitively.
func Mapping() *mapping.IndexMappingImpl {
	indexMapping := bleve.NewIndexMapping()

	err := indexMapping.AddCustomAnalyzer("transcript",
		map[string]interface{}{
			"type": custom.Name,
			"char_filters": []string{
				asciifolding.Name,
			},
			"tokenizer": unicode.Name,
			"token_filters": []string{
				lowercase.Name,
			},
		})
	if err != nil {
		log.Fatal(err)
	}
	err = indexMapping.AddCustomAnalyzer("label",
		map[string]interface{}{
			"type":      custom.Name,
			"tokenizer": single.Name,
			"token_filters": []string{
				lowercase.Name,
			},
		})
	if err != nil {
		log.Fatal(err)
	}
	indexMapping.DefaultAnalyzer = "transcript"

	labelFieldMapping := bleve.NewTextFieldMapping()
	labelFieldMapping.Analyzer = "label"
	for _, field := range []string{"Slug", "Status", "Folder", "Tags", "Categories"} {
		indexMapping.DefaultMapping.AddFieldMappingsAt(field, labelFieldMapping)
	}

	indexMapping.DefaultMapping.AddFieldMappingsAt("Date", bleve.NewDateTimeFieldMapping())
	indexMapping.DefaultMapping.AddFieldMappingsAt("Duration", bleve.NewNumericFieldMapping())
	indexMapping.DefaultMapping.AddFieldMappingsAt("Words", bleve.NewNumericFieldMapping())

	return indexMapping
}

// Close closes the index
func (b *BleveIndexer) Close() error {
	return b.idx.Close()
}
