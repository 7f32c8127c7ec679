package index

import (
	"strings"
	"time"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search"
	"github.com/blevesearch/bleve/v2/search/query"
	"github.com/minutary/minutary/internal/filter"
	"github.com/minutary/minutary/internal/result"
	"github.com/minutary/minutary/internal/transcript"
)

var searchFields = []string{"Slug", "Title", "Participants", "Categories", "Status", "Tags", "Folder", "Date", "Duration", "Words"}

// Search returns the transcripts matching the passed keywords and filter
// state, at most resultsPerPage hits offset by page. Keywords are matched
// against title, participants and content; the filter state narrows the
// hits down by date, duration and label terms.
func (b *BleveIndexer) Search(keywords string, f filter.State, page, resultsPerPage int) (result.Paginated[[]transcript.Transcript], error) {
	var musts []query.Query

	if keywords = strings.TrimSpace(keywords); keywords != "" {
		musts = append(musts, keywordsQuery(keywords))
	}
	if f.DateFrom != nil && f.DateTo != nil {
		dateQuery := bleve.NewDateRangeQuery(*f.DateFrom, *f.DateTo)
		dateQuery.SetField("Date")
		musts = append(musts, dateQuery)
	}
	if f.DurationMin != nil || f.DurationMax != nil {
		var min, max *float64
		if f.DurationMin != nil {
			value := float64(*f.DurationMin)
			min = &value
		}
		if f.DurationMax != nil {
			value := float64(*f.DurationMax)
			max = &value
		}
		durationQuery := bleve.NewNumericRangeQuery(min, max)
		durationQuery.SetField("Duration")
		musts = append(musts, durationQuery)
	}
	for _, participant := range f.Participants {
		participantQuery := bleve.NewMatchQuery(participant)
		participantQuery.SetField("Participants")
		musts = append(musts, participantQuery)
	}
	for _, tag := range f.Tags {
		musts = append(musts, termQuery("Tags", tag))
	}
	if len(f.Categories) > 0 {
		musts = append(musts, anyTermQuery("Categories", f.Categories))
	}
	if len(f.Status) > 0 {
		musts = append(musts, anyTermQuery("Status", f.Status))
	}
	if len(f.Folders) > 0 {
		musts = append(musts, anyTermQuery("Folder", f.Folders))
	}

	if len(musts) == 0 {
		return b.runQuery(bleve.NewMatchAllQuery(), page, resultsPerPage)
	}
	return b.runQuery(bleve.NewConjunctionQuery(musts...), page, resultsPerPage)
}

// keywordsQuery requires every keyword to match in at least one of title,
// participants or content, with title and participant matches ranked
// higher.
func keywordsQuery(keywords string) query.Query {
	splitted := strings.Fields(keywords)

	compoundForField := func(field string, boost float64) query.Query {
		var queries []query.Query
		for _, keyword := range splitted {
			q := bleve.NewMatchQuery(keyword)
			q.SetField(field)
			queries = append(queries, q)
		}
		compound := bleve.NewConjunctionQuery(queries...)
		compound.SetBoost(boost)
		return compound
	}

	return bleve.NewDisjunctionQuery(
		compoundForField("Title", 10),
		compoundForField("Participants", 5),
		compoundForField("Content", 1),
	)
}

func termQuery(field, term string) query.Query {
	q := bleve.NewTermQuery(strings.ToLower(term))
	q.SetField(field)
	return q
}

func anyTermQuery(field string, terms []string) query.Query {
	var queries []query.Query
	for _, term := range terms {
		queries = append(queries, termQuery(field, term))
	}
	return bleve.NewDisjunctionQuery(queries...)
}

func (b *BleveIndexer) runQuery(q query.Query, page, resultsPerPage int) (result.Paginated[[]transcript.Transcript], error) {
	var res result.Paginated[[]transcript.Transcript]

	if page < 1 {
		page = 1
	}

	searchOptions := bleve.NewSearchRequestOptions(q, resultsPerPage, (page-1)*resultsPerPage, false)
	searchOptions.SortBy([]string{"-_score", "-Date"})
	searchOptions.Fields = searchFields
	searchResult, err := b.idx.Search(searchOptions)
	if err != nil {
		return res, err
	}
	if searchResult.Total == 0 {
		return res, nil
	}

	hits := make([]transcript.Transcript, len(searchResult.Hits))
	for i, hit := range searchResult.Hits {
		hits[i] = hitToTranscript(hit)
	}
	return result.NewPaginated(resultsPerPage, page, int(searchResult.Total), hits), nil
}

// Document returns the transcript with the passed slug, or an empty one if
// not indexed.
func (b *BleveIndexer) Document(slug string) (transcript.Transcript, error) {
	q := termQuery("Slug", slug)
	searchOptions := bleve.NewSearchRequestOptions(q, 1, 0, false)
	searchOptions.Fields = append(searchFields, "Content")
	searchResult, err := b.idx.Search(searchOptions)
	if err != nil {
		return transcript.Transcript{}, err
	}
	if searchResult.Total == 0 {
		return transcript.Transcript{}, nil
	}
	return hitToTranscript(searchResult.Hits[0]), nil
}

// Count returns the number of indexed transcripts
func (b *BleveIndexer) Count() (uint64, error) {
	return b.idx.DocCount()
}

func hitToTranscript(hit *search.DocumentMatch) transcript.Transcript {
	t := transcript.Transcript{
		ID:           hit.ID,
		Slug:         stringField(hit.Fields, "Slug"),
		Title:        stringField(hit.Fields, "Title"),
		Participants: stringsField(hit.Fields, "Participants"),
		Categories:   stringsField(hit.Fields, "Categories"),
		Status:       stringField(hit.Fields, "Status"),
		Tags:         stringsField(hit.Fields, "Tags"),
		Folder:       stringField(hit.Fields, "Folder"),
		Duration:     floatField(hit.Fields, "Duration"),
		Words:        floatField(hit.Fields, "Words"),
		Content:      stringField(hit.Fields, "Content"),
	}
	if raw := stringField(hit.Fields, "Date"); raw != "" {
		if date, err := time.Parse(time.RFC3339, raw); err == nil {
			t.Date = date
		}
	}
	return t
}

func stringField(fields map[string]interface{}, name string) string {
	if value, ok := fields[name].(string); ok {
		return value
	}
	return ""
}

// stringsField reads a field bleve may return either as a single value or
// as a list, depending on how many entries the document carried.
func stringsField(fields map[string]interface{}, name string) []string {
	switch value := fields[name].(type) {
	case string:
		if value == "" {
			return nil
		}
		return []string{value}
	case []interface{}:
		var values []string
		for _, item := range value {
			if text, ok := item.(string); ok {
				values = append(values, text)
			}
		}
		return values
	}
	return nil
}

func floatField(fields map[string]interface{}, name string) float64 {
	if value, ok := fields[name].(float64); ok {
		return value
	}
	return 0
}
