package transcript

import (
	"bufio"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gosimple/slug"
	"github.com/spf13/afero"
)

// wordsPerMinute is the fallback used to estimate the duration of plain
// text transcripts without an explicit duration header.
const wordsPerMinute = 150

// TxtReader reads plain text transcripts. The file may start with a block
// of "#key: value" headers (title, participants, categories, status, tags,
// folder, date, duration); everything after the first non-header line is
// the transcript body.
type TxtReader struct {
	FS afero.Fs
}

func (r TxtReader) Metadata(file string) (Transcript, error) {
	f, err := r.FS.Open(file)
	if err != nil {
		return Transcript{}, err
	}
	defer f.Close()

	title := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	t := Transcript{
		ID:    file,
		Title: title,
		Slug:  slug.Make(title),
	}

	var body []string
	inHeader := true
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if inHeader && strings.HasPrefix(line, "#") {
			key, value, found := strings.Cut(line[1:], ":")
			if found {
				if strings.EqualFold(strings.TrimSpace(key), "duration") {
					if minutes, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
						t.Duration = minutes
					}
					continue
				}
				applyHeader(&t, key, value)
			}
			continue
		}
		if inHeader && strings.TrimSpace(line) == "" && len(body) == 0 {
			continue
		}
		inHeader = false
		body = append(body, line)
	}
	if err := scanner.Err(); err != nil {
		return Transcript{}, err
	}

	t.Content = strings.TrimSpace(strings.Join(body, "\n"))
	t.Words = float64(len(strings.Fields(t.Content)))
	if t.Duration == 0 && t.Words > 0 {
		t.Duration = t.Words / wordsPerMinute
	}
	return t, nil
}
