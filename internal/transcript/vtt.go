package transcript

import (
	"bufio"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/gosimple/slug"
	"github.com/microcosm-cc/bluemonday"
	"github.com/spf13/afero"
)

var (
	cuePattern     = regexp.MustCompile(`(\d{1,2}:)?\d{2}:\d{2}\.\d{3}\s+-->\s+((\d{1,2}:)?\d{2}:\d{2}\.\d{3})`)
	speakerPattern = regexp.MustCompile(`<v\s+([^>]+)>`)
)

// VttReader reads WebVTT subtitle transcripts. Metadata comes from
// "NOTE key: value" lines, speakers from <v Name> voice tags, and the
// duration from the end timestamp of the last cue. Cue markup is stripped
// before indexing.
type VttReader struct {
	FS afero.Fs
}

func (r VttReader) Metadata(file string) (Transcript, error) {
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

	stripper := bluemonday.StrictPolicy()
	seen := map[string]struct{}{}
	var lines []string
	var lastEnd float64
	inCue := false

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "" || line == "WEBVTT":
			inCue = false
		case strings.HasPrefix(line, "NOTE "):
			if key, value, found := strings.Cut(strings.TrimPrefix(line, "NOTE "), ":"); found {
				applyHeader(&t, key, value)
			}
		case cuePattern.MatchString(line):
			if end := cueEnd(line); end > lastEnd {
				lastEnd = end
			}
			inCue = true
		case inCue:
			for _, match := range speakerPattern.FindAllStringSubmatch(line, -1) {
				speaker := strings.TrimSpace(match[1])
				if _, ok := seen[speaker]; ok || speaker == "" {
					continue
				}
				seen[speaker] = struct{}{}
				t.Participants = append(t.Participants, speaker)
			}
			if text := strings.TrimSpace(stripper.Sanitize(line)); text != "" {
				lines = append(lines, text)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return Transcript{}, err
	}

	t.Content = strings.Join(lines, "\n")
	t.Words = float64(len(strings.Fields(t.Content)))
	t.Duration = lastEnd / 60
	return t, nil
}

// cueEnd returns the end timestamp of a cue timing line, in seconds.
func cueEnd(line string) float64 {
	match := cuePattern.FindStringSubmatch(line)
	if match == nil {
		return 0
	}
	parts := strings.Split(match[2], ":")
	var seconds float64
	for _, part := range parts {
		value, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return 0
		}
		seconds = seconds*60 + value
	}
	return seconds
}
