package querysyntax

import "strings"

// Syntax is the result of parsing a search box query: the free-text
// remainder plus every recognized key:value directive. Multi-valued
// directives keep their values in encounter order, date and duration
// keep only the last value seen.
type Syntax struct {
	PlainText    string
	Participants []string
	Date         string
	Categories   []string
	Duration     string
	Status       []string
	Tags         []string
	Folders      []string
}

// Parse splits query on whitespace and extracts key:value directives.
// A token is a directive when it has a colon past its first character and
// its lowercased key (or alias) is recognized; everything else, including
// tokens with an unknown key or an empty one, stays in PlainText.
func Parse(query string) Syntax {
	var syntax Syntax
	var plain []string

	for _, token := range strings.Fields(query) {
		pos := strings.Index(token, ":")
		if pos < 1 {
			plain = append(plain, token)
			continue
		}
		key := strings.ToLower(token[:pos])
		value := token[pos+1:]

		switch key {
		case "participant", "p":
			syntax.Participants = append(syntax.Participants, value)
		case "date", "d":
			syntax.Date = value
		case "category", "cat", "c":
			syntax.Categories = append(syntax.Categories, value)
		case "duration", "dur":
			syntax.Duration = value
		case "status", "s":
			syntax.Status = append(syntax.Status, value)
		case "tag", "t":
			syntax.Tags = append(syntax.Tags, value)
		case "folder", "f":
			syntax.Folders = append(syntax.Folders, value)
		default:
			plain = append(plain, token)
		}
	}

	syntax.PlainText = strings.TrimSpace(strings.Join(plain, " "))
	return syntax
}
