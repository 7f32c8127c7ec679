package infrastructure

import (
	"fmt"
	"html/template"
	"io/fs"
	"math"
	"net/http"
	"strings"

	"github.com/gofiber/template/html/v2"
	"github.com/gosimple/slug"
	"golang.org/x/text/message"
)

func TemplateEngine(viewsFS fs.FS, printers map[string]*message.Printer) (*html.Engine, error) {
	engine := html.NewFileSystem(http.FS(viewsFS), ".html")

	engine.AddFunc("t", func(lang, key string, values ...any) template.HTML {
		return template.HTML(printers[lang].Sprintf(key, values...))
	})

	engine.AddFunc("dict", func(values ...any) map[string]any {
		if len(values)%2 != 0 {
			fmt.Println("invalid dict call")
			return nil
		}
		dict := make(map[string]any, len(values)/2)
		for i := 0; i < len(values); i += 2 {
			key, ok := values[i].(string)
			if !ok {
				fmt.Println("dict keys must be strings")
				return nil
			}
			dict[key] = values[i+1]
		}
		return dict
	})

	engine.AddFunc("notLast", notLast[string])

	engine.AddFunc("join", func(elems []string, sep string) string {
		return strings.Join(elems, sep)
	})

	engine.AddFunc("slugify", func(text string) string {
		return slug.Make(text)
	})

	engine.AddFunc("duration", formatDuration)

	return engine, nil
}

// formatDuration renders a duration in minutes as "1h 30m" or "45m".
func formatDuration(minutes float64) string {
	total := int(math.Round(minutes))
	if total >= 60 {
		if total%60 == 0 {
			return fmt.Sprintf("%dh", total/60)
		}
		return fmt.Sprintf("%dh %dm", total/60, total%60)
	}
	return fmt.Sprintf("%dm", total)
}

func notLast[V any](slice []V, index int) bool {
	return index < len(slice)-1
}
