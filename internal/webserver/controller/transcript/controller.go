package transcript

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/minutary/minutary/internal/filter"
	"github.com/minutary/minutary/internal/result"
	"github.com/minutary/minutary/internal/transcript"
	"github.com/spf13/afero"
)

// IdxReader wraps the index operations the controller needs.
type IdxReader interface {
	Search(keywords string, f filter.State, page, resultsPerPage int) (result.Paginated[[]transcript.Transcript], error)
	Document(slug string) (transcript.Transcript, error)
	Count() (uint64, error)
}

// IdxWriter removes transcripts from the index.
type IdxWriter interface {
	RemoveFile(file string) error
}

type searchHistory interface {
	Add(user, query string) error
	Entries(user string) []string
	Clear(user string) error
}

type Config struct {
	LibraryPath string
}

type Controller struct {
	idx       IdxReader
	idxWriter IdxWriter
	history   searchHistory
	codec     *filter.Codec
	appFs     afero.Fs
	config    Config
}

func NewController(idx IdxReader, idxWriter IdxWriter, history searchHistory, codec *filter.Codec, appFs afero.Fs, cfg Config) *Controller {
	return &Controller{
		idx:       idx,
		idxWriter: idxWriter,
		history:   history,
		codec:     codec,
		appFs:     appFs,
		config:    cfg,
	}
}

// queryValues converts the request query string to url.Values.
func queryValues(c *fiber.Ctx) url.Values {
	values := url.Values{}
	c.Request().URI().QueryArgs().VisitAll(func(key, value []byte) {
		values.Add(string(key), string(value))
	})
	return values
}
