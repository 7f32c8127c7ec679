package snippet

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/minutary/minutary/internal/result"
	"github.com/minutary/minutary/internal/webserver/model"
)

type snippetsRepository interface {
	List(page int, resultsPerPage int, filter string) (result.Paginated[[]model.Snippet], error)
	FindByUuid(uuid string) (*model.Snippet, error)
	Create(snippet *model.Snippet) error
	Update(snippet *model.Snippet) error
	Delete(uuid string) error
}

type Controller struct {
	repository snippetsRepository
}

func NewController(repository snippetsRepository) *Controller {
	return &Controller{
		repository: repository,
	}
}

// formValues collects the variable values posted with a render or preview
// request. Form fields are prefixed with "var-" to keep them apart from
// other inputs; a variable without a field stays absent, which is not the
// same as being present and blank.
func formValues(c *fiber.Ctx) map[string]any {
	values := map[string]any{}
	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		name := string(key)
		if !strings.HasPrefix(name, "var-") {
			return
		}
		values[strings.TrimPrefix(name, "var-")] = string(value)
	})
	return values
}
