package user

import (
	"github.com/minutary/minutary/internal/result"
	"github.com/minutary/minutary/internal/webserver/model"
)

type usersRepository interface {
	List(page int, resultsPerPage int) (result.Paginated[[]model.User], error)
	Total() int64
	FindByUuid(uuid string) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	Create(user *model.User) error
	Update(user *model.User) error
	Admins() int64
	Delete(uuid string) error
}

type Config struct {
	MinPasswordLength int
}

type Controller struct {
	repository usersRepository
	config     Config
}

// NewController returns a new instance of the users controller
func NewController(repository usersRepository, cfg Config) *Controller {
	return &Controller{
		repository: repository,
		config:     cfg,
	}
}
