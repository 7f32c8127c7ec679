package webserver

import (
	"github.com/minutary/minutary/internal/filter"
	"github.com/minutary/minutary/internal/history"
	"github.com/minutary/minutary/internal/index"
	"github.com/minutary/minutary/internal/webserver/controller/auth"
	"github.com/minutary/minutary/internal/webserver/controller/snippet"
	"github.com/minutary/minutary/internal/webserver/controller/transcript"
	"github.com/minutary/minutary/internal/webserver/controller/user"
	"github.com/minutary/minutary/internal/webserver/infrastructure"
	"github.com/minutary/minutary/internal/webserver/model"
	"github.com/spf13/afero"
	"gorm.io/gorm"
)

const maxHistoryEntries = 20

type Controllers struct {
	Auth        *auth.Controller
	Users       *user.Controller
	Snippets    *snippet.Controller
	Transcripts *transcript.Controller
}

func SetupControllers(cfg Config, db *gorm.DB, idx *index.BleveIndexer, appFs afero.Fs) Controllers {
	usersRepository := &model.UserRepository{DB: db}
	snippetsRepository := &model.SnippetRepository{DB: db}
	searchHistory := history.New(&infrastructure.DatabaseStore{DB: db}, maxHistoryEntries)

	authCfg := auth.Config{
		MinPasswordLength: cfg.MinPasswordLength,
		Secret:            cfg.JwtSecret,
		SessionTimeout:    cfg.SessionTimeout,
	}

	usersCfg := user.Config{
		MinPasswordLength: cfg.MinPasswordLength,
	}

	transcriptsCfg := transcript.Config{
		LibraryPath: cfg.LibraryPath,
	}

	return Controllers{
		Auth:        auth.NewController(usersRepository, authCfg),
		Users:       user.NewController(usersRepository, usersCfg),
		Snippets:    snippet.NewController(snippetsRepository),
		Transcripts: transcript.NewController(idx, idx, searchHistory, filter.NewCodec(), appFs, transcriptsCfg),
	}
}
