package menu

import (
	"database/sql"

	validatorv10 "github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"tavola/internal/menu/repository"
)

type Module struct {
	Repository Repository
	Controller *Controller
}

func NewModule(db *sql.DB, validate *validatorv10.Validate, logger *zap.Logger) *Module {
	repo := repository.NewMySQLMenuRepository(db)

	return &Module{
		Repository: repo,
		Controller: NewController(repo, validate, logger),
	}
}
