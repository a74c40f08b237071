package loyalty

import (
	"database/sql"

	validatorv10 "github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"tavola/internal/loyalty/repository"
)

type Module struct {
	Service         *Service
	Controller      *Controller
	AdminController *AdminController
}

func NewModule(db *sql.DB, validate *validatorv10.Validate, logger *zap.Logger) *Module {
	tierRepo := repository.NewMySQLTierRepository(db)
	rewardRepo := repository.NewMySQLRewardRepository(db)
	accountRepo := repository.NewMySQLAccountRepository(db)
	redemptionRepo := repository.NewMySQLRedemptionRepository(db)

	service := NewService(tierRepo, rewardRepo, accountRepo, redemptionRepo, logger)

	return &Module{
		Service:         service,
		Controller:      NewController(service, validate, logger),
		AdminController: NewAdminController(tierRepo, rewardRepo, validate, logger),
	}
}
