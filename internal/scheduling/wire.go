package scheduling

import (
	"database/sql"

	validatorv10 "github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"tavola/internal/config"
	"tavola/internal/scheduling/repository"
)

type Module struct {
	Service         *Service
	Controller      *Controller
	AdminController *AdminController
}

func NewModule(db *sql.DB, cfg config.SchedulingConfig, validate *validatorv10.Validate, logger *zap.Logger) *Module {
	zoneRepo := repository.NewMySQLZoneRepository(db)
	locationRepo := repository.NewMySQLLocationRepository(db)
	eventRepo := repository.NewMySQLEventRepository(db)

	generator := NewGenerator(cfg)
	service := NewService(generator, zoneRepo, locationRepo, eventRepo, logger)

	return &Module{
		Service:         service,
		Controller:      NewController(service, validate, logger),
		AdminController: NewAdminController(zoneRepo, locationRepo, eventRepo, validate, logger),
	}
}
