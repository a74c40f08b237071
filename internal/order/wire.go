package order

import (
	"database/sql"

	validatorv10 "github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"tavola/internal/config"
	"tavola/internal/notification"
	"tavola/internal/order/controller"
	"tavola/internal/order/repository"
	"tavola/internal/order/service"
	"tavola/internal/order/usecase"
)

type Module struct {
	Controller    *controller.OrderController
	StatusService *service.StatusService
}

func NewModule(
	db *sql.DB,
	cfg *config.Config,
	schedulingSvc usecase.SchedulingService,
	menu usecase.MenuReader,
	mailer notification.Mailer,
	loyalty service.LoyaltyAccruer,
	validate *validatorv10.Validate,
	logger *zap.Logger,
) *Module {
	orderRepo := repository.NewMySQLOrderRepository(db)

	statusSvc := service.NewStatusService(orderRepo, mailer, loyalty, logger)
	checkoutUC := usecase.NewCheckoutUseCase(orderRepo, menu, schedulingSvc, logger)
	webhookUC := usecase.NewPaymentWebhookUseCase(orderRepo, logger)

	ctrl := controller.NewOrderController(
		checkoutUC,
		webhookUC,
		statusSvc,
		orderRepo,
		cfg.Payment.WebhookSecret,
		validate,
		logger,
	)

	return &Module{
		Controller:    ctrl,
		StatusService: statusSvc,
	}
}
