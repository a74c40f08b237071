package usecase

import (
	"context"

	"go.uber.org/zap"

	"tavola/internal/domain"
	"tavola/internal/payment"
)

type PaymentOrderRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	UpdatePaymentStatus(ctx context.Context, id string, paymentStatus string) error
}

// PaymentWebhookUseCase applies payment-processor events to orders. The
// webhook only mutates paymentStatus; the order status lifecycle stays
// admin-driven.
type PaymentWebhookUseCase struct {
	orders PaymentOrderRepository
	logger *zap.Logger
}

func NewPaymentWebhookUseCase(orders PaymentOrderRepository, logger *zap.Logger) *PaymentWebhookUseCase {
	return &PaymentWebhookUseCase{
		orders: orders,
		logger: logger,
	}
}

func (uc *PaymentWebhookUseCase) HandleEvent(ctx context.Context, event payment.WebhookEvent) error {
	var paymentStatus string
	switch event.Type {
	case payment.EventPaymentSucceeded:
		paymentStatus = domain.PaymentStatusPaid
	case payment.EventPaymentFailed:
		paymentStatus = domain.PaymentStatusFailed
	default:
		uc.logger.Debug("ignoring unknown payment event", zap.String("type", event.Type))
		return nil
	}

	if _, err := uc.orders.FindByID(ctx, event.OrderID); err != nil {
		return err
	}

	if err := uc.orders.UpdatePaymentStatus(ctx, event.OrderID, paymentStatus); err != nil {
		return err
	}

	uc.logger.Info("payment status updated",
		zap.String("orderId", event.OrderID),
		zap.String("paymentStatus", paymentStatus),
		zap.String("paymentRef", event.PaymentRef))

	return nil
}
