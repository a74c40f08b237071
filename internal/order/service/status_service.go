package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"tavola/internal/domain"
	apperrors "tavola/internal/errors"
	"tavola/internal/notification"
)

type OrderRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	SetNotificationSent(ctx context.Context, id string, status string, sentAt string) error
}

type LoyaltyAccruer interface {
	AccrueOnCompletion(ctx context.Context, order domain.Order) error
}

// StatusService moves an order through the status lifecycle and fires the
// per-status email notification. The status write and the notification are
// independent: a failed send never rolls the status back, and repeating an
// update for the same status re-sends the email and overwrites the
// timestamp.
type StatusService struct {
	orders  OrderRepository
	mailer  notification.Mailer
	loyalty LoyaltyAccruer
	logger  *zap.Logger
	now     func() time.Time
}

func NewStatusService(
	orders OrderRepository,
	mailer notification.Mailer,
	loyalty LoyaltyAccruer,
	logger *zap.Logger,
) *StatusService {
	return &StatusService{
		orders:  orders,
		mailer:  mailer,
		loyalty: loyalty,
		logger:  logger,
		now:     time.Now,
	}
}

type StatusUpdate struct {
	Order             *domain.Order
	NotificationSent  bool
	NotificationError string
}

func (s *StatusService) UpdateStatus(ctx context.Context, orderID string, newStatus string) (*StatusUpdate, error) {
	if !domain.ValidOrderStatus(newStatus) {
		return nil, apperrors.NewValidationError("invalid status", apperrors.ValidationDetail{
			Field:   "status",
			Message: fmt.Sprintf("status must be one of: %s, %s, %s, %s",
				domain.OrderStatusConfirmed, domain.OrderStatusProcessing,
				domain.OrderStatusCompleted, domain.OrderStatusCancelled),
		})
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := s.orders.UpdateStatus(ctx, orderID, newStatus); err != nil {
		return nil, err
	}
	order.Status = newStatus
	s.logger.Info("order status updated",
		zap.String("orderId", orderID), zap.String("status", newStatus))

	result := &StatusUpdate{Order: order}
	s.notify(ctx, order, newStatus, result)

	if newStatus == domain.OrderStatusCompleted && s.loyalty != nil {
		if err := s.loyalty.AccrueOnCompletion(ctx, *order); err != nil {
			// accrual is a separate write with no compensation path
			s.logger.Error("loyalty accrual failed",
				zap.String("orderId", orderID), zap.Error(err))
		}
	}

	return result, nil
}

func (s *StatusService) notify(ctx context.Context, order *domain.Order, status string, result *StatusUpdate) {
	msg, err := notification.RenderStatusEmail(*order, status)
	if err != nil {
		s.logger.Error("rendering status email failed",
			zap.String("orderId", order.ID), zap.String("status", status), zap.Error(err))
		result.NotificationError = err.Error()
		return
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		s.logger.Warn("status notification failed",
			zap.String("orderId", order.ID), zap.String("status", status), zap.Error(err))
		result.NotificationError = err.Error()
		return
	}

	sentAt := s.now().UTC().Format(time.RFC3339)
	if err := s.orders.SetNotificationSent(ctx, order.ID, status, sentAt); err != nil {
		s.logger.Error("recording notification timestamp failed",
			zap.String("orderId", order.ID), zap.String("status", status), zap.Error(err))
		result.NotificationError = err.Error()
		return
	}

	if order.Notifications == nil {
		order.Notifications = map[string]string{}
	}
	order.Notifications[status+"Sent"] = sentAt
	result.NotificationSent = true
}
